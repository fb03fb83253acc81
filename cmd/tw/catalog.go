package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/terminal"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CatalogUse,
		Short: messages.CatalogShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), s.catalog)
			return s.finish(cmd.ErrOrStderr())
		},
	}
}

// printCatalog lists project types, frameworks, and offered templates.
// Headers are colored only when out is a terminal.
func printCatalog(out io.Writer, cat *catalog.Catalog) {
	header := color.New(color.FgCyan, color.Bold)
	licensed := color.New(color.FgYellow)
	if !terminal.IsTerminal(out) {
		header.DisableColor()
		licensed.DisableColor()
	}

	_, _ = header.Fprintln(out, messages.CatalogProjectTypesHeader)
	for _, pt := range cat.ProjectTypes {
		_, _ = fmt.Fprintf(out, messages.CatalogEntryFmt+"\n", pt.Name, pt.DisplayName)
	}

	_, _ = header.Fprintln(out, messages.CatalogFrameworksHeader)
	for _, fw := range cat.Frameworks {
		types := messages.CatalogAllProjectTypes
		if len(fw.ProjectTypes) > 0 {
			types = strings.Join(fw.ProjectTypes, ", ")
		}
		_, _ = fmt.Fprintf(out, messages.CatalogFrameworkEntryFmt+"\n", fw.Name, fw.DisplayName, types)
	}

	for _, kind := range []catalog.Kind{catalog.KindPage, catalog.KindFeature} {
		_, _ = header.Fprintf(out, messages.CatalogTemplatesHeaderFmt+"\n", kind)
		for _, tmpl := range cat.Templates {
			if tmpl.Kind != kind || tmpl.Implicit {
				continue
			}
			_, _ = fmt.Fprintf(out, messages.CatalogEntryFmt, tmpl.ID, tmpl.DisplayName)
			if n := len(tmpl.Licenses); n > 0 {
				_, _ = licensed.Fprintf(out, messages.CatalogLicensedSuffixFmt, n)
			}
			_, _ = fmt.Fprintln(out)
		}
	}
}
