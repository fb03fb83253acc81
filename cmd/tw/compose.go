package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/template-wizard/internal/messages"
)

type composeOptions struct {
	projectType string
	framework   string
	home        string
	pages       []string
	features    []string
	licenses    bool
}

func newComposeCmd(opts *rootOptions) *cobra.Command {
	var co composeOptions

	cmd := &cobra.Command{
		Use:   messages.ComposeUse,
		Short: messages.ComposeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, opts, co)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&co.projectType, "project-type", "", messages.ComposeFlagProjectType)
	flags.StringVar(&co.framework, "framework", "", messages.ComposeFlagFramework)
	flags.StringVar(&co.home, "home", "", messages.ComposeFlagHome)
	flags.StringArrayVar(&co.pages, "page", nil, messages.ComposeFlagPage)
	flags.StringArrayVar(&co.features, "feature", nil, messages.ComposeFlagFeature)
	flags.BoolVar(&co.licenses, "licenses", false, messages.ComposeFlagLicenses)
	return cmd
}

// runCompose drives the same controller as the interactive wizard through
// every step without prompting.
func runCompose(cmd *cobra.Command, opts *rootOptions, co composeOptions) error {
	if strings.TrimSpace(co.projectType) == "" {
		return errors.New(messages.ComposeProjectTypeRequired)
	}
	if strings.TrimSpace(co.framework) == "" {
		return errors.New(messages.ComposeFrameworkRequired)
	}
	pages, err := parseItems("page", co.pages)
	if err != nil {
		return err
	}
	features, err := parseItems("feature", co.features)
	if err != nil {
		return err
	}

	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	ctrl, err := s.newController()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if _, err := ctrl.AwaitSetup(ctx); err != nil {
		return err
	}
	if err := ctrl.SetSetup(co.projectType, co.framework); err != nil {
		return err
	}
	if err := ctrl.Next(ctx); err != nil {
		return err
	}
	for _, p := range pages {
		if err := ctrl.AddPage(ctx, p.name, p.templateID); err != nil {
			return err
		}
	}
	for _, f := range features {
		if err := ctrl.AddFeature(ctx, f.name, f.templateID); err != nil {
			return err
		}
	}
	home := strings.TrimSpace(co.home)
	if home == "" && len(pages) > 0 {
		home = pages[0].name
	}
	if err := ctrl.SetHomeName(home); err != nil {
		return err
	}
	if err := ctrl.Next(ctx); err != nil {
		return err
	}
	result, err := ctrl.Finish(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeSelection(out, "", s.format, result); err != nil {
		return err
	}
	if co.licenses {
		_, _ = fmt.Fprint(out, messages.ComposeLicensesHeader)
		for _, l := range ctrl.Licenses() {
			_, _ = fmt.Fprintf(out, messages.ComposeLicenseLineFmt, l.Text, l.URL)
		}
	}
	return s.finish(cmd.ErrOrStderr())
}

type itemArg struct {
	name       string
	templateID string
}

// parseItems splits name=template arguments, keeping their order.
func parseItems(kind string, raw []string) ([]itemArg, error) {
	items := make([]itemArg, 0, len(raw))
	for _, r := range raw {
		name, templateID, ok := strings.Cut(r, "=")
		name, templateID = strings.TrimSpace(name), strings.TrimSpace(templateID)
		if !ok || name == "" || templateID == "" {
			return nil, fmt.Errorf(messages.ComposeInvalidItemFmt, kind, r)
		}
		items = append(items, itemArg{name: name, templateID: templateID})
	}
	return items, nil
}
