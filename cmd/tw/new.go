package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/terminal"
	"github.com/conn-castle/template-wizard/internal/wizard"
)

var isTerminal = terminal.IsInteractive
var newUI = func() wizard.UI { return wizard.NewHuhUI() }

func newNewCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(messages.NewRequiresTerminal)
			}
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			ctrl, err := s.newController()
			if err != nil {
				return err
			}
			defaults := wizard.Defaults{
				ProjectType: s.cfg.Defaults.ProjectType,
				Framework:   s.cfg.Defaults.Framework,
				HomeName:    s.cfg.Defaults.HomeName,
			}
			result, err := wizard.Run(cmd.Context(), newUI(), ctrl, s.catalog, defaults, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if result != nil {
				if err := writeSelection(cmd.OutOrStdout(), output, s.format, *result); err != nil {
					return err
				}
			}
			return s.finish(cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", messages.NewFlagOutput)
	return cmd
}
