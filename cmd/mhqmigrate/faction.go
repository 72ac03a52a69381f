package main

import (
	"fmt"

	"github.com/maloquacious/mhqmigrate/internal/faction"
	"github.com/spf13/cobra"
)

func newFactionCmd(a *app) *cobra.Command {
	factionCmd := &cobra.Command{
		Use:   "faction",
		Short: "Faction code translation",
	}

	translateCmd := &cobra.Command{
		Use:   "translate CODE...",
		Short: "Print the current code for each faction code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, code := range args {
				current := faction.Translate(code)
				if current == code {
					a.log.Debug("faction %q is not a legacy code", code)
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\n", code, current); err != nil {
					return err
				}
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every legacy code and its current code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, code := range faction.Legacy() {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", code, faction.Translate(code)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	factionCmd.AddCommand(translateCmd, listCmd)
	return factionCmd
}
