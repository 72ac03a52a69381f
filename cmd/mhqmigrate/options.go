package main

import (
	"fmt"
	"os"

	"github.com/maloquacious/mhqmigrate/internal/options"
	"github.com/maloquacious/mhqmigrate/internal/store"
	"github.com/spf13/cobra"
)

func newOptionsCmd(a *app) *cobra.Command {
	var (
		from     string
		in       string
		out      string
		campaign string
		pretty   bool
		dryRun   bool
	)

	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "Game option migration",
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply version-gated option migrations to a JSON options file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := options.ParseVersion(from)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("campaign") {
				campaign = a.cfg.Campaign
			}

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("failed to open options file: %w", err)
			}
			opts, err := options.DecodeMap(f)
			f.Close()
			if err != nil {
				return err
			}

			pending := a.migrator.Pending(v)
			if dryRun {
				return a.dryRun(cmd, campaign, v, pending)
			}
			if len(pending) == 0 {
				a.log.Info("no rules pending for version %s", v)
				return writeOptions(cmd, out, opts, pretty)
			}

			ledger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer ledger.Close()

			for _, r := range pending {
				applied, err := ledger.IsApplied(campaign, r.Name)
				if err != nil {
					return err
				}
				if applied {
					return fmt.Errorf("rule %s already applied to campaign %s: pass --campaign to migrate another campaign", r.Name, campaign)
				}
			}

			options.New(pending...).Migrate(v, opts)

			if err := writeOptions(cmd, out, opts, pretty); err != nil {
				return err
			}
			for _, r := range pending {
				if err := ledger.MarkApplied(campaign, r.Name, v.String()); err != nil {
					return err
				}
			}
			a.log.Info("applied %d rule(s) to campaign %s", len(pending), campaign)
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&from, "from", "", "application version that wrote the options")
	migrateCmd.Flags().StringVar(&in, "in", "", "input options JSON file")
	migrateCmd.Flags().StringVar(&out, "out", "-", "output file ('-' for stdout)")
	migrateCmd.Flags().StringVar(&campaign, "campaign", "default", "campaign identifier in the ledger (env MHQ_CAMPAIGN)")
	migrateCmd.Flags().BoolVar(&pretty, "pretty", true, "pretty-print JSON")
	migrateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "list pending rules without changing anything")
	_ = migrateCmd.MarkFlagRequired("from")
	_ = migrateCmd.MarkFlagRequired("in")

	optionsCmd.AddCommand(migrateCmd)
	return optionsCmd
}

// dryRun lists the pending rules not yet recorded for campaign. Without a
// ledger every pending rule is listed.
func (a *app) dryRun(cmd *cobra.Command, campaign string, v options.Version, pending []options.Rule) error {
	exists, err := store.CheckExists(a.cfg.StorePath)
	if err != nil {
		return err
	}
	if exists && len(pending) > 0 {
		ledger, err := a.openLedger()
		if err != nil {
			return err
		}
		defer ledger.Close()

		var unapplied []options.Rule
		for _, r := range pending {
			applied, err := ledger.IsApplied(campaign, r.Name)
			if err != nil {
				return err
			}
			if applied {
				a.log.Debug("rule %s already applied to campaign %s", r.Name, campaign)
				continue
			}
			unapplied = append(unapplied, r)
		}
		pending = unapplied
	}

	for _, r := range pending {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tbefore %s\n", r.Name, r.Key, r.Before); err != nil {
			return err
		}
	}
	a.log.Info("%d rule(s) pending for version %s", len(pending), v)
	return nil
}

func writeOptions(cmd *cobra.Command, out string, opts options.Map, pretty bool) error {
	if out == "-" {
		return opts.Encode(cmd.OutOrStdout(), pretty)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := opts.Encode(f, pretty); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
