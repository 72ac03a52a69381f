package main

import (
	"fmt"
	"os"
	"time"

	"github.com/maloquacious/mhqmigrate/internal/store"
	"github.com/maloquacious/mhqmigrate/internal/store/sqlite"
	"github.com/spf13/cobra"
)

func newDBCmd(a *app) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Migration ledger management commands",
	}

	dbCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create and initialize the migration ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.createLedger()
		},
	}
	dbVerifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify ledger schema and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.ledgerState()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", store.GetDBPath(a.cfg.StorePath), state); err != nil {
				return err
			}
			if state != store.StateReady {
				return fmt.Errorf("ledger is %s", state)
			}
			return nil
		},
	}

	var campaign string
	dbAppliedCmd := &cobra.Command{
		Use:   "applied",
		Short: "List the option migrations applied to a campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("campaign") {
				campaign = a.cfg.Campaign
			}
			ledger, err := a.openLedger()
			if err != nil {
				return err
			}
			defer ledger.Close()

			entries, err := ledger.Applied(campaign)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Rule, e.FromVersion, e.AppliedAt.Format(time.RFC3339)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	dbAppliedCmd.Flags().StringVar(&campaign, "campaign", "default", "campaign identifier (env MHQ_CAMPAIGN)")

	dbCmd.AddCommand(dbCreateCmd, dbVerifyCmd, dbAppliedCmd)
	return dbCmd
}

func (a *app) createLedger() error {
	if err := os.MkdirAll(a.cfg.StorePath, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	dbPath := store.GetDBPath(a.cfg.StorePath)
	ledger := sqlite.New(dbPath, store.SchemaVersion)
	if err := ledger.Open(); err != nil {
		return err
	}
	defer ledger.Close()

	if err := ledger.InitSchema(store.SchemaVersion); err != nil {
		return err
	}
	a.log.Info("ledger initialized at %s (schema %s)", dbPath, store.SchemaVersion)
	return nil
}

func (a *app) ledgerState() (store.StoreState, error) {
	exists, err := store.CheckExists(a.cfg.StorePath)
	if err != nil {
		return store.StateMissing, err
	}
	if !exists {
		return store.StateMissing, nil
	}
	ledger := sqlite.New(store.GetDBPath(a.cfg.StorePath), store.SchemaVersion)
	if err := ledger.Open(); err != nil {
		return store.StateMissing, err
	}
	defer ledger.Close()
	return ledger.CheckState()
}

// openLedger opens the ledger and fails unless it is ready.
func (a *app) openLedger() (store.Store, error) {
	exists, err := store.CheckExists(a.cfg.StorePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("no ledger in %s: run 'mhqmigrate db create'", a.cfg.StorePath)
	}

	ledger := sqlite.New(store.GetDBPath(a.cfg.StorePath), store.SchemaVersion)
	if err := ledger.Open(); err != nil {
		return nil, err
	}
	state, err := ledger.CheckState()
	if err != nil {
		ledger.Close()
		return nil, err
	}
	if state != store.StateReady {
		ledger.Close()
		return nil, fmt.Errorf("ledger is %s", state)
	}
	return ledger, nil
}
