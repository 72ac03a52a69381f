package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maloquacious/mhqmigrate/internal/config"
	"github.com/maloquacious/mhqmigrate/internal/logger"
	"github.com/maloquacious/mhqmigrate/internal/options"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var (
	version   = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}
	buildDate = ""
)

// app carries the state shared by every command.
type app struct {
	cfg      config.Config
	log      logger.Logger
	migrator *options.Migrator
}

func main() {
	a := &app{
		log:      logger.Default,
		migrator: options.Default,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var storePath, logLevel string

	rootCmd := &cobra.Command{
		Use:           "mhqmigrate",
		Short:         "Campaign data migration helpers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("store") {
				cfg.StorePath = storePath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&storePath, "store", ".", "directory holding the migration ledger (env MHQ_STORE_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error (env MHQ_LOG_LEVEL)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(newFactionCmd(a), newOptionsCmd(a), newDBCmd(a), versionCmd)
	return rootCmd
}

func printVersion(w io.Writer) error {
	if buildDate != "" {
		_, err := fmt.Fprintf(w, "mhqmigrate %s (built %s)\n", version.String(), buildDate)
		return err
	}
	_, err := fmt.Fprintf(w, "mhqmigrate %s\n", version.String())
	return err
}
