// Package main is the entry point for the service. The serve command wires
// all dependencies using samber/do v2, starts the HTTP server and the
// background scheduler, and handles graceful shutdown on SIGINT/SIGTERM. The
// migrate command applies the database schema and exits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-service/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	profile   string
	configDir string
}

func (f *rootFlags) load() (*config.Config, error) {
	var opts []config.Option
	if f.configDir != "" {
		opts = append(opts, config.WithConfigDir(f.configDir))
	}
	cfg, err := config.Load(f.profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "kanban-service",
		Short:         "Kanban board and task workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.profile, "profile", config.ProfileFromEnv(os.LookupEnv),
		"configuration profile (local, dev, qa, prod); defaults to $APP_PROFILE")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "",
		"directory holding base.yaml and the profile files")

	root.AddCommand(newServeCmd(flags), newMigrateCmd(flags))
	return root
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), cfg)
		},
	}
}
