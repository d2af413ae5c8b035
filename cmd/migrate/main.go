package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"booking-checkout/internal/infra/db"
	"booking-checkout/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var source string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply database schema migrations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&source, "source", db.DefaultMigrationsSource, "migration source URL")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(_ *cobra.Command, _ []string) error {
				return withMigrator(source, func(m *db.Migrator) error {
					if err := m.Up(); err != nil {
						return err
					}
					slog.Info("migrations applied")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1 step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}
				return withMigrator(source, func(m *db.Migrator) error {
					if err := m.Down(steps); err != nil {
						return err
					}
					slog.Info("migrations rolled back", "steps", steps)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(source, func(m *db.Migrator) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					cmd.Printf("version=%d dirty=%t\n", v, dirty)
					return nil
				})
			},
		},
	)
	return root
}

// Only the DB section is needed, so the full config is not loaded.
func withMigrator(source string, fn func(*db.Migrator) error) error {
	var cfg config.DBConfig
	if err := config.LoadDBConfig(&cfg); err != nil {
		return err
	}

	m, err := db.NewMigrator(source, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			slog.Warn("failed to close migrator", "error", cerr.Error())
		}
	}()
	return fn(m)
}
