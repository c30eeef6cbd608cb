package commands

import (
	"log/slog"

	"github.com/l3montree-dev/qualitygate/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema",
	}

	migrate.AddCommand(newMigrateUpCommand())
	migrate.AddCommand(newMigrateVersionCommand())
	return &migrate
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Runs all pending migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeFn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			return database.RunMigrationsWithDB(db)
		},
	}
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the current schema version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, closeFn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			slog.Info("schema version", "version", version, "dirty", dirty)
			return nil
		},
	}
}
