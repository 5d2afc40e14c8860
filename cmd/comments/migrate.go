package main

import (
	"github.com/deppfellow/nested-comments/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requirePostgres(); err != nil {
			return err
		}

		return database.Migrate(cmd.Context(), &a.log, database.DSN(a.cfg.Database))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
