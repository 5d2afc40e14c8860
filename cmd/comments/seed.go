package main

import (
	"github.com/deppfellow/nested-comments/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample users, posts and comments (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requirePostgres(); err != nil {
			return err
		}

		return database.Seed(cmd.Context(), &a.log, database.DSN(a.cfg.Database))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
