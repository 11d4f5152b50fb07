package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/powerconv/internal/db"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply catalog migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.timed("migrate", func() error {
				dsn := a.cfg.Database.DSN()
				if err := db.RunMigrations(cmd.Context(), dsn); err != nil {
					return err
				}
				v, err := db.MigrationVersion(cmd.Context(), dsn)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "[powerconv] catalog schema at version %d\n", v)
				return nil
			})
		},
	}
}
