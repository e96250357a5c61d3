package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/contracts-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contracts-backend/migrations"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := openMigrator()
				if err != nil {
					return err
				}
				defer m.Close()

				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Applied %d migration(s).\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := openMigrator()
				if err != nil {
					return err
				}
				defer m.Close()

				if err := m.Down(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Rolled back one migration.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := openMigrator()
				if err != nil {
					return err
				}
				defer m.Close()

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Version", "Source", "Applied"})
				for _, s := range statuses {
					tw.AppendRow(table.Row{s.Version, s.Source, s.Applied})
				}
				tw.Render()
				return nil
			},
		},
	)
	return cmd
}

func openMigrator() (*postgres.Migrator, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return postgres.NewMigrator(cfg.Database.DSN, migrations.FS)
}
