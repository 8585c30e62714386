package main

import (
	"fmt"

	"skill-matrix/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	runner := migration.Runner{
		FS: migration.Embedded(),
		OnApply: func(m migration.Migration) {
			fmt.Fprintf(cmd.OutOrStdout(), "applied V%d %s\n", m.Version, m.Name)
		},
	}
	n, err := runner.Run(ctx, s.db.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d migration(s) applied\n", n)
	return nil
}
