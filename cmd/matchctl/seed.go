package main

import (
	"fmt"
	"os"

	"skill-matrix/internal/database/seeder"
	"skill-matrix/internal/infrastructure/cache"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/usecase"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo skills, personnel, projects and an admin user",
	Long:  "Seeds the default skill catalog, demo personnel with assignments and demo projects with requirements. Every seeder is idempotent.",
	RunE:  runSeed,
}

var (
	seedAdminEmail    string
	seedAdminPassword string
)

func init() {
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", os.Getenv("ADMIN_EMAIL"), "Operator account email (env ADMIN_EMAIL)")
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", os.Getenv("ADMIN_PASSWORD"), "Operator account password (env ADMIN_PASSWORD)")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	runner := seeder.Runner{
		Seeders: seeder.Defaults(seeder.AdminSeeder{Email: seedAdminEmail, Password: seedAdminPassword}),
		OnDone: func(name string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", name)
		},
	}
	if err := runner.Run(ctx, s.db); err != nil {
		return err
	}

	stats := cache.NewRedis(ctx, s.cfg.Redis, s.log)
	defer func() { _ = stats.Close() }()
	if err := stats.Delete(ctx, usecase.StatsCacheKey); err != nil {
		s.log.Warn(ctx, "stats cache not cleared", logger.Err(err))
	}
	return nil
}
