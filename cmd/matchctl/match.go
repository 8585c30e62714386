package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"skill-matrix/internal/app"
	"skill-matrix/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Print the staffing report for a project",
	Long:  "Lists the personnel qualifying for every requirement of the project, or a per-requirement gap report when nobody does.",
	RunE:  runMatch,
}

var (
	matchProject string
	matchFormat  string
)

func init() {
	matchCmd.Flags().StringVarP(&matchProject, "project", "p", "", "Project id (required)")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "text", "Output format: text or json")

	if err := matchCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	projectID, err := uuid.Parse(strings.TrimSpace(matchProject))
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", matchProject, err)
	}
	format := strings.ToLower(strings.TrimSpace(matchFormat))
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q: want text or json", matchFormat)
	}

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	uc := app.NewUsecases(s.db, app.Deps{Log: s.log})
	m, err := uc.Matching.MatchProject(ctx, projectID)
	if err != nil {
		return err
	}

	report := dto.NewMatchResponse(m)
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return renderText(cmd.OutOrStdout(), report)
}
