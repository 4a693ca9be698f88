package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/clean"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

var (
	cleanIn  string
	cleanOut string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Flatten the raw role tree into deduplicated skill lists",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVar(&cleanIn, "in", "data/roadmaps.json", "Raw extraction JSON")
	cleanCmd.Flags().StringVar(&cleanOut, "out", "data/roadmaps_cleaned.json", "Output JSON path")
}

func runClean(cmd *cobra.Command, args []string) error {
	var doc roadmap.RawDoc
	if err := roadmap.ReadJSON(cleanIn, &doc); err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	cleaned := clean.Clean(&doc)
	if err := roadmap.WriteJSON(cleanOut, cleaned); err != nil {
		return fmt.Errorf("clean: %w", err)
	}

	skills := 0
	for _, r := range cleaned.Roles {
		skills += len(r.Skills)
	}
	slog.Info("clean: done",
		slog.String("out", cleanOut),
		slog.Int("roles", len(cleaned.Roles)),
		slog.Int("skills", skills))
	return nil
}
