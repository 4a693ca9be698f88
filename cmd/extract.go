package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/extract"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

var (
	extractRoadmaps string
	extractOut      string
	extractCSV      string
	extractRepo     string
	extractCommit   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parse a developer-roadmap checkout into the raw role tree",
	Long: `Walks the roadmaps directory of a kamranahmedse/developer-roadmap
checkout, parses every roadmap and content markdown file, and writes the raw
role/section/skill tree. Unparseable files are logged as warnings and
skipped.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractRoadmaps, "roadmaps", "", "Path to the src/data/roadmaps directory of a developer-roadmap checkout")
	extractCmd.Flags().StringVar(&extractOut, "out", "data/roadmaps.json", "Output JSON path")
	extractCmd.Flags().StringVar(&extractCSV, "csv", "", "Optional flat CSV output path")
	extractCmd.Flags().StringVar(&extractRepo, "repo", extract.DefaultRepo, "Source repository, recorded as provenance")
	extractCmd.Flags().StringVar(&extractCommit, "commit", "", "Source commit SHA, recorded as provenance")
	_ = extractCmd.MarkFlagRequired("roadmaps")
}

func runExtract(cmd *cobra.Command, args []string) error {
	warns := &roadmap.Warnings{}
	e := &extract.Extractor{
		RoadmapsDir: extractRoadmaps,
		Repo:        extractRepo,
		Commit:      extractCommit,
		Warns:       warns,
	}

	doc, err := e.Run()
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	warns.Report()

	if err := roadmap.WriteJSON(extractOut, doc); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if extractCSV != "" {
		if err := extract.WriteCSV(doc, extractCSV); err != nil {
			return fmt.Errorf("extract: %w", err)
		}
	}

	slog.Info("extract: done",
		slog.String("out", extractOut),
		slog.Int("roles", len(doc.Roles)),
		slog.Int("warnings", warns.Count()))
	return nil
}
