package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/domains"
	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

var (
	roadmapDomainsIn  string
	roadmapDomainsOut string
)

var roadmapDomainsCmd = &cobra.Command{
	Use:   "roadmap-domains",
	Short: "Regroup umbrella domains into scored career paths",
	Long: `Second grouping pass: scores every skill against the career-path
taxonomy (name matches, keyword hits, frontend/backend conflict penalties),
merges near-duplicate skills and categorizes each career path's skills.`,
	RunE: runRoadmapDomains,
}

func init() {
	rootCmd.AddCommand(roadmapDomainsCmd)
	roadmapDomainsCmd.Flags().StringVar(&roadmapDomainsIn, "in", "data/roadmaps_domains.json", "Umbrella domains JSON")
	roadmapDomainsCmd.Flags().StringVar(&roadmapDomainsOut, "out", "data/roadmaps_roadmap_based.json", "Output JSON path")
}

func runRoadmapDomains(cmd *cobra.Command, args []string) error {
	var doc roadmap.UmbrellaDoc
	if err := roadmap.ReadJSON(roadmapDomainsIn, &doc); err != nil {
		return fmt.Errorf("roadmap-domains: %w", err)
	}

	grouped := domains.GroupByCareerPath(&doc, taxonomy.DefaultScoringWeights)
	if err := roadmap.WriteJSON(roadmapDomainsOut, grouped); err != nil {
		return fmt.Errorf("roadmap-domains: %w", err)
	}

	slog.Info("roadmap-domains: done",
		slog.String("out", roadmapDomainsOut),
		slog.Int("career_paths", len(grouped.Domains)))
	return nil
}
