package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/domains"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

var (
	domainsIn  string
	domainsOut string
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Group cleaned skills under umbrella domains",
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.Flags().StringVar(&domainsIn, "in", "data/roadmaps_cleaned.json", "Cleaned skills JSON")
	domainsCmd.Flags().StringVar(&domainsOut, "out", "data/roadmaps_domains.json", "Output JSON path")
}

func runDomains(cmd *cobra.Command, args []string) error {
	var doc roadmap.CleanDoc
	if err := roadmap.ReadJSON(domainsIn, &doc); err != nil {
		return fmt.Errorf("domains: %w", err)
	}

	grouped := domains.GroupByUmbrella(&doc)
	if err := roadmap.WriteJSON(domainsOut, grouped); err != nil {
		return fmt.Errorf("domains: %w", err)
	}

	slog.Info("domains: done",
		slog.String("out", domainsOut),
		slog.Int("domains", len(grouped.Domains)))
	return nil
}
