package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/structure"
)

var (
	structureIn  string
	structureOut string
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Build the role/skill/topic matching catalog",
	Long: `Reshapes the raw extraction into the role → skill → topics catalog
the resume matcher loads at startup (roadmaps_role_skill.json).`,
	RunE: runStructure,
}

func init() {
	rootCmd.AddCommand(structureCmd)
	structureCmd.Flags().StringVar(&structureIn, "in", "data/roadmaps.json", "Raw extraction JSON")
	structureCmd.Flags().StringVar(&structureOut, "out", "data/roadmaps_role_skill.json", "Output JSON path")
}

func runStructure(cmd *cobra.Command, args []string) error {
	var doc roadmap.RawDoc
	if err := roadmap.ReadJSON(structureIn, &doc); err != nil {
		return fmt.Errorf("structure: %w", err)
	}

	structured := structure.Structure(&doc)
	if err := roadmap.WriteJSON(structureOut, structured); err != nil {
		return fmt.Errorf("structure: %w", err)
	}

	slog.Info("structure: done",
		slog.String("out", structureOut),
		slog.Int("roles", len(structured.Roles)))
	return nil
}
