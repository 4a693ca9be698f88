package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/jobs"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

var (
	jobsDatabase string
	jobsCSV      string
	jobsLimit    int
	jobsOutput   string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Process LinkedIn job postings into skill-tagged records",
	Long: `Reads job postings from a scraped SQLite database or a CSV export,
cleans the descriptions, extracts skills against the tech dictionary and
writes the processed postings the serve command loads. Without a source the
built-in sample postings are used.`,
	RunE: runJobs,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.Flags().StringVar(&jobsDatabase, "database", "", "Path to a LinkedIn SQLite database")
	jobsCmd.Flags().StringVar(&jobsCSV, "csv", "", "Path to a CSV file with job postings")
	jobsCmd.Flags().IntVar(&jobsLimit, "limit", 0, "Limit the number of jobs processed (0 = no limit)")
	jobsCmd.Flags().StringVar(&jobsOutput, "output", "data/linkedin_jobs_processed.json", "Output JSON path")
}

func runJobs(cmd *cobra.Command, args []string) error {
	doc, err := jobs.Process(jobs.Options{
		Database: jobsDatabase,
		CSV:      jobsCSV,
		Limit:    jobsLimit,
	})
	if err != nil {
		return fmt.Errorf("jobs: %w", err)
	}

	if err := roadmap.WriteJSON(jobsOutput, doc); err != nil {
		return fmt.Errorf("jobs: %w", err)
	}

	slog.Info("jobs: done",
		slog.String("out", jobsOutput),
		slog.Int("jobs", len(doc.Jobs)))
	return nil
}
