// Package cmd implements the skillmap CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmap",
	Short: "Roadmap skill ETL and resume matching backend",
	Long: `skillmap turns a developer-roadmap checkout into searchable skill
catalogs, processes LinkedIn job postings against those catalogs, and serves
a resume analysis API that matches uploaded resumes to roadmap skills and
job requirements.

The pipeline stages (extract, clean, structure, domains, roadmap-domains,
jobs) are batch transforms over JSON files under data/; serve exposes the
results over HTTP.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
