package jobs

import (
	"log/slog"
	"os"
)

// Options select the posting source. Database wins over CSV; when neither
// is usable the built-in samples seed the output.
type Options struct {
	Database string
	CSV      string
	Limit    int
}

// Process produces the postings document from the first usable source and
// pads it to a full validation page.
func Process(opts Options) (*Doc, error) {
	var postings []Posting

	if opts.Database != "" {
		if _, err := os.Stat(opts.Database); err == nil {
			slog.Info("jobs: processing from database", slog.String("path", opts.Database))
			p, err := FromDB(opts.Database, opts.Limit)
			if err != nil {
				return nil, err
			}
			postings = p
		} else {
			slog.Warn("jobs: database not found", slog.String("path", opts.Database))
		}
	}

	if len(postings) == 0 && opts.CSV != "" {
		if _, err := os.Stat(opts.CSV); err == nil {
			slog.Info("jobs: processing from csv", slog.String("path", opts.CSV))
			p, err := FromCSV(opts.CSV, opts.Limit)
			if err != nil {
				return nil, err
			}
			postings = p
		} else {
			slog.Warn("jobs: csv not found", slog.String("path", opts.CSV))
		}
	}

	if len(postings) == 0 {
		slog.Warn("jobs: no input source, seeding with sample postings")
		postings = SamplePostings()
	}

	postings = padPostings(postings)

	total := 0
	for _, p := range postings {
		total += len(p.Skills)
	}
	slog.Info("jobs: processing complete", slog.Int("jobs", len(postings)), slog.Int("skills", total))

	return &Doc{Jobs: postings}, nil
}
