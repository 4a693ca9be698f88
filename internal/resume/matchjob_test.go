package resume

import (
	"testing"

	"github.com/avoronov/go_skillmap/internal/jobs"
)

func jobsDoc() *jobs.Doc {
	return &jobs.Doc{Jobs: []jobs.Posting{
		{JobTitle: "Backend Engineer", CompanyName: "Acme"},
		{JobTitle: "Frontend Engineer", CompanyName: "Beta"},
		{JobTitle: "Backend Engineer", CompanyName: "Gamma"},
		{JobTitle: "", CompanyName: "Untitled Inc"},
		{JobTitle: "Data Engineer", CompanyName: "Delta"},
	}}
}

func TestUniqueJobs(t *testing.T) {
	unique := UniqueJobs(jobsDoc())
	if len(unique) != 3 {
		t.Fatalf("UniqueJobs: %d jobs, want 3", len(unique))
	}
	// First occurrence of a title wins.
	if unique[0].CompanyName != "Acme" {
		t.Errorf("unique[0].CompanyName = %q, want Acme", unique[0].CompanyName)
	}
	if unique[1].JobTitle != "Frontend Engineer" || unique[2].JobTitle != "Data Engineer" {
		t.Errorf("unexpected order: %q, %q", unique[1].JobTitle, unique[2].JobTitle)
	}
}

func TestUniqueJobsNil(t *testing.T) {
	if got := UniqueJobs(nil); got != nil {
		t.Errorf("UniqueJobs(nil) = %v, want nil", got)
	}
}

func TestJobByIndex(t *testing.T) {
	doc := jobsDoc()

	if job := JobByIndex(doc, 0); job == nil || job.CompanyName != "Acme" {
		t.Errorf("JobByIndex(0) = %+v, want Acme posting", job)
	}
	if job := JobByIndex(doc, 2); job == nil || job.JobTitle != "Data Engineer" {
		t.Errorf("JobByIndex(2) = %+v, want Data Engineer", job)
	}
	if job := JobByIndex(doc, 3); job != nil {
		t.Errorf("JobByIndex(3) = %+v, want nil", job)
	}
	if job := JobByIndex(doc, -1); job != nil {
		t.Errorf("JobByIndex(-1) = %+v, want nil", job)
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{78.46, 78.5},
		{33.333, 33.3},
		{50, 50},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundTenth(tt.in); got != tt.want {
			t.Errorf("roundTenth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
