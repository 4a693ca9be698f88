package resume

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/jobs"
)

// JobSkillMatch is one job requirement scored against the resume. The
// percentage comes straight from the model; status only buckets it for
// display (strong >= 75, moderate >= 50, weak otherwise).
type JobSkillMatch struct {
	Skill               string   `json:"skill"`
	MatchPercentage     float64  `json:"match_percentage"`
	Status              string   `json:"status"`
	MatchedResumeSkills []string `json:"matched_resume_skills"`
	Reasoning           string   `json:"reasoning"`
}

// JobMatch is the full resume-to-job comparison attached to an Analysis.
type JobMatch struct {
	JobTitle               string          `json:"job_title"`
	CompanyName            string          `json:"company_name"`
	TotalJobSkills         int             `json:"total_job_skills"`
	OverallMatchPercentage float64         `json:"overall_match_percentage"`
	AllSkills              []JobSkillMatch `json:"all_skills"`
	StrongCount            int             `json:"strong_count"`
	ModerateCount          int             `json:"moderate_count"`
	WeakCount              int             `json:"weak_count"`
	DetailedMatches        []aiJobSkill    `json:"detailed_matches,omitempty"`
	ExpandedDescription    string          `json:"expanded_description,omitempty"`
	RawAIResponse          string          `json:"raw_ai_response,omitempty"`
	AIGenerated            bool            `json:"ai_generated,omitempty"`
	Error                  string          `json:"error,omitempty"`
}

type aiJobSkill struct {
	SkillName           string   `json:"skill_name"`
	MatchPercentage     float64  `json:"match_percentage"`
	MatchedResumeSkills []string `json:"matched_resume_skills"`
	Reasoning           string   `json:"reasoning"`
}

type aiJobMatchResponse struct {
	JobSkills              []aiJobSkill `json:"job_skills"`
	OverallMatchPercentage float64      `json:"overall_match_percentage"`
}

const resumeSkillLineLimit = 100

// UniqueJobs filters postings to the first occurrence of each title,
// preserving order. Untitled postings are skipped.
func UniqueJobs(doc *jobs.Doc) []jobs.Posting {
	if doc == nil {
		return nil
	}
	seen := map[string]bool{}
	var unique []jobs.Posting
	for _, job := range doc.Jobs {
		if job.JobTitle == "" || seen[job.JobTitle] {
			continue
		}
		seen[job.JobTitle] = true
		unique = append(unique, job)
	}
	return unique
}

// JobByIndex returns the idx-th unique posting, or nil when out of range.
func JobByIndex(doc *jobs.Doc, idx int) *jobs.Posting {
	unique := UniqueJobs(doc)
	if idx < 0 || idx >= len(unique) {
		return nil
	}
	return &unique[idx]
}

// expandJobDescription asks the model to elaborate a posting's description
// with proficiency and experience expectations. Falls back to the original
// description when the call fails.
func (a *Analyzer) expandJobDescription(ctx context.Context, job *jobs.Posting) string {
	names := skillNames(job.Skills)
	if len(names) > 20 {
		names = names[:20]
	}
	prompt := buildExpansionPrompt(job.JobTitle, job.CompanyName, job.JobDescription, names)

	expanded, err := engine.CallLLMTuned(ctx, expansionSystem, prompt, expansionTemp, expansionMaxTokens)
	if err != nil {
		slog.Warn("resume: job description expansion failed", slog.Any("error", err))
		return job.JobDescription
	}
	expanded = strings.TrimSpace(expanded)
	if expanded == "" {
		return job.JobDescription
	}
	slog.Info("resume: expanded job description", slog.Int("chars", len(expanded)))
	return expanded
}

// compareToJob scores every job skill against the resume with one model
// call. There is no rule-based fallback: when the call fails or returns
// no skills, the result carries an Error with zeroed counts.
func (a *Analyzer) compareToJob(ctx context.Context, job *jobs.Posting, expandedDescription string, matched []MatchedSkill, extracted []string, proficiencies []ProficiencySkill, resumeText string) *JobMatch {
	if len(job.Skills) == 0 {
		return nil
	}
	if expandedDescription == "" {
		expandedDescription = a.expandJobDescription(ctx, job)
	}

	profByName := map[string]float64{}
	for _, p := range proficiencies {
		profByName[strings.ToLower(p.Name)] = p.Proficiency
	}

	var lines []string
	matchedNames := map[string]bool{}
	for _, s := range matched {
		matchedNames[strings.ToLower(s.Skill)] = true
		prof := s.Proficiency
		if prof == 0 {
			prof = profByName[strings.ToLower(s.Skill)]
			if prof == 0 {
				prof = defaultProficiency
			}
		}
		lines = append(lines, fmt.Sprintf("%s (proficiency: %g/5, keywords: %s)", s.Skill, prof, strings.Join(s.Keywords, ", ")))
	}
	for _, name := range extracted {
		if matchedNames[strings.ToLower(name)] {
			continue
		}
		prof, ok := profByName[strings.ToLower(name)]
		if !ok {
			prof = defaultProficiency
		}
		lines = append(lines, fmt.Sprintf("%s (proficiency: %g/5)", name, prof))
	}
	if len(lines) > resumeSkillLineLimit {
		lines = lines[:resumeSkillLineLimit]
	}
	resumeSkills := strings.Join(lines, "\n")

	var jobLines []string
	for _, s := range job.Skills {
		topics := s.Topics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		line := s.Name
		if len(topics) > 0 {
			line += fmt.Sprintf(" (topics: %s)", strings.Join(topics, ", "))
		}
		jobLines = append(jobLines, line)
	}

	prompt := buildJobMatchPrompt(expandedDescription, strings.Join(jobLines, "\n"), resumeSkills, resumeText)

	resp, raw, err := engine.CallLLMJSON[aiJobMatchResponse](ctx, jobMatchSystem, prompt, jobMatchTemp, jobMatchMaxTokens)
	if err != nil {
		slog.Error("resume: job comparison failed", slog.Any("error", err))
		return &JobMatch{
			JobTitle:       job.JobTitle,
			CompanyName:    job.CompanyName,
			TotalJobSkills: len(job.Skills),
			AllSkills:      []JobSkillMatch{},
			Error:          fmt.Sprintf("AI comparison failed: %v", err),
		}
	}
	if len(resp.JobSkills) == 0 {
		slog.Error("resume: job comparison returned no skills")
		return &JobMatch{
			JobTitle:            job.JobTitle,
			CompanyName:         job.CompanyName,
			TotalJobSkills:      len(job.Skills),
			AllSkills:           []JobSkillMatch{},
			Error:               "AI returned empty results",
			ExpandedDescription: expandedDescription,
		}
	}

	all := make([]JobSkillMatch, 0, len(resp.JobSkills))
	strong, moderate, weak := 0, 0, 0
	for _, s := range resp.JobSkills {
		status := "weak"
		switch {
		case s.MatchPercentage >= 75:
			status = "strong"
			strong++
		case s.MatchPercentage >= 50:
			status = "moderate"
			moderate++
		default:
			weak++
		}
		all = append(all, JobSkillMatch{
			Skill:               s.SkillName,
			MatchPercentage:     roundTenth(s.MatchPercentage),
			Status:              status,
			MatchedResumeSkills: s.MatchedResumeSkills,
			Reasoning:           s.Reasoning,
		})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].MatchPercentage > all[j].MatchPercentage })

	slog.Info("resume: job comparison done",
		slog.String("job", job.JobTitle),
		slog.Int("skills", len(all)),
		slog.Float64("overall", resp.OverallMatchPercentage))

	return &JobMatch{
		JobTitle:               job.JobTitle,
		CompanyName:            job.CompanyName,
		TotalJobSkills:         len(job.Skills),
		OverallMatchPercentage: resp.OverallMatchPercentage,
		AllSkills:              all,
		StrongCount:            strong,
		ModerateCount:          moderate,
		WeakCount:              weak,
		DetailedMatches:        resp.JobSkills,
		ExpandedDescription:    expandedDescription,
		RawAIResponse:          raw,
		AIGenerated:            true,
	}
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
