package resume

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/jobs"
)

// MatchedSkill is one catalog skill the AI matched to the resume.
type MatchedSkill struct {
	Skill           string   `json:"skill"`
	Keywords        []string `json:"keywords"`
	MatchedFrom     string   `json:"matched_from"`
	MatchConfidence string   `json:"match_confidence"`
	Reasoning       string   `json:"reasoning"`
	Proficiency     float64  `json:"proficiency"`
}

// ProficiencySkill pairs a raw skill with its 1-5 score.
type ProficiencySkill struct {
	Name        string  `json:"name"`
	Proficiency float64 `json:"proficiency"`
}

// DebugAIResponses keeps the raw model output of every call for inspection.
type DebugAIResponses struct {
	SkillExtraction        string `json:"skill_extraction"`
	SkillMatching          string `json:"skill_matching"`
	ProficiencyCalculation string `json:"proficiency_calculation"`
	JobMatching            string `json:"job_matching,omitempty"`
}

// Analysis is one processed resume, as persisted in the resume log.
type Analysis struct {
	ID                    string             `json:"id"`
	Filename              string             `json:"filename"`
	UploadedAt            string             `json:"uploaded_at"`
	ExtractedSkillsRaw    []string           `json:"extracted_skills_raw"`
	MatchedSkills         []MatchedSkill     `json:"matched_skills"`
	SkillsWithProficiency []ProficiencySkill `json:"skills_with_proficiency"`
	TotalSkillsExtracted  int                `json:"total_skills_extracted"`
	TotalSkillsMatched    int                `json:"total_skills_matched"`
	DebugAIResponses      DebugAIResponses   `json:"debug_ai_responses"`
	JobMatch              *JobMatch          `json:"job_match,omitempty"`
}

// Analyzer runs the full upload pipeline against an in-memory catalog and
// postings file.
type Analyzer struct {
	Catalog *Catalog
	Jobs    *jobs.Doc
}

// NoJob disables job comparison for an Analyze call.
const NoJob = -1

// Analyze runs the four-stage pipeline over extracted resume text. jobIndex
// selects a posting from the unique-title list, NoJob skips comparison.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, filename string, jobIndex int) (*Analysis, error) {
	extracted, extractionRaw := a.extractSkillsAI(ctx, resumeText)
	slog.Info("resume: ai extraction", slog.Int("skills", len(extracted)))

	patternSkills := PatternSkills(resumeText)
	slog.Info("resume: pattern extraction", slog.Int("skills", len(patternSkills)))

	extracted = unionSkills(extracted, patternSkills)
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no skills could be extracted from resume")
	}
	if len(extracted) < 3 {
		slog.Warn("resume: very few skills extracted", slog.Int("skills", len(extracted)))
	}

	matched, matchingRaw := a.matchSkillsAI(ctx, extracted, resumeText)

	// Job context, if requested, feeds both proficiency and the comparison.
	var job *jobs.Posting
	expandedDescription := ""
	if jobIndex != NoJob {
		job = JobByIndex(a.Jobs, jobIndex)
		if job != nil {
			expandedDescription = a.expandJobDescription(ctx, job)
		}
	}

	jobDescription := ""
	var jobSkillNames []string
	if job != nil {
		jobDescription = expandedDescription
		if jobDescription == "" {
			jobDescription = job.JobDescription
		}
		jobSkillNames = skillNames(job.Skills)
	}

	proficiencies, proficiencyRaw := a.proficiencyAI(ctx, extracted, resumeText, jobDescription, jobSkillNames)

	profByName := map[string]float64{}
	for _, p := range proficiencies {
		profByName[strings.ToLower(p.Name)] = p.Proficiency
	}
	for i := range matched {
		if p, ok := profByName[strings.ToLower(matched[i].Skill)]; ok {
			matched[i].Proficiency = p
		} else {
			matched[i].Proficiency = defaultProficiency
		}
	}

	now := time.Now()
	analysis := &Analysis{
		ID:                    now.Format("20060102_150405") + fmt.Sprintf("_%06d", now.Nanosecond()/1000),
		Filename:              filename,
		UploadedAt:            now.Format(time.RFC3339),
		ExtractedSkillsRaw:    extracted,
		MatchedSkills:         matched,
		SkillsWithProficiency: proficiencies,
		TotalSkillsExtracted:  len(extracted),
		TotalSkillsMatched:    len(matched),
		DebugAIResponses: DebugAIResponses{
			SkillExtraction:        extractionRaw,
			SkillMatching:          matchingRaw,
			ProficiencyCalculation: proficiencyRaw,
		},
	}

	if job != nil {
		jm := a.compareToJob(ctx, job, expandedDescription, matched, extracted, proficiencies, resumeText)
		analysis.JobMatch = jm
		if jm != nil {
			analysis.DebugAIResponses.JobMatching = jm.RawAIResponse
		}
	}

	return analysis, nil
}

const defaultProficiency = 3

var (
	fenceRe         = regexp.MustCompile("```[a-z]*\n?")
	listPrefixRe    = regexp.MustCompile(`(?i)^(skills?|technologies?|tools?|frameworks?|languages?|libraries?|platforms?):\s*`)
	bulletRe        = regexp.MustCompile(`^[-•*]\s*`)
	numberedRe      = regexp.MustCompile(`^\d+[.)]\s*`)
	leadingParenRe  = regexp.MustCompile(`^\([^)]+\)\s*`)
	trailingParenRe = regexp.MustCompile(`\s*\([^)]+\)\s*$`)
	itemSplitRe     = regexp.MustCompile(`[,;\n|]`)
)

// extractSkillsAI asks the model for a comma-separated skill list and
// parses it defensively. A failed call yields no skills; the pattern pass
// still runs.
func (a *Analyzer) extractSkillsAI(ctx context.Context, resumeText string) ([]string, string) {
	prompt := buildExtractionPrompt(a.Catalog, resumeText)

	raw, err := engine.CallLLMTuned(ctx, extractionSystem, prompt, extractionTemp, extractionMaxTokens)
	if err != nil {
		slog.Warn("resume: skill extraction failed", slog.Any("error", err))
		return nil, "Error: " + err.Error()
	}

	return parseSkillList(raw), raw
}

// parseSkillList splits a model response into skill names, tolerating
// bullets, numbering, labels and stray markdown.
func parseSkillList(text string) []string {
	text = fenceRe.ReplaceAllString(text, "")

	seen := map[string]bool{}
	var skills []string
	for _, item := range itemSplitRe.Split(text, -1) {
		item = strings.TrimSpace(item)
		item = listPrefixRe.ReplaceAllString(item, "")
		item = bulletRe.ReplaceAllString(item, "")
		item = numberedRe.ReplaceAllString(item, "")
		item = leadingParenRe.ReplaceAllString(item, "")
		item = trailingParenRe.ReplaceAllString(item, "")
		item = strings.TrimSpace(item)
		if len(item) <= 1 {
			continue
		}

		item = fixKnownSpelling(item)
		lower := strings.ToLower(item)
		if !seen[lower] {
			seen[lower] = true
			skills = append(skills, item)
		}
	}
	return skills
}

// fixKnownSpelling normalizes a handful of spellings the model tends to
// vary; everything else keeps the model's casing.
func fixKnownSpelling(item string) string {
	switch strings.ToLower(item) {
	case "c++", "cpp", "cxx":
		return "C++"
	case "html5":
		return "HTML5"
	case "css3":
		return "CSS3"
	case "node.js", "nodejs":
		return "Node.js"
	}
	return item
}

// unionSkills merges two skill lists, deduplicating case-insensitively with
// the first casing winning.
func unionSkills(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			lower := strings.ToLower(s)
			if !seen[lower] {
				seen[lower] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// aiMatchResponse is the JSON contract of the matching call.
type aiMatchResponse struct {
	MatchedSkills []struct {
		ExtractedSkill  string   `json:"extracted_skill"`
		RoadmapSkill    string   `json:"roadmap_skill"`
		MatchConfidence string   `json:"match_confidence"`
		Keywords        []string `json:"keywords"`
		Reasoning       string   `json:"reasoning"`
	} `json:"matched_skills"`
}

// matchSkillsAI maps extracted skills onto catalog skills semantically.
// Failure yields an empty match list; the analysis still completes.
func (a *Analyzer) matchSkillsAI(ctx context.Context, extracted []string, resumeText string) ([]MatchedSkill, string) {
	prompt := buildMatchingPrompt(a.Catalog, extracted, resumeText)

	resp, raw, err := engine.CallLLMJSON[aiMatchResponse](ctx, matchingSystem, prompt, matchingTemp, matchingMaxTokens)
	if err != nil {
		slog.Warn("resume: skill matching failed", slog.Any("error", err))
		return nil, ""
	}

	seen := map[string]bool{}
	var matched []MatchedSkill
	for _, m := range resp.MatchedSkills {
		if m.RoadmapSkill == "" || seen[m.RoadmapSkill] {
			continue
		}
		seen[m.RoadmapSkill] = true
		confidence := m.MatchConfidence
		if confidence == "" {
			confidence = "semantic"
		}
		matched = append(matched, MatchedSkill{
			Skill:           m.RoadmapSkill,
			Keywords:        m.Keywords,
			MatchedFrom:     m.ExtractedSkill,
			MatchConfidence: confidence,
			Reasoning:       m.Reasoning,
		})
	}
	slog.Info("resume: ai matching", slog.Int("matched", len(matched)))
	return matched, raw
}

// proficiencyAI rates each extracted skill 1-5. On failure every skill gets
// the default score.
func (a *Analyzer) proficiencyAI(ctx context.Context, extracted []string, resumeText, jobDescription string, jobSkillNames []string) ([]ProficiencySkill, string) {
	if len(extracted) == 0 {
		return nil, ""
	}
	prompt := buildProficiencyPrompt(extracted, resumeText, jobDescription, jobSkillNames)

	resp, raw, err := engine.CallLLMJSON[map[string]float64](ctx, proficiencySystem, prompt, proficiencyTemp, proficiencyMaxTokens)
	if err != nil {
		slog.Warn("resume: proficiency scoring failed", slog.Any("error", err))
		fallback := make([]ProficiencySkill, 0, len(extracted))
		for _, s := range extracted {
			fallback = append(fallback, ProficiencySkill{Name: s, Proficiency: defaultProficiency})
		}
		return fallback, ""
	}

	skills := make([]ProficiencySkill, 0, len(*resp))
	for name, p := range *resp {
		skills = append(skills, ProficiencySkill{Name: name, Proficiency: clampProficiency(p)})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	slog.Info("resume: proficiency scored", slog.Int("skills", len(skills)))
	return skills, raw
}

func clampProficiency(p float64) float64 {
	if p < 1 {
		return 1
	}
	if p > 5 {
		return 5
	}
	return p
}

func skillNames(skills []jobs.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}
