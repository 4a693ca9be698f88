package domains

import (
	"regexp"
	"sort"
	"strings"

	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

var (
	baseQualifierRe = regexp.MustCompile(`\s+(in|for|with|using|via)\s+.*$`)
	baseDashRe      = regexp.MustCompile(`\s+-\s+.*$`)
)

// BestCareerPath scores every career path against the skill's name,
// keywords and links and returns the highest strictly-positive scorer, or
// "" when nothing scores above zero. Ties keep table order.
func BestCareerPath(name string, keywords, links []string, w taxonomy.ScoringWeights) string {
	parts := []string{strings.ToLower(strings.TrimSpace(name))}
	for _, k := range keywords {
		parts = append(parts, strings.ToLower(strings.TrimSpace(k)))
	}
	combined := strings.Join(parts, " ") + " " + strings.ToLower(strings.Join(links, " "))

	bestName, bestScore := "", 0
	for _, cp := range taxonomy.CareerPaths {
		score := scoreCareerPath(cp, combined, w)
		if score > bestScore {
			bestName, bestScore = cp.Name, score
		}
	}
	return bestName
}

func scoreCareerPath(cp taxonomy.CareerPath, combined string, w taxonomy.ScoringWeights) int {
	score := 0
	nameLower := strings.ToLower(cp.Name)

	nameHit := strings.Contains(combined, nameLower)
	if !nameHit {
		for _, word := range strings.Fields(nameLower) {
			if len(word) > 3 && strings.Contains(combined, word) {
				nameHit = true
				break
			}
		}
	}
	if nameHit {
		score += w.NameMatch
	}

	for i, kw := range cp.Keywords {
		if !strings.Contains(combined, strings.ToLower(kw)) {
			continue
		}
		if i < 3 {
			score += w.PrimaryKeyword
		} else {
			score += w.SecondaryKeyword
		}
	}

	if strings.Contains(nameLower, "frontend") && containsAny(combined, "machine learning", "ml", "backend", "server", "database", "sql") {
		score += w.FrontendConflict
	}
	if strings.Contains(nameLower, "backend") && containsAny(combined, "html", "css", "react", "vue", "angular", "frontend") {
		score += w.BackendConflict
	}
	if containsAny(nameLower, "ai", "machine learning", "ml") &&
		!containsAny(combined, "ai", "machine learning", "ml", "neural", "tensorflow", "pytorch", "llm", "agent") {
		score += w.AIWithoutTerms
	}

	return score
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// rescueCareerPath places an unmapped skill by raw keyword count, falling
// back to the default path when nothing matches at all.
func rescueCareerPath(name string, keywords []string) string {
	text := strings.ToLower(name + " " + strings.Join(keywords, " "))

	bestName, bestScore := "", 0
	for _, cp := range taxonomy.CareerPaths {
		score := 0
		for _, kw := range cp.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestName, bestScore = cp.Name, score
		}
	}
	if bestName == "" {
		return taxonomy.FallbackCareerPath
	}
	return bestName
}

// mergeSimilarSkills folds skills sharing a base key (first two words,
// qualifier clauses stripped) into one entry: keyword union, link union,
// longest name wins, first skill id kept.
func mergeSimilarSkills(skills []roadmap.CleanSkill) []roadmap.CleanSkill {
	type acc struct {
		id       string
		name     string
		keywords map[string]bool
		links    []string
		seen     map[string]bool
	}

	var order []string
	merged := map[string]*acc{}

	for _, skill := range skills {
		words := strings.Fields(skill.Name)
		baseKey := strings.ToLower(skill.Name)
		if len(words) >= 2 {
			baseKey = strings.ToLower(strings.Join(words[:2], " "))
		}
		baseKey = baseQualifierRe.ReplaceAllString(baseKey, "")
		baseKey = baseDashRe.ReplaceAllString(baseKey, "")

		a, ok := merged[baseKey]
		if !ok {
			a = &acc{
				id:       skill.SkillID,
				name:     skill.Name,
				keywords: map[string]bool{},
				seen:     map[string]bool{},
			}
			merged[baseKey] = a
			order = append(order, baseKey)
		}
		for _, k := range skill.Keywords {
			a.keywords[k] = true
		}
		for _, l := range skill.Links {
			if !a.seen[l] {
				a.seen[l] = true
				a.links = append(a.links, l)
			}
		}
		if len(skill.Name) > len(a.name) {
			a.name = skill.Name
		}
	}

	out := make([]roadmap.CleanSkill, 0, len(order))
	for _, key := range order {
		a := merged[key]
		keywords := make([]string, 0, len(a.keywords))
		for k := range a.keywords {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		out = append(out, roadmap.CleanSkill{
			SkillID:  a.id,
			Name:     a.name,
			Keywords: keywords,
			Links:    a.links,
		})
	}
	return out
}

// categorize splits a domain's skills by the first matching category
// pattern. Unmatched skills land in "General"; a domain matching nothing
// gets a single "Core Skills" category.
func categorize(skills []roadmap.CleanSkill) []roadmap.CategoryGroup {
	grouped := map[string][]roadmap.CleanSkill{}
	var uncategorized []roadmap.CleanSkill

	for _, skill := range skills {
		combined := strings.ToLower(skill.Name) + " " + strings.ToLower(strings.Join(skill.Keywords, " "))

		matched := ""
		for _, cp := range taxonomy.CareerCategoryPatterns {
			if containsAny(combined, cp.Patterns...) {
				matched = cp.Name
				break
			}
		}
		if matched == "" {
			uncategorized = append(uncategorized, skill)
		} else {
			grouped[matched] = append(grouped[matched], skill)
		}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []roadmap.CategoryGroup
	for _, name := range names {
		out = append(out, roadmap.CategoryGroup{Category: name, Subskills: grouped[name]})
	}
	if len(uncategorized) > 0 {
		out = append(out, roadmap.CategoryGroup{Category: "General", Subskills: uncategorized})
	}
	if len(out) == 0 {
		out = append(out, roadmap.CategoryGroup{Category: "Core Skills", Subskills: skills})
	}
	return out
}

// GroupByCareerPath runs the second restructuring pass over the umbrella
// document: every subskill is scored against the career-path table, merged
// with near duplicates and categorized. Domains come out alphabetically.
func GroupByCareerPath(doc *roadmap.UmbrellaDoc, weights taxonomy.ScoringWeights) *roadmap.CareerDoc {
	var all []roadmap.CleanSkill
	for _, domain := range doc.Domains {
		for _, group := range domain.Skills {
			all = append(all, group.Subskills...)
		}
	}

	byDomain := map[string][]roadmap.CleanSkill{}
	for _, skill := range all {
		domain := BestCareerPath(skill.Name, skill.Keywords, skill.Links, weights)
		if domain == "" {
			domain = rescueCareerPath(skill.Name, skill.Keywords)
		}
		byDomain[domain] = append(byDomain[domain], skill)
	}

	names := make([]string, 0, len(taxonomy.CareerPaths))
	for _, cp := range taxonomy.CareerPaths {
		names = append(names, cp.Name)
	}
	sort.Strings(names)

	out := &roadmap.CareerDoc{}
	for _, name := range names {
		skills := byDomain[name]
		if len(skills) == 0 {
			continue
		}
		cp := taxonomy.CareerPathByName(name)
		out.Domains = append(out.Domains, roadmap.CareerDomain{
			Domain:      name,
			Description: cp.Description,
			Categories:  categorize(mergeSimilarSkills(skills)),
		})
	}
	return out
}
