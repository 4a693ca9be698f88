package jobs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

type skillMatcher struct {
	entry  taxonomy.JobSkill
	keyRe  *regexp.Regexp
	nameRe *regexp.Regexp
}

type conceptMatcher struct {
	re      *regexp.Regexp
	roadmap string
}

type phraseMatcher struct {
	re    *regexp.Regexp
	entry taxonomy.PhrasePattern
}

var (
	skillMatchers   []skillMatcher
	conceptMatchers []conceptMatcher
	phraseMatchers  []phraseMatcher
)

func init() {
	// Longest key first so "react native" claims its match before "react".
	// Ties keep table order.
	entries := append([]taxonomy.JobSkill(nil), taxonomy.JobSkills...)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Key) > len(entries[j].Key)
	})

	for _, e := range entries {
		skillMatchers = append(skillMatchers, skillMatcher{
			entry:  e,
			keyRe:  regexp.MustCompile(`\b` + regexp.QuoteMeta(e.Key) + `\b`),
			nameRe: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(e.Name)) + `\b`),
		})
	}
	for _, cp := range taxonomy.ConceptPatterns {
		conceptMatchers = append(conceptMatchers, conceptMatcher{
			re:      regexp.MustCompile(`(?i)` + cp.Pattern),
			roadmap: cp.Roadmap,
		})
	}
	for _, pp := range taxonomy.PhrasePatterns {
		phraseMatchers = append(phraseMatchers, phraseMatcher{
			re:    regexp.MustCompile(pp.Pattern),
			entry: pp,
		})
	}
}

// ExtractSkills detects technologies in a cleaned job description: the keyed
// dictionary first, then conceptual and phrase patterns. Each skill carries
// its roadmap.sh resources; detection order is preserved.
func ExtractSkills(description string) []Skill {
	if description == "" {
		return nil
	}
	lower := strings.ToLower(description)

	var order []string
	found := map[string]*Skill{}

	for _, m := range skillMatchers {
		if !m.keyRe.MatchString(lower) && !m.nameRe.MatchString(lower) {
			continue
		}
		id := engine.Slugify(m.entry.Key)
		if _, ok := found[id]; ok {
			continue
		}
		found[id] = &Skill{
			SkillID: id,
			Name:    m.entry.Name,
			Topics:  append([]string(nil), m.entry.Topics...),
		}
		order = append(order, id)
	}

	for _, cm := range conceptMatchers {
		if !cm.re.MatchString(description) {
			continue
		}
		id := engine.Slugify(cm.roadmap)
		if _, ok := found[id]; ok {
			continue
		}
		found[id] = &Skill{
			SkillID: id,
			Name:    engine.TitleWords(cm.roadmap),
			Topics:  []string{"technology", "development"},
		}
		order = append(order, id)
	}

	for _, pm := range phraseMatchers {
		if !pm.re.MatchString(lower) {
			continue
		}
		id := engine.Slugify(strings.ToLower(pm.entry.Name))
		if _, ok := found[id]; ok {
			continue
		}
		found[id] = &Skill{
			SkillID: id,
			Name:    pm.entry.Name,
			Topics:  append([]string(nil), pm.entry.Topics...),
		}
		order = append(order, id)
	}

	out := make([]Skill, 0, len(order))
	for _, id := range order {
		s := found[id]
		s.Resources = resourcesFor(s.Name)
		out = append(out, *s)
	}
	return out
}

// resourcesFor resolves roadmap.sh links by the skill's lowered display
// name. Names that are not dictionary keys (Vue.js, concept skills) fall
// back to the site root.
func resourcesFor(name string) []string {
	lower := strings.ToLower(name)

	roadmap := ""
	for _, e := range taxonomy.JobSkills {
		if e.Key == lower {
			roadmap = e.Roadmap
			break
		}
	}
	if roadmap == "" {
		for _, pp := range taxonomy.PhrasePatterns {
			if strings.ToLower(pp.Name) == lower {
				roadmap = pp.Roadmap
				break
			}
		}
	}

	if roadmap == "" {
		return []string{"https://roadmap.sh"}
	}
	return []string{
		"https://roadmap.sh/" + roadmap,
		"https://roadmap.sh/" + roadmap + "/guide",
	}
}
