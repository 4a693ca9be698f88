// Package structure reshapes the raw role tree into the
// role > skill > topic > resource hierarchy used as the matching catalog.
package structure

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

var (
	skillPrefixRe = regexp.MustCompile(`^(learn|understand|master|guide to|introduction to|getting started with|how to)\s+`)
	skillSuffixRe = regexp.MustCompile(`\s+(tutorial|guide|course|basics|advanced|introduction|fundamentals)$`)

	typeAnnotationRe = regexp.MustCompile(`@(\w+)@`)
)

// Resource-type detection term lists, checked in this order. First hit wins.
var resourceTypeTerms = []struct {
	typ   string
	terms []string
}{
	{"documentation", []string{"/docs/", "docs.", "documentation", "developer.mozilla.org", "docs.rs", "pkg.go.dev", "api.", ".org/docs", ".com/docs"}},
	{"video", []string{"youtube.com", "youtu.be", "watch?v=", "playlist", "/video/", "vimeo.com"}},
	{"course", []string{"course", "udemy", "coursera", "edx", "pluralsight", "/learn/", "/tutorial/", "codecademy"}},
	{"book", []string{"book", ".pdf", "epub", "oreilly"}},
	{"podcast", []string{"podcast", "soundcloud", "spotify", "apple.com/podcasts"}},
	{"article", []string{"medium.com", "blog.", "/blog/", "dev.to", "hashnode", "article"}},
	{"official", []string{"github.com", "official", ".org/", ".io/"}},
}

// Common tech names accepted as skill keys when the table has no match.
var knownTechWords = map[string]bool{
	"react": true, "vue": true, "angular": true, "node": true,
	"express": true, "mongodb": true, "redis": true, "docker": true,
	"kubernetes": true,
}

// TitleCase capitalizes every letter run, like "machine learning basics" →
// "Machine Learning Basics" (punctuation starts a new run).
func TitleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// DetectResourceType classifies a link by URL and title fragments.
func DetectResourceType(url, title string) string {
	if url == "" {
		return "article"
	}
	combined := strings.ToLower(url) + " " + strings.ToLower(title)
	for _, group := range resourceTypeTerms {
		for _, term := range group.terms {
			if strings.Contains(combined, term) {
				return group.typ
			}
		}
	}
	return "article"
}

// ExtractSkillKey picks the canonical technology for a skill entry. Longest
// matching synonym wins; ties keep table order. Without a table hit the
// first meaningful word decides, falling back to its Title-cased form or
// "General".
func ExtractSkillKey(skillName string, keywords []string, roleName string) string {
	combined := strings.ToLower(skillName + " " + strings.Join(keywords, " ") + " " + roleName)

	bestKey, bestLen := "", 0
	for _, ts := range taxonomy.TechSkills {
		for _, term := range ts.Terms {
			if len(term) > bestLen && strings.Contains(combined, term) {
				bestKey, bestLen = ts.Key, len(term)
			}
		}
	}
	if bestKey != "" {
		return bestKey
	}

	name := strings.ToLower(skillName)
	name = skillPrefixRe.ReplaceAllString(name, "")
	name = skillSuffixRe.ReplaceAllString(name, "")

	words := strings.Fields(name)
	if len(words) == 0 {
		return "General"
	}
	first := words[0]

	for _, ts := range taxonomy.TechSkills {
		if first == ts.Key {
			return ts.Key
		}
		for _, term := range ts.Terms {
			if first == term {
				return ts.Key
			}
		}
	}
	if knownTechWords[first] {
		return first
	}
	return TitleCase(strings.ReplaceAll(first, "-", " "))
}

// NormalizeRole maps a raw role name onto a standard title, or Title-cases
// it when no fragment matches.
func NormalizeRole(roleName string) string {
	roleLower := strings.ToLower(roleName)
	for _, rt := range taxonomy.StandardRoleTitles {
		if strings.Contains(roleLower, rt.Match) {
			return rt.Title
		}
	}
	return TitleCase(roleName)
}

// resourceFromLink builds a typed resource. The @type@ annotation in the
// link text wins; otherwise type detection runs on the URL plus whatever
// text is available.
func resourceFromLink(link roadmap.Link, skillName string) roadmap.Resource {
	resourceType := "article"
	switch {
	case link.Text != "":
		if m := typeAnnotationRe.FindStringSubmatch(link.Text); m != nil {
			if mapped, ok := taxonomy.ResourceTypeAnnotations[strings.ToLower(m[1])]; ok {
				resourceType = mapped
			}
		} else {
			resourceType = DetectResourceType(link.Href, link.Text)
		}
	default:
		resourceType = DetectResourceType(link.Href, skillName)
	}

	title := strings.TrimSpace(typeAnnotationRe.ReplaceAllString(link.Text, ""))
	if title == "" {
		title = TitleCase(skillName)
	}

	return roadmap.Resource{Link: link.Href, Type: resourceType, Title: title}
}

// Structure reshapes the extractor output into the matching catalog.
func Structure(doc *roadmap.RawDoc) *roadmap.StructDoc {
	// role title -> skill key -> topics
	grouped := map[string]map[string][]roadmap.Topic{}

	for _, rawRole := range doc.Roles {
		if rawRole.RoleName == "" {
			continue
		}
		roleTitle := NormalizeRole(rawRole.RoleName)

		for _, section := range rawRole.Sections {
			for _, rawSkill := range section.Skills {
				skillName := rawSkill.SkillText
				if skillName == "" {
					continue
				}

				var nameKeywords []string
				for _, w := range strings.Fields(strings.ToLower(skillName)) {
					if len(w) > 2 {
						nameKeywords = append(nameKeywords, w)
					}
				}
				key := ExtractSkillKey(skillName, nameKeywords, rawRole.RoleName)

				topic := roadmap.Topic{Topic: TitleCase(skillName), Resources: []roadmap.Resource{}}
				for _, link := range rawSkill.Links {
					if link.Href == "" {
						continue
					}
					topic.Resources = append(topic.Resources, resourceFromLink(link, skillName))
				}

				if grouped[roleTitle] == nil {
					grouped[roleTitle] = map[string][]roadmap.Topic{}
				}
				grouped[roleTitle][key] = append(grouped[roleTitle][key], topic)
			}
		}
	}

	out := &roadmap.StructDoc{}
	roleTitles := make([]string, 0, len(grouped))
	for title := range grouped {
		roleTitles = append(roleTitles, title)
	}
	sort.Strings(roleTitles)

	for _, roleTitle := range roleTitles {
		skillKeys := make([]string, 0, len(grouped[roleTitle]))
		for key := range grouped[roleTitle] {
			skillKeys = append(skillKeys, key)
		}
		sort.Strings(skillKeys)

		role := roadmap.StructRole{Role: roleTitle}
		for _, key := range skillKeys {
			role.Skills = append(role.Skills, roadmap.StructSkill{
				Skill:    TitleCase(strings.ReplaceAll(key, "-", " ")),
				Keywords: skillKeywords(key),
				Topics:   grouped[roleTitle][key],
			})
		}
		if len(role.Skills) > 0 {
			out.Roles = append(out.Roles, role)
		}
	}
	return out
}

// skillKeywords takes the first five table terms for known skills, or
// derives keywords from the key itself, capped at ten and sorted.
func skillKeywords(key string) []string {
	var kws []string
	if terms := taxonomy.TechSkillTerms(key); terms != nil {
		kws = terms
		if len(kws) > 5 {
			kws = kws[:5]
		}
	} else {
		lower := strings.ToLower(key)
		kws = append([]string{lower}, strings.Split(lower, "-")...)
	}

	seen := map[string]bool{}
	var out []string
	for _, k := range kws {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	sort.Strings(out)
	return out
}
