// Package clean flattens the raw role tree into the searchable skill
// catalog: normalized names, stable slug ids, keyword sets and validated
// links.
package clean

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

var (
	skillPrefixRe = regexp.MustCompile(`^(learn|understand|master|explore|study|get started with|introduction to|guide to|tutorial on)\s+`)
	skillSuffixRe = regexp.MustCompile(`\s+(tutorial|guide|course|learning|basics|advanced|introduction)$`)
	punctRe       = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

	roleQualifierRe = regexp.MustCompile(`\s+(in|for|with|using|via)\s+[A-Z][a-z]+$`)
	roleDashRe      = regexp.MustCompile(`\s+-\s+[A-Z][a-z]+$`)

	techExtRe  = regexp.MustCompile(`\b\w+\.(js|ts|py|java|go|rs|rb|php|swift|kt)\b`)
	techTermRe = []*regexp.Regexp{
		regexp.MustCompile(`\b\w+js\b`),
		regexp.MustCompile(`\b\w+\.net\b`),
		regexp.MustCompile(`\b\w+db\b`),
		regexp.MustCompile(`\b\w+sql\b`),
	}
)

// NormalizeSkillName lowercases, strips instructional prefixes/suffixes and
// punctuation, and removes stop words.
func NormalizeSkillName(name string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	name = skillPrefixRe.ReplaceAllString(name, "")
	name = skillSuffixRe.ReplaceAllString(name, "")
	name = punctRe.ReplaceAllString(name, " ")

	var words []string
	for _, w := range strings.Fields(name) {
		if _, stop := taxonomy.StopWords[w]; !stop && utf8.RuneCountInString(w) > 1 {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// ExtractKeywords builds a sorted keyword set from the skill's own words,
// its role context, the synonym table and tech-term patterns.
func ExtractKeywords(skillName, roleName string) []string {
	keywords := map[string]bool{}

	for _, w := range strings.Fields(skillName) {
		keywords[w] = true
	}
	for _, w := range strings.Fields(strings.ToLower(roleName)) {
		if _, stop := taxonomy.StopWords[w]; !stop && len(w) > 2 {
			keywords[w] = true
		}
	}

	skillLower := strings.ToLower(skillName)
	for _, syn := range taxonomy.SkillSynonyms {
		if strings.Contains(skillLower, syn.Abbrev) {
			for _, e := range syn.Expansions {
				keywords[e] = true
			}
		}
		for _, expansion := range syn.Expansions {
			for _, word := range strings.Fields(expansion) {
				if strings.Contains(skillLower, word) {
					keywords[syn.Abbrev] = true
					break
				}
			}
		}
	}

	// The extension pattern contributes the extension itself, the rest the
	// whole match.
	for _, m := range techExtRe.FindAllStringSubmatch(skillLower, -1) {
		keywords[m[1]] = true
	}
	for _, re := range techTermRe {
		for _, m := range re.FindAllString(skillLower, -1) {
			keywords[m] = true
		}
	}

	var out []string
	for k := range keywords {
		if len(k) > 1 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeLink validates a link target: trailing punctuation trimmed, must
// be an absolute http(s) URL with a host. Returns "" for anything else.
func NormalizeLink(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	href = strings.TrimRight(href, ".,;:!?)")
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return href
}

// NormalizeRoleName drops over-specific qualifiers and applies title casing
// with lowercase connectives.
func NormalizeRoleName(roleName string) string {
	if roleName == "" {
		return ""
	}
	roleName = roleQualifierRe.ReplaceAllString(roleName, "")
	roleName = roleDashRe.ReplaceAllString(roleName, "")

	words := strings.Fields(roleName)
	for i, w := range words {
		switch strings.ToLower(w) {
		case "and", "or", "of", "the", "for":
			if i == 0 {
				words[i] = capitalize(w)
			} else {
				words[i] = strings.ToLower(w)
			}
		default:
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return w
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

type roleAcc struct {
	name   string
	skills []roadmap.CleanSkill
}

// Clean transforms the extractor output into the cleaned skill catalog.
func Clean(doc *roadmap.RawDoc) *roadmap.CleanDoc {
	var order []string
	roles := map[string]*roleAcc{}
	skillIDs := map[string]bool{}

	for _, rawRole := range doc.Roles {
		if rawRole.RoleName == "" {
			continue
		}
		roleName := NormalizeRoleName(rawRole.RoleName)
		if roleName == "" {
			continue
		}

		for _, section := range rawRole.Sections {
			var category *string
			if section.SectionName != "" && section.SectionName != "main" {
				name := section.SectionName
				category = &name
			}

			for _, rawSkill := range section.Skills {
				skillText := strings.TrimSpace(rawSkill.SkillText)
				if skillText == "" {
					continue
				}
				name := NormalizeSkillName(skillText)
				if utf8.RuneCountInString(name) < 2 {
					continue
				}

				skillID := engine.Slugify(name)
				if skillIDs[skillID] {
					skillID = skillID + "-" + engine.Slugify(roleName)
				}
				skillIDs[skillID] = true

				var links []string
				seen := map[string]bool{}
				for _, link := range rawSkill.Links {
					if u := NormalizeLink(link.Href); u != "" && !seen[u] {
						seen[u] = true
						links = append(links, u)
					}
				}

				acc, ok := roles[roleName]
				if !ok {
					acc = &roleAcc{name: roleName}
					roles[roleName] = acc
					order = append(order, roleName)
				}
				acc.skills = append(acc.skills, roadmap.CleanSkill{
					SkillID:  skillID,
					Name:     name,
					Category: category,
					Keywords: ExtractKeywords(name, roleName),
					Links:    links,
				})
			}
		}
	}

	order, roles = mergeDuplicateRoles(order, roles)

	out := &roadmap.CleanDoc{}
	for _, roleName := range order {
		acc := roles[roleName]

		var kept []roadmap.CleanSkill
		seenNames := map[string]bool{}
		for _, s := range acc.skills {
			if len(s.Links) == 0 && utf8.RuneCountInString(s.Name) <= 3 {
				continue
			}
			if s.Name == "" || seenNames[s.Name] {
				continue
			}
			seenNames[s.Name] = true
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			continue
		}
		out.Roles = append(out.Roles, roadmap.CleanRole{Role: acc.name, Skills: kept})
	}

	sort.Slice(out.Roles, func(i, j int) bool { return out.Roles[i].Role < out.Roles[j].Role })
	return out
}

// mergeDuplicateRoles folds variant role names into the canonical role when
// it is already present; otherwise the first spelling seen keeps its name.
func mergeDuplicateRoles(order []string, roles map[string]*roleAcc) ([]string, map[string]*roleAcc) {
	var mergedOrder []string
	merged := map[string]*roleAcc{}

	add := func(name string, acc *roleAcc) {
		if _, ok := merged[name]; !ok {
			mergedOrder = append(mergedOrder, name)
		}
		merged[name] = acc
	}

	for _, roleName := range order {
		acc := roles[roleName]
		roleLower := strings.ToLower(roleName)

		canonical := ""
		for _, m := range taxonomy.RoleMergers {
			if roleLower == m.Canonical {
				canonical = titleCanonical(m.Canonical)
				break
			}
			matched := false
			for _, v := range m.Variants {
				if roleLower == v || strings.Contains(roleLower, v) {
					matched = true
					break
				}
			}
			if matched {
				canonical = titleCanonical(m.Canonical)
				break
			}
		}

		if canonical != "" {
			if target, ok := merged[canonical]; ok {
				target.skills = append(target.skills, acc.skills...)
				continue
			}
		}
		add(roleName, acc)
	}

	return mergedOrder, merged
}

// titleCanonical capitalizes each letter run, so "ci/cd" becomes "Ci/Cd".
func titleCanonical(s string) string {
	var b strings.Builder
	upNext := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' && upNext:
			b.WriteRune(r - 32)
			upNext = false
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
			upNext = false
		default:
			b.WriteRune(r)
			upNext = true
		}
	}
	return b.String()
}
