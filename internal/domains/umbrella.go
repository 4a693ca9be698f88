// Package domains implements the two restructuring passes over the cleaned
// skill catalog: broad umbrella grouping and roadmap-title career domains.
package domains

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

// UmbrellaForRole picks the umbrella whose role list matches the role name:
// substring containment in either direction first, then any shared word.
func UmbrellaForRole(roleName string) string {
	roleLower := strings.ToLower(strings.TrimSpace(roleName))

	for _, u := range taxonomy.Umbrellas {
		for _, mapped := range u.Roles {
			mappedLower := strings.ToLower(strings.TrimSpace(mapped))
			if strings.Contains(roleLower, mappedLower) || strings.Contains(mappedLower, roleLower) {
				return u.Name
			}
		}
	}

	roleWords := map[string]bool{}
	for _, w := range strings.Fields(roleLower) {
		roleWords[w] = true
	}
	for _, u := range taxonomy.Umbrellas {
		for _, mapped := range u.Roles {
			for _, w := range strings.Fields(strings.ToLower(strings.TrimSpace(mapped))) {
				if roleWords[w] {
					return u.Name
				}
			}
		}
	}

	return taxonomy.FallbackUmbrella
}

// CategoryForSkill assigns a skill to an umbrella category by keyword
// containment against the skill or role name, falling back to the
// umbrella's default.
func CategoryForSkill(skillName, roleName, umbrellaName string) string {
	u := taxonomy.UmbrellaByName(umbrellaName)
	if u == nil {
		return "General"
	}

	skillLower := strings.ToLower(skillName)
	roleLower := strings.ToLower(roleName)
	for _, cat := range u.Categories {
		for _, kw := range cat.Keywords {
			kwLower := strings.ToLower(kw)
			if strings.Contains(skillLower, kwLower) || strings.Contains(roleLower, kwLower) {
				return cat.Name
			}
		}
	}

	if u.DefaultCategory != "" {
		return u.DefaultCategory
	}
	return "General"
}

// GroupByUmbrella runs the first restructuring pass: every role lands in an
// umbrella, every skill in a category. Umbrellas and categories come out
// sorted; empty ones are dropped.
func GroupByUmbrella(doc *roadmap.CleanDoc) *roadmap.UmbrellaDoc {
	type umbrellaAcc struct {
		description string
		catOrder    []string
		cats        map[string][]roadmap.CleanSkill
	}

	grouped := map[string]*umbrellaAcc{}

	for _, role := range doc.Roles {
		if role.Role == "" {
			continue
		}
		name := UmbrellaForRole(role.Role)

		acc, ok := grouped[name]
		if !ok {
			desc := fmt.Sprintf("Skills and technologies related to %s.", strings.ToLower(name))
			if u := taxonomy.UmbrellaByName(name); u != nil {
				desc = u.Description
			}
			acc = &umbrellaAcc{description: desc, cats: map[string][]roadmap.CleanSkill{}}
			grouped[name] = acc
		}

		for _, skill := range role.Skills {
			if skill.Name == "" {
				continue
			}
			category := CategoryForSkill(skill.Name, role.Role, name)
			if _, ok := acc.cats[category]; !ok {
				acc.catOrder = append(acc.catOrder, category)
			}
			acc.cats[category] = append(acc.cats[category], skill)
		}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &roadmap.UmbrellaDoc{}
	for _, name := range names {
		acc := grouped[name]

		cats := make([]string, 0, len(acc.cats))
		for cat := range acc.cats {
			cats = append(cats, cat)
		}
		sort.Strings(cats)

		domain := roadmap.UmbrellaDomain{Umbrella: name, Description: acc.description}
		for _, cat := range cats {
			if len(acc.cats[cat]) == 0 {
				continue
			}
			domain.Skills = append(domain.Skills, roadmap.CategoryGroup{
				Category:  cat,
				Subskills: acc.cats[cat],
			})
		}
		if len(domain.Skills) > 0 {
			out.Domains = append(out.Domains, domain)
		}
	}
	return out
}
