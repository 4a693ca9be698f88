// Package resume implements the upload analysis pipeline: document text
// extraction, AI skill extraction with a pattern-based supplement, catalog
// matching, proficiency scoring and optional job comparison.
package resume

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/avoronov/go_skillmap/internal/roadmap"
)

// topicPromptLimit caps the topic list fed into prompts; the full catalog
// would blow the token budget.
const topicPromptLimit = 200

// Catalog is the flattened skill catalog used to seed prompts: every skill,
// role, topic and keyword from the structured roadmap file, sorted.
type Catalog struct {
	Skills   []string
	Roles    []string
	Topics   []string
	Keywords []string
}

// LoadCatalog reads roadmaps_role_skill.json and flattens it for prompt
// generation.
func LoadCatalog(path string) (*Catalog, error) {
	var doc roadmap.StructDoc
	if err := roadmap.ReadJSON(path, &doc); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	skills := map[string]bool{}
	roles := map[string]bool{}
	topics := map[string]bool{}
	keywords := map[string]bool{}

	for _, role := range doc.Roles {
		if role.Role != "" {
			roles[role.Role] = true
		}
		for _, skill := range role.Skills {
			if skill.Skill != "" {
				skills[skill.Skill] = true
			}
			for _, kw := range skill.Keywords {
				if kw != "" {
					keywords[strings.ToLower(kw)] = true
				}
			}
			for _, topic := range skill.Topics {
				if topic.Topic != "" {
					topics[topic.Topic] = true
				}
			}
		}
	}

	cat := &Catalog{
		Skills:   sortedKeys(skills),
		Roles:    sortedKeys(roles),
		Topics:   sortedKeys(topics),
		Keywords: sortedKeys(keywords),
	}
	if len(cat.Topics) > topicPromptLimit {
		cat.Topics = cat.Topics[:topicPromptLimit]
	}

	slog.Info("catalog loaded",
		slog.Int("skills", len(cat.Skills)),
		slog.Int("roles", len(cat.Roles)),
		slog.Int("keywords", len(cat.Keywords)))
	return cat, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// sampleByKeywords picks catalog skills containing any of the given
// keywords, capped at limit.
func sampleByKeywords(skills []string, keywords []string, limit int) []string {
	var out []string
	for _, s := range skills {
		if len(out) >= limit {
			break
		}
		lower := strings.ToLower(s)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// PromptSamples assembles the categorized skill examples embedded in the
// extraction prompt.
func (c *Catalog) PromptSamples() []string {
	groups := [][]string{
		sampleByKeywords(c.Skills, []string{"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "kotlin", "swift", "php", "ruby", "scala", "r", "dart", "html", "css", "sql"}, 30),
		sampleByKeywords(c.Skills, []string{"react", "vue", "angular", "django", "flask", "express", "spring", "next", "nuxt", "svelte", "asp", "net", "laravel", "rails"}, 30),
		sampleByKeywords(c.Skills, []string{"docker", "kubernetes", "aws", "azure", "gcp", "vercel", "netlify", "git", "jenkins", "terraform", "ansible"}, 30),
		sampleByKeywords(c.Skills, []string{"mysql", "postgres", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb", "sqlite", "oracle", "cosmos", "couch"}, 20),
		sampleByKeywords(c.Skills, []string{"jest", "cypress", "mocha", "selenium", "playwright", "pytest", "junit", "test"}, 20),
		sampleByKeywords(c.Skills, []string{"tensorflow", "pytorch", "pandas", "numpy", "opencv", "nltk", "spacy", "slam", "ros", "machine learning", "ai", "neural"}, 20),
	}

	seen := map[string]bool{}
	var samples []string
	for _, g := range groups {
		for _, s := range g {
			if !seen[s] {
				seen[s] = true
				samples = append(samples, s)
			}
		}
	}
	if len(samples) > 100 {
		samples = samples[:100]
	}
	return samples
}
