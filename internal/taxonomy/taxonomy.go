// Package taxonomy holds the immutable classification tables driving the
// pipeline stages: synonym sets, canonical technology names, umbrella and
// career-path domains, and the job-posting skill dictionary.
//
// Tables that participate in ordered matching (longest-match scoring,
// first-match-wins category patterns) are slices, not maps, so declaration
// order is the tie-break order.
package taxonomy

// Synonym links an abbreviation to its expansions; keyword extraction adds
// both directions.
type Synonym struct {
	Abbrev     string
	Expansions []string
}

// RoleMerger folds role-name variants into one canonical role.
type RoleMerger struct {
	Canonical string
	Variants  []string
}

// TechSkill maps a canonical technology key to the terms that identify it.
type TechSkill struct {
	Key   string
	Terms []string
}

// RoleTitle maps a role-name fragment to a standard role title.
type RoleTitle struct {
	Match string
	Title string
}

// Umbrella is a broad domain grouping related roles.
type Umbrella struct {
	Name            string
	Description     string
	Roles           []string
	Categories      []Category
	DefaultCategory string
}

// Category groups skills inside an umbrella by keyword match.
type Category struct {
	Name     string
	Keywords []string
}

// CareerPath is a roadmap-title career domain with its match keywords.
// The first three keywords are primary; the rest are secondary.
type CareerPath struct {
	Name        string
	Description string
	Keywords    []string
}

// ScoringWeights parameterizes career-path matching.
type ScoringWeights struct {
	NameMatch        int // domain name or a long name word appears
	PrimaryKeyword   int // one of the first three keywords appears
	SecondaryKeyword int // any later keyword appears
	FrontendConflict int // frontend domain with backend/ML terms
	BackendConflict  int // backend domain with frontend terms
	AIWithoutTerms   int // AI/ML domain without any AI terms
}

// DefaultScoringWeights is the scoring used by the career-path pass.
var DefaultScoringWeights = ScoringWeights{
	NameMatch:        10,
	PrimaryKeyword:   5,
	SecondaryKeyword: 2,
	FrontendConflict: -10,
	BackendConflict:  -5,
	AIWithoutTerms:   -5,
}

// JobSkill is one entry of the job-posting extraction dictionary.
type JobSkill struct {
	Key     string
	Name    string
	Topics  []string
	Roadmap string
}

// CategoryPattern assigns a category by the first matching substring.
type CategoryPattern struct {
	Name     string
	Patterns []string
}
