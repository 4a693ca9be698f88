package domains

import (
	"testing"

	"github.com/avoronov/go_skillmap/internal/roadmap"
	"github.com/avoronov/go_skillmap/internal/taxonomy"
)

func TestUmbrellaForRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Frontend", "Web Development"},
		{"Frontend Developer", "Web Development"},
		{"Flutter", "Mobile Development"},
		{"AI Engineer", "Artificial Intelligence & Machine Learning"},
		{"PostgreSQL DBA", "Data Engineering & Analytics"},
		{"Product Manager", "Management & Leadership"},
		{"Esoteric Topic", "Specialized Tools & Frameworks"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := UmbrellaForRole(tt.role); got != tt.want {
				t.Errorf("UmbrellaForRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestUmbrellaForRoleWordOverlap(t *testing.T) {
	// No substring containment either way, but shares the word "design"
	// with "API Design".
	got := UmbrellaForRole("Design Thinking")
	if got != "Web Development" {
		t.Errorf("UmbrellaForRole(Design Thinking) = %q, want word-overlap match Web Development", got)
	}
}

func TestCategoryForSkill(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		role     string
		umbrella string
		want     string
	}{
		{"keyword in skill", "css grid", "Frontend", "Web Development", "Frontend Fundamentals"},
		{"keyword in role", "state", "React", "Web Development", "Frontend Frameworks"},
		{"default category", "esoteric", "Frontend", "Web Development", "Web Technologies"},
		{"unknown umbrella", "anything", "role", "No Such Umbrella", "General"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryForSkill(tt.skill, tt.role, tt.umbrella); got != tt.want {
				t.Errorf("CategoryForSkill(%q, %q, %q) = %q, want %q", tt.skill, tt.role, tt.umbrella, got, tt.want)
			}
		})
	}
}

func TestGroupByUmbrella(t *testing.T) {
	doc := &roadmap.CleanDoc{
		Roles: []roadmap.CleanRole{
			{Role: "Frontend", Skills: []roadmap.CleanSkill{
				{SkillID: "css", Name: "css", Keywords: []string{"css"}},
				{SkillID: "mystery", Name: "mystery", Keywords: nil},
			}},
			{Role: "Flutter", Skills: []roadmap.CleanSkill{
				{SkillID: "widgets", Name: "flutter widgets", Keywords: []string{"flutter"}},
			}},
		},
	}

	out := GroupByUmbrella(doc)
	if len(out.Domains) != 2 {
		t.Fatalf("domains = %+v", out.Domains)
	}

	// Alphabetical: Mobile Development before Web Development.
	if out.Domains[0].Umbrella != "Mobile Development" || out.Domains[1].Umbrella != "Web Development" {
		t.Errorf("domain order = %q, %q", out.Domains[0].Umbrella, out.Domains[1].Umbrella)
	}

	web := out.Domains[1]
	if web.Description == "" {
		t.Error("umbrella description missing")
	}
	cats := map[string]int{}
	for _, g := range web.Skills {
		cats[g.Category] = len(g.Subskills)
	}
	if cats["Frontend Fundamentals"] != 1 {
		t.Errorf("css not under Frontend Fundamentals: %v", cats)
	}
	if cats["Web Technologies"] != 1 {
		t.Errorf("unmatched skill not under default category: %v", cats)
	}
}

func TestBestCareerPath(t *testing.T) {
	w := taxonomy.DefaultScoringWeights
	tests := []struct {
		name     string
		skill    string
		keywords []string
		want     string
	}{
		{"react", "react hooks", []string{"react", "jsx"}, "React Developer"},
		{"kubernetes", "kubernetes operators", []string{"k8s", "container"}, "Kubernetes Engineer"},
		{"empty", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestCareerPath(tt.skill, tt.keywords, nil, w)
			if got != tt.want {
				t.Errorf("BestCareerPath(%q) = %q, want %q", tt.skill, got, tt.want)
			}
		})
	}
}

func TestBestCareerPathConflictPenalty(t *testing.T) {
	w := taxonomy.DefaultScoringWeights
	// Backend-flavored skill must not land in Frontend Developer despite
	// the shared "javascript"-free name word match.
	got := BestCareerPath("server side rendering", []string{"backend", "server", "database"}, nil, w)
	if got == "Frontend Developer" {
		t.Errorf("conflict penalty not applied, got %q", got)
	}
	if got == "" {
		t.Error("expected a positive-scoring domain")
	}
}

func TestRescueCareerPath(t *testing.T) {
	if got := rescueCareerPath("pointer arithmetic", []string{"memory"}); got == "" {
		t.Error("rescue returned empty domain")
	}
	if got := rescueCareerPath("completely unrelated", nil); got != taxonomy.FallbackCareerPath {
		t.Errorf("fallback = %q, want %q", got, taxonomy.FallbackCareerPath)
	}
}

func TestMergeSimilarSkills(t *testing.T) {
	skills := []roadmap.CleanSkill{
		{SkillID: "react-hooks", Name: "react hooks", Keywords: []string{"react"}, Links: []string{"https://a.dev"}},
		{SkillID: "react-hooks-advanced", Name: "react hooks advanced patterns", Keywords: []string{"hooks"}, Links: []string{"https://a.dev", "https://b.dev"}},
		{SkillID: "docker", Name: "docker", Keywords: []string{"docker"}},
	}

	merged := mergeSimilarSkills(skills)
	if len(merged) != 2 {
		t.Fatalf("merged = %+v, want 2 entries", merged)
	}

	react := merged[0]
	if react.SkillID != "react-hooks" {
		t.Errorf("merged id = %q, want first occurrence kept", react.SkillID)
	}
	if react.Name != "react hooks advanced patterns" {
		t.Errorf("merged name = %q, want longest", react.Name)
	}
	if len(react.Keywords) != 2 {
		t.Errorf("merged keywords = %v", react.Keywords)
	}
	if len(react.Links) != 2 {
		t.Errorf("merged links = %v, want union", react.Links)
	}
}

func TestCategorize(t *testing.T) {
	skills := []roadmap.CleanSkill{
		{Name: "unit testing", Keywords: []string{"test"}},
		{Name: "query optimization", Keywords: []string{"sql"}},
		{Name: "watercolor", Keywords: nil},
	}

	cats := categorize(skills)
	if len(cats) != 3 {
		t.Fatalf("categories = %+v", cats)
	}
	// "optimization" hits Advanced Topics before the Database patterns.
	// Matched categories sorted, General appended last.
	if cats[0].Category != "Advanced Topics" || cats[1].Category != "Testing" || cats[2].Category != "General" {
		t.Errorf("category order = %q, %q, %q", cats[0].Category, cats[1].Category, cats[2].Category)
	}
}

func TestCategorizeEmptyFallback(t *testing.T) {
	cats := categorize(nil)
	if len(cats) != 1 || cats[0].Category != "Core Skills" {
		t.Errorf("categories = %+v, want single Core Skills", cats)
	}
}

func TestGroupByCareerPath(t *testing.T) {
	doc := &roadmap.UmbrellaDoc{
		Domains: []roadmap.UmbrellaDomain{{
			Umbrella: "Web Development",
			Skills: []roadmap.CategoryGroup{{
				Category: "Frontend Frameworks",
				Subskills: []roadmap.CleanSkill{
					{SkillID: "react-hooks", Name: "react hooks", Keywords: []string{"react", "jsx"}},
					{SkillID: "vue-basics", Name: "vue components", Keywords: []string{"vue", "vuejs"}},
				},
			}},
		}},
	}

	out := GroupByCareerPath(doc, taxonomy.DefaultScoringWeights)
	if len(out.Domains) != 2 {
		t.Fatalf("domains = %+v", out.Domains)
	}
	// Alphabetical output order.
	if out.Domains[0].Domain != "React Developer" || out.Domains[1].Domain != "Vue Developer" {
		t.Errorf("domain order = %q, %q", out.Domains[0].Domain, out.Domains[1].Domain)
	}
	for _, d := range out.Domains {
		if d.Description == "" {
			t.Errorf("domain %q missing description", d.Domain)
		}
		if len(d.Categories) == 0 {
			t.Errorf("domain %q has no categories", d.Domain)
		}
	}

	// Every input skill lands in exactly one category of one domain.
	seen := map[string]int{}
	total := 0
	for _, d := range out.Domains {
		for _, c := range d.Categories {
			for _, s := range c.Subskills {
				seen[s.SkillID]++
				total++
			}
		}
	}
	for _, id := range []string{"react-hooks", "vue-basics"} {
		if seen[id] != 1 {
			t.Errorf("skill %q placed %d times, want exactly once", id, seen[id])
		}
	}
	if total != 2 {
		t.Errorf("placed %d skills, want 2 (none dropped or duplicated)", total)
	}
}
