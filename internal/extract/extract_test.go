package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avoronov/go_skillmap/internal/roadmap"
)

func TestNormalizeSkillText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Learn React", "Learn React"},
		{"@official@ React Docs", "React Docs"},
		{"Vue ![build](https://img.shields.io/badge.svg)", "Vue"},
		{"CSS Basics.", "CSS Basics"},
		{"  lots   of    spaces  ", "lots of spaces"},
		{"Trailing mess!?;", "Trailing mess"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeSkillText(tt.in); got != tt.want {
				t.Errorf("NormalizeSkillText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	const (
		repo   = "kamranahmedse/developer-roadmap"
		commit = "abc123"
		file   = "src/data/roadmaps/frontend/frontend.md"
	)
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"absolute https", "https://react.dev", "https://react.dev"},
		{"absolute http", "http://example.com/a", "http://example.com/a"},
		{"relative sibling", "content/react.md",
			"https://raw.githubusercontent.com/kamranahmedse/developer-roadmap/abc123/src/data/roadmaps/frontend/content/react.md"},
		{"parent traversal", "../backend/backend.md",
			"https://raw.githubusercontent.com/kamranahmedse/developer-roadmap/abc123/src/data/roadmaps/backend/backend.md"},
		{"root relative", "/readme.md",
			"https://raw.githubusercontent.com/kamranahmedse/developer-roadmap/abc123/readme.md"},
		{"fragment stripped", "content/react.md#hooks",
			"https://raw.githubusercontent.com/kamranahmedse/developer-roadmap/abc123/src/data/roadmaps/frontend/content/react.md"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.url, file, repo, commit); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestNormalizeURLUnknownCommit(t *testing.T) {
	got := NormalizeURL("content/react.md", "src/data/roadmaps/frontend/frontend.md", DefaultRepo, DefaultCommit)
	want := "src/data/roadmaps/frontend/content/react.md"
	if got != want {
		t.Errorf("NormalizeURL with unknown commit = %q, want %q", got, want)
	}
}

func TestStripFrontmatter(t *testing.T) {
	in := "---\ntitle: Frontend\norder: 1\n---\n\n# Frontend\n"
	got := stripFrontmatter(in)
	if !strings.HasPrefix(got, "# Frontend") {
		t.Errorf("stripFrontmatter = %q, want body starting with heading", got)
	}
	if got := stripFrontmatter("# No frontmatter\n"); got != "# No frontmatter\n" {
		t.Errorf("stripFrontmatter without block = %q", got)
	}
}

func TestParseRoadmapFile(t *testing.T) {
	content := `---
title: x
---

# Frontend Developer

## Fundamentals

- HTML
- [CSS](https://developer.mozilla.org/css)
- JavaScript
  - [Closures](content/closures.md)
  - Prototypes

## Frameworks

- React https://react.dev
`
	role, err := parseRoadmapFile(content, "src/data/roadmaps/frontend/frontend.md", "owner/repo", "sha1")
	if err != nil {
		t.Fatalf("parseRoadmapFile: %v", err)
	}
	if role == nil {
		t.Fatal("parseRoadmapFile returned nil role")
	}
	if role.RoleName != "Frontend Developer" {
		t.Errorf("RoleName = %q, want Frontend Developer", role.RoleName)
	}
	if len(role.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(role.Sections))
	}

	fund := role.Sections[0]
	if fund.SectionName != "Fundamentals" {
		t.Errorf("section 0 = %q", fund.SectionName)
	}
	// HTML, CSS, JavaScript plus two nested entries.
	if len(fund.Skills) != 5 {
		t.Fatalf("fundamentals skills = %d, want 5: %+v", len(fund.Skills), fund.Skills)
	}
	if fund.Skills[1].SkillText != "CSS" || len(fund.Skills[1].Links) != 1 {
		t.Errorf("CSS skill = %+v", fund.Skills[1])
	}
	if got := fund.Skills[3].ParentSkill; got != "JavaScript" {
		t.Errorf("nested skill parent = %q, want JavaScript", got)
	}
	wantHref := "https://raw.githubusercontent.com/owner/repo/sha1/src/data/roadmaps/frontend/content/closures.md"
	if fund.Skills[3].Links[0].Href != wantHref {
		t.Errorf("nested link = %q, want %q", fund.Skills[3].Links[0].Href, wantHref)
	}

	frameworks := role.Sections[1]
	if len(frameworks.Skills) != 1 {
		t.Fatalf("frameworks skills = %d, want 1", len(frameworks.Skills))
	}
	react := frameworks.Skills[0]
	if len(react.Links) != 1 || react.Links[0].Href != "https://react.dev" {
		t.Errorf("bare URL not collected: %+v", react.Links)
	}
}

func TestParseRoadmapFileNoHeadings(t *testing.T) {
	content := "- Git\n- Docker\n"
	role, err := parseRoadmapFile(content, "src/data/roadmaps/devops/devops.md", "o/r", "unknown")
	if err != nil {
		t.Fatalf("parseRoadmapFile: %v", err)
	}
	if role.RoleName != "Devops" {
		t.Errorf("RoleName = %q, want folder-derived Devops", role.RoleName)
	}
	if len(role.Sections) != 1 || role.Sections[0].SectionName != "main" {
		t.Fatalf("sections = %+v, want single main", role.Sections)
	}
	if len(role.Sections[0].Skills) != 2 {
		t.Errorf("skills = %d, want 2", len(role.Sections[0].Skills))
	}
}

func TestParseRoadmapFileEmpty(t *testing.T) {
	role, err := parseRoadmapFile("---\nkey: val\n---\n", "src/data/roadmaps/x/x.md", "o/r", "unknown")
	if err != nil {
		t.Fatalf("parseRoadmapFile: %v", err)
	}
	if role != nil {
		t.Errorf("expected nil role for frontmatter-only file, got %+v", role)
	}
}

func TestParseRoadmapFileTable(t *testing.T) {
	content := `# Backend

## Resources

| Topic | Link |
|-------|------|
| [REST](https://restfulapi.net) | intro |
| [REST](https://restfulapi.net) | duplicate |
`
	role, err := parseRoadmapFile(content, "src/data/roadmaps/backend/backend.md", "o/r", "unknown")
	if err != nil {
		t.Fatalf("parseRoadmapFile: %v", err)
	}
	if role == nil {
		t.Fatal("nil role")
	}
	var skills []roadmap.RawSkill
	for _, s := range role.Sections {
		skills = append(skills, s.Skills...)
	}
	if len(skills) != 1 {
		t.Fatalf("table skills = %d, want 1 (href deduplicated): %+v", len(skills), skills)
	}
	if skills[0].SkillText != "REST" {
		t.Errorf("table skill text = %q", skills[0].SkillText)
	}
}

func TestParseContentFile(t *testing.T) {
	content := `# Closures

Closures capture their lexical scope.

[MDN guide](https://developer.mozilla.org/closures)

See also https://javascript.info/closure.
`
	skill, err := parseContentFile(content, "src/data/roadmaps/frontend/content/closures.md", "o/r", "unknown")
	if err != nil {
		t.Fatalf("parseContentFile: %v", err)
	}
	if skill.SkillText != "Closures" {
		t.Errorf("SkillText = %q", skill.SkillText)
	}
	if len(skill.Links) != 2 {
		t.Fatalf("links = %+v, want 2", skill.Links)
	}
	if skill.Links[1].Href != "https://javascript.info/closure" {
		t.Errorf("bare URL = %q, trailing punctuation should be trimmed", skill.Links[1].Href)
	}
}

func TestParseContentFileNameFromFilename(t *testing.T) {
	skill, err := parseContentFile("no heading here", "src/data/roadmaps/frontend/content/css-grid@abc.md", "o/r", "unknown")
	if err != nil {
		t.Fatalf("parseContentFile: %v", err)
	}
	if skill.SkillText != "Css Grid" {
		t.Errorf("SkillText = %q, want filename-derived Css Grid", skill.SkillText)
	}
}

func TestExtractorRun(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel, content string) {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mustWrite("frontend/frontend.md", "# Frontend\n\n## Basics\n\n- HTML\n- CSS\n")
	mustWrite("frontend/content/react.md", "# React\n\n[docs](https://react.dev)\n")
	mustWrite("frontend/broken.md", "---\nonly frontmatter, no close")

	ex := &Extractor{RoadmapsDir: dir, Repo: "o/r", Commit: "sha"}
	doc, err := ex.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if doc.Meta.Repo != "o/r" || doc.Meta.RepoCommit != "sha" {
		t.Errorf("meta = %+v", doc.Meta)
	}
	if len(doc.Roles) != 1 {
		t.Fatalf("roles = %d, want 1 (content merges into Frontend): %+v", len(doc.Roles), doc.Roles)
	}

	role := doc.Roles[0]
	if role.RoleName != "Frontend" {
		t.Errorf("RoleName = %q", role.RoleName)
	}
	if len(role.SourceFiles) != 2 {
		t.Errorf("source files = %v, want dedup+sorted pair", role.SourceFiles)
	}
	for i := 1; i < len(role.SourceFiles); i++ {
		if role.SourceFiles[i-1] >= role.SourceFiles[i] {
			t.Errorf("source files not sorted: %v", role.SourceFiles)
		}
	}

	var sections []string
	var react *roadmap.RawSkill
	for i := range role.Sections {
		sections = append(sections, role.Sections[i].SectionName)
		for j := range role.Sections[i].Skills {
			if role.Sections[i].Skills[j].SkillText == "React" {
				react = &role.Sections[i].Skills[j]
			}
		}
	}
	if react == nil {
		t.Fatalf("content skill missing, sections: %v", sections)
	}
	if len(react.Links) != 1 || react.Links[0].Href != "https://react.dev" {
		t.Errorf("react links = %+v", react.Links)
	}
}

func TestWriteCSV(t *testing.T) {
	doc := &roadmap.RawDoc{
		Roles: []roadmap.RawRole{{
			RoleName: "Frontend",
			Sections: []roadmap.RawSection{{
				SectionName: "Basics",
				Skills: []roadmap.RawSkill{
					{SkillText: "HTML"},
					{SkillText: "CSS", Links: []roadmap.Link{{Text: "MDN", Href: "https://mdn.dev"}}},
				},
			}},
		}},
	}

	path := filepath.Join(t.TempDir(), "out", "roadmaps.csv")
	if err := WriteCSV(doc, path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, want header + 2 rows:\n%s", len(lines), data)
	}
	if lines[0] != "role_name,section_name,skill_text,parent_skill,link_text,link_href" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "https://mdn.dev") {
		t.Errorf("link row = %q", lines[2])
	}
}
