package jobs

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  plain   text  ", "plain text"},
		{"Great 🚀 job!", "Great  job!"},
		{"line\none\ttwo", "line one two"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTextHTML(t *testing.T) {
	got := CleanText("<div><p>Build REST APIs in Go.</p></div>")
	if !strings.Contains(got, "Build REST APIs in Go.") {
		t.Errorf("CleanText lost content: %q", got)
	}
	if strings.ContainsAny(got, "<>") {
		t.Errorf("CleanText left markup: %q", got)
	}
}

func skillIDs(skills []Skill) map[string]Skill {
	m := map[string]Skill{}
	for _, s := range skills {
		m[s.SkillID] = s
	}
	return m
}

func TestExtractSkills(t *testing.T) {
	desc := "We are looking for an engineer with Python, PyTorch and AWS experience. " +
		"Knowledge of Docker, Kubernetes, CI/CD pipelines and REST APIs required. " +
		"Background in machine learning is a plus."

	skills := ExtractSkills(desc)
	ids := skillIDs(skills)

	for _, want := range []string{"python", "pytorch", "aws", "docker", "kubernetes", "rest", "cicd", "api-development", "ai-engineer"} {
		if _, ok := ids[want]; !ok {
			t.Errorf("skill %q not extracted (got %v)", want, keys(ids))
		}
	}

	py := ids["python"]
	if py.Name != "Python" {
		t.Errorf("python name = %q", py.Name)
	}
	if len(py.Resources) != 2 || py.Resources[0] != "https://roadmap.sh/python" || py.Resources[1] != "https://roadmap.sh/python/guide" {
		t.Errorf("python resources = %v", py.Resources)
	}

	ai := ids["ai-engineer"]
	if ai.Name != "Ai Engineer" {
		t.Errorf("concept skill name = %q", ai.Name)
	}
	if len(ai.Resources) != 1 || ai.Resources[0] != "https://roadmap.sh" {
		t.Errorf("concept skill resources = %v", ai.Resources)
	}
}

func keys(m map[string]Skill) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestExtractSkillsLongestKeyFirst(t *testing.T) {
	skills := ExtractSkills("Experience with React Native and React required.")
	if len(skills) < 2 {
		t.Fatalf("skills = %+v", skills)
	}
	if skills[0].SkillID != "react-native" {
		t.Errorf("first skill = %q, want react-native", skills[0].SkillID)
	}
	if _, ok := skillIDs(skills)["react"]; !ok {
		t.Error("react not extracted alongside react native")
	}
}

func TestExtractSkillsNameResourceLookup(t *testing.T) {
	// The display name "Vue.js" is not a dictionary key, so the skill only
	// gets the generic resource.
	skills := ExtractSkills("We use Vue on the frontend.")
	ids := skillIDs(skills)
	vue, ok := ids["vue"]
	if !ok {
		t.Fatalf("vue not extracted: %v", keys(ids))
	}
	if vue.Name != "Vue.js" {
		t.Errorf("vue name = %q", vue.Name)
	}
	if len(vue.Resources) != 1 || vue.Resources[0] != "https://roadmap.sh" {
		t.Errorf("vue resources = %v", vue.Resources)
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	if got := ExtractSkills(""); got != nil {
		t.Errorf("ExtractSkills(\"\") = %v", got)
	}
}

func TestBuildPosting(t *testing.T) {
	rich := "Looking for a developer with Python, Docker and Kubernetes experience."

	t.Run("accepted", func(t *testing.T) {
		p, ok := buildPosting("Backend Engineer", "Acme", rich, "")
		if !ok {
			t.Fatal("posting rejected")
		}
		if p.JobTitle != "Backend Engineer" || p.CompanyName != "Acme" {
			t.Errorf("posting = %+v", p)
		}
		if len(p.Skills) < 3 {
			t.Errorf("skills = %+v", p.Skills)
		}
	})

	t.Run("too few skills", func(t *testing.T) {
		if _, ok := buildPosting("Backend Engineer", "Acme", "Great team, free coffee.", ""); ok {
			t.Error("posting with no detectable skills accepted")
		}
	})

	t.Run("no title", func(t *testing.T) {
		if _, ok := buildPosting("", "Acme", rich, ""); ok {
			t.Error("untitled posting accepted")
		}
	})

	t.Run("description truncated", func(t *testing.T) {
		long := rich + " " + strings.Repeat("More details about the role. ", 30)
		p, ok := buildPosting("Backend Engineer", "Acme", long, "")
		if !ok {
			t.Fatal("posting rejected")
		}
		if utf8.RuneCountInString(p.JobDescription) != descriptionLimit+3 || !strings.HasSuffix(p.JobDescription, "...") {
			t.Errorf("description = %d runes", utf8.RuneCountInString(p.JobDescription))
		}
	})

	t.Run("truncation keeps multibyte runes intact", func(t *testing.T) {
		long := rich + " " + strings.Repeat("日本語の開発環境で働くチャンスです", 30)
		p, ok := buildPosting("Backend Engineer", "Acme", long, "")
		if !ok {
			t.Fatal("posting rejected")
		}
		if !utf8.ValidString(p.JobDescription) {
			t.Errorf("description is not valid UTF-8: %q", p.JobDescription)
		}
		if strings.ContainsRune(p.JobDescription, utf8.RuneError) {
			t.Errorf("description contains replacement rune: %q", p.JobDescription)
		}
		if utf8.RuneCountInString(p.JobDescription) != descriptionLimit+3 || !strings.HasSuffix(p.JobDescription, "...") {
			t.Errorf("description = %d runes", utf8.RuneCountInString(p.JobDescription))
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		p, ok := buildPosting("Backend Engineer", "", rich, "")
		if !ok {
			t.Fatal("posting rejected")
		}
		if p.CompanyName != "Unknown Company" {
			t.Errorf("company = %q", p.CompanyName)
		}
	})
}

func TestPadPostings(t *testing.T) {
	base := []Posting{{JobTitle: "A"}, {JobTitle: "B"}, {JobTitle: "C"}}

	padded := padPostings(base)
	if len(padded) != minPostings {
		t.Fatalf("len = %d", len(padded))
	}
	if padded[3].JobTitle != "A" || padded[4].JobTitle != "B" || padded[5].JobTitle != "C" {
		t.Errorf("cycle broken: %v", padded)
	}

	if got := padPostings(nil); len(got) != 0 {
		t.Errorf("empty input padded: %v", got)
	}
}

func TestSamplePostings(t *testing.T) {
	postings := SamplePostings()
	if len(postings) != 5 {
		t.Fatalf("samples = %d", len(postings))
	}
	for _, p := range postings {
		if len(p.Skills) < minSkills {
			t.Errorf("sample %q has %d skills", p.JobTitle, len(p.Skills))
		}
	}
}

func TestFromCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job_postings.csv")
	csvData := "title,name,description,skills_desc\n" +
		"Backend Engineer,Acme,\"Python, Docker and Kubernetes experience required.\",\n" +
		"Barista,Coffee Co,Make great coffee.,\n"
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	postings, err := FromCSV(path, 0)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("postings = %+v", postings)
	}
	if postings[0].JobTitle != "Backend Engineer" || postings[0].CompanyName != "Acme" {
		t.Errorf("posting = %+v", postings[0])
	}
}

func TestFromDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkedin_jobs.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE companies (company_id INTEGER, name TEXT)`,
		`CREATE TABLE jobs (job_id INTEGER, company_id INTEGER, title TEXT, description TEXT, skills_desc TEXT, scraped INTEGER, listed_time INTEGER)`,
		`INSERT INTO companies VALUES (1, 'Acme')`,
		`INSERT INTO jobs VALUES (10, 1, 'Backend Engineer', 'Python, Docker and Kubernetes experience required.', '', 1, 200)`,
		`INSERT INTO jobs VALUES (11, 1, 'Old Role', 'React, TypeScript and GraphQL background needed.', '', 1, 100)`,
		`INSERT INTO jobs VALUES (12, 1, 'Not Scraped', 'Python, Docker and Kubernetes experience required.', '', 0, 300)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}

	postings, err := FromDB(path, 0)
	if err != nil {
		t.Fatalf("FromDB: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("postings = %+v", postings)
	}
	// Newest first, unscraped rows excluded.
	if postings[0].JobTitle != "Backend Engineer" || postings[1].JobTitle != "Old Role" {
		t.Errorf("order = %q, %q", postings[0].JobTitle, postings[1].JobTitle)
	}
	if postings[0].CompanyName != "Acme" {
		t.Errorf("company = %q", postings[0].CompanyName)
	}

	limited, err := FromDB(path, 1)
	if err != nil {
		t.Fatalf("FromDB limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited = %+v", limited)
	}
}

func TestProcessFallsBackToSamples(t *testing.T) {
	doc, err := Process(Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(doc.Jobs) != minPostings {
		t.Errorf("jobs = %d, want padded to %d", len(doc.Jobs), minPostings)
	}
}
