package resume

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/avoronov/go_skillmap/internal/roadmap"
)

func writeCatalogFile(t *testing.T) string {
	t.Helper()
	doc := roadmap.StructDoc{
		Roles: []roadmap.StructRole{
			{
				Role: "Frontend",
				Skills: []roadmap.StructSkill{
					{
						Skill:    "React",
						Keywords: []string{"JSX", "hooks"},
						Topics:   []roadmap.Topic{{Topic: "Components"}},
					},
					{
						Skill:    "CSS Grid",
						Keywords: []string{"layout"},
					},
				},
			},
			{
				Role: "Backend",
				Skills: []roadmap.StructSkill{
					{
						Skill:    "Python",
						Keywords: []string{"django"},
					},
				},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "roadmaps_role_skill.json")
	if err := roadmap.WriteJSON(path, doc); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeCatalogFile(t))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if want := []string{"CSS Grid", "Python", "React"}; !reflect.DeepEqual(cat.Skills, want) {
		t.Errorf("Skills = %v, want %v", cat.Skills, want)
	}
	if want := []string{"Backend", "Frontend"}; !reflect.DeepEqual(cat.Roles, want) {
		t.Errorf("Roles = %v, want %v", cat.Roles, want)
	}
	if want := []string{"Components"}; !reflect.DeepEqual(cat.Topics, want) {
		t.Errorf("Topics = %v, want %v", cat.Topics, want)
	}
	// Keywords are lowercased before dedup.
	if want := []string{"django", "hooks", "jsx", "layout"}; !reflect.DeepEqual(cat.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", cat.Keywords, want)
	}
}

func TestLoadCatalogMissing(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("LoadCatalog on missing file should fail")
	}
}

func TestPromptSamples(t *testing.T) {
	cat, err := LoadCatalog(writeCatalogFile(t))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	got := cat.PromptSamples()
	want := []string{"CSS Grid", "Python", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PromptSamples = %v, want %v", got, want)
	}
}

func TestSampleByKeywords(t *testing.T) {
	skills := []string{"React", "Vue", "Angular", "Svelte"}
	got := sampleByKeywords(skills, []string{"react", "vue", "svelte"}, 2)
	want := []string{"React", "Vue"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sampleByKeywords = %v, want %v", got, want)
	}
}
