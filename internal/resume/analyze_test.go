package resume

import (
	"reflect"
	"testing"
)

func TestParseSkillList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"comma separated",
			"Python, Django, PostgreSQL",
			[]string{"Python", "Django", "PostgreSQL"},
		},
		{
			"bullets and numbering",
			"- React\n• Node.js\n1. AWS\n2) Docker",
			[]string{"React", "Node.js", "AWS", "Docker"},
		},
		{
			"label prefix and fences",
			"```\nSkills: Python; Go | Rust\n```",
			[]string{"Python", "Go", "Rust"},
		},
		{
			"parenthetical noise",
			"Python (3 years), (expert) Kubernetes",
			[]string{"Python", "Kubernetes"},
		},
		{
			"case-insensitive dedup keeps first casing",
			"Python, python, PYTHON",
			[]string{"Python"},
		},
		{
			"known spellings fixed",
			"cpp, html5, nodejs",
			[]string{"C++", "HTML5", "Node.js"},
		},
		{
			"single characters dropped",
			"R, C, Go",
			[]string{"Go"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseSkillList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSkillList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnionSkills(t *testing.T) {
	got := unionSkills([]string{"Python", "React"}, []string{"python", "Docker", "react", "AWS"})
	want := []string{"Python", "React", "Docker", "AWS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unionSkills = %v, want %v", got, want)
	}
}

func TestUnionSkillsEmpty(t *testing.T) {
	if got := unionSkills(nil, nil); got != nil {
		t.Errorf("unionSkills(nil, nil) = %v, want nil", got)
	}
}

func TestClampProficiency(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{-2, 1},
		{1, 1},
		{3.5, 3.5},
		{5, 5},
		{7, 5},
	}
	for _, tt := range tests {
		if got := clampProficiency(tt.in); got != tt.want {
			t.Errorf("clampProficiency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFixKnownSpelling(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cxx", "C++"},
		{"CPP", "C++"},
		{"css3", "CSS3"},
		{"node.js", "Node.js"},
		{"react", "react"},
		{"Django", "Django"},
	}
	for _, tt := range tests {
		if got := fixKnownSpelling(tt.in); got != tt.want {
			t.Errorf("fixKnownSpelling(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
