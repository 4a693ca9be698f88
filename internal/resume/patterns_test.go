package resume

import (
	"reflect"
	"testing"
)

func TestPatternSkills(t *testing.T) {
	text := "Experienced in python and go. Built UIs with react and css3, " +
		"tested with pytest. Deployed on aws using docker and kubernetes. " +
		"Some c++11 tooling."

	got := PatternSkills(text)
	want := []string{"Python", "Go", "C++", "CSS3", "React", "Pytest", "Aws", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PatternSkills = %v, want %v", got, want)
	}
}

func TestPatternSkillsEmpty(t *testing.T) {
	if got := PatternSkills("Managed a coffee shop for five years."); len(got) != 0 {
		t.Errorf("PatternSkills on non-technical text = %v, want none", got)
	}
}

func TestPatternSkillsMultiWord(t *testing.T) {
	got := PatternSkills("CI via github actions, infra with terraform, mobile in react native.")
	has := func(name string) bool {
		for _, s := range got {
			if s == name {
				return true
			}
		}
		return false
	}
	for _, name := range []string{"Github Actions", "Terraform", "React Native"} {
		if !has(name) {
			t.Errorf("PatternSkills missing %q in %v", name, got)
		}
	}
}

func TestCanonicalSkillName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"c++", "C++"},
		{"cpp", "C++"},
		{"html5", "HTML5"},
		{"css3", "CSS3"},
		{"nodejs", "Node.js"},
		{"react", "React"},
		{"machine learning", "Machine Learning"},
		{"AWS", "AWS"},
		{"PyTorch", "PyTorch"},
	}
	for _, tt := range tests {
		if got := canonicalSkillName(tt.in); got != tt.want {
			t.Errorf("canonicalSkillName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
