// Package roadmap defines the documents exchanged between pipeline stages
// and the JSON conventions shared by all of them.
package roadmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Meta records the provenance of an extraction run.
type Meta struct {
	Repo        string `json:"repo"`
	RepoCommit  string `json:"repo_commit"`
	GeneratedAt string `json:"generated_at"`
}

// Link is a resource reference attached to a raw skill. Upstream files carry
// it either as a bare URL string or as a {text, href} object; both forms
// decode into the same struct and re-encode as the object form.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

func (l *Link) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		l.Text = s
		l.Href = s
		return nil
	}
	type plain Link
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("link: %w", err)
	}
	*l = Link(p)
	if l.Text == "" {
		l.Text = l.Href
	}
	return nil
}

// RawSkill is one list item as seen in the source markdown.
type RawSkill struct {
	SkillText   string `json:"skill_text"`
	ParentSkill string `json:"parent_skill"`
	Links       []Link `json:"links"`
}

// RawSection groups raw skills under an h2/h3 heading ("main" when the
// source file has none).
type RawSection struct {
	SectionName string     `json:"section_name"`
	Skills      []RawSkill `json:"skills"`
}

// RawRole is one roadmap role aggregated across its source files.
type RawRole struct {
	RoleName    string       `json:"role_name"`
	SourceFiles []string     `json:"source_files"`
	Sections    []RawSection `json:"sections"`
}

// RawDoc is the extractor output (roadmaps.json).
type RawDoc struct {
	Meta  Meta      `json:"meta"`
	Roles []RawRole `json:"roles"`
}

// CleanSkill is a normalized skill with a stable id, search keywords and
// validated links. Category is nil for skills from the implicit "main"
// section.
type CleanSkill struct {
	SkillID  string   `json:"skill_id"`
	Name     string   `json:"name"`
	Category *string  `json:"category"`
	Keywords []string `json:"keywords"`
	Links    []string `json:"links"`
}

// CleanRole is one role in the cleaner output.
type CleanRole struct {
	Role   string       `json:"role"`
	Skills []CleanSkill `json:"skills"`
}

// CleanDoc is the cleaner output (roadmaps_cleaned.json).
type CleanDoc struct {
	Roles []CleanRole `json:"roles"`
}

// Resource is a typed link in the role>skill>topic hierarchy.
type Resource struct {
	Link  string `json:"link"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// Topic is a raw skill promoted to a topic under a canonical skill.
type Topic struct {
	Topic     string     `json:"topic"`
	Resources []Resource `json:"resources"`
}

// StructSkill is a canonical technology with its topics.
type StructSkill struct {
	Skill    string   `json:"skill"`
	Keywords []string `json:"keywords"`
	Topics   []Topic  `json:"topics"`
}

// StructRole is one role in the structurer output.
type StructRole struct {
	Role   string        `json:"role"`
	Skills []StructSkill `json:"skills"`
}

// StructDoc is the structurer output (roadmaps_role_skill.json).
type StructDoc struct {
	Roles []StructRole `json:"roles"`
}

// CategoryGroup collects clean skills under a category label.
type CategoryGroup struct {
	Category  string       `json:"category"`
	Subskills []CleanSkill `json:"subskills"`
}

// UmbrellaDomain is a broad grouping of roles (first domain pass).
type UmbrellaDomain struct {
	Umbrella    string          `json:"umbrella"`
	Description string          `json:"description"`
	Skills      []CategoryGroup `json:"skills"`
}

// UmbrellaDoc is the first-pass domain output (roadmaps_domains.json).
type UmbrellaDoc struct {
	Domains []UmbrellaDomain `json:"domains"`
}

// CareerDomain is a roadmap-title career path (second domain pass).
type CareerDomain struct {
	Domain      string          `json:"domain"`
	Description string          `json:"description"`
	Categories  []CategoryGroup `json:"categories"`
}

// CareerDoc is the second-pass domain output (roadmaps_roadmap_based.json).
type CareerDoc struct {
	Domains []CareerDomain `json:"domains"`
}
