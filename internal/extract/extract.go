// Package extract parses a developer-roadmap checkout into the raw role
// tree consumed by the rest of the pipeline.
package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

// Defaults when the caller does not pin provenance.
const (
	DefaultRepo   = "kamranahmedse/developer-roadmap"
	DefaultCommit = "unknown"
)

// Location of the roadmaps tree inside the upstream repository, used to form
// repo-relative paths for link resolution.
const repoRoadmapsPrefix = "src/data/roadmaps"

// Extractor scans a roadmaps directory and builds the raw document.
type Extractor struct {
	RoadmapsDir string
	Repo        string
	Commit      string
	Warns       *roadmap.Warnings
}

type contentEntry struct {
	role    string
	section string
	fileRel string
	skill   roadmap.RawSkill
}

// Run walks the roadmaps directory, parses every markdown file and groups
// the results by role. Bad files are recorded as warnings and skipped; only
// an unreadable directory or an empty result set is fatal.
func (e *Extractor) Run() (*roadmap.RawDoc, error) {
	if e.Repo == "" {
		e.Repo = DefaultRepo
	}
	if e.Commit == "" {
		e.Commit = DefaultCommit
	}
	if e.Warns == nil {
		e.Warns = &roadmap.Warnings{}
	}

	files, err := e.findMarkdownFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files under %s", e.RoadmapsDir)
	}

	var (
		roleOrder []string
		roles     = map[string]*roleAccumulator{}
		content   []contentEntry
	)

	role := func(name string) *roleAccumulator {
		acc, ok := roles[name]
		if !ok {
			acc = newRoleAccumulator(name)
			roles[name] = acc
			roleOrder = append(roleOrder, name)
		}
		return acc
	}

	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(e.RoadmapsDir, filepath.FromSlash(rel)))
		if err != nil {
			e.Warns.Addf("read %s: %v", rel, err)
			continue
		}
		fileRel := path.Join(repoRoadmapsPrefix, rel)

		if roleName, section, ok := contentPlacement(rel); ok {
			skill, err := parseContentFile(string(data), fileRel, e.Repo, e.Commit)
			if err != nil {
				e.Warns.Addf("parse %s: %v", rel, err)
				continue
			}
			if skill != nil {
				content = append(content, contentEntry{role: roleName, section: section, fileRel: fileRel, skill: *skill})
			}
			continue
		}

		parsed, err := parseRoadmapFile(string(data), fileRel, e.Repo, e.Commit)
		if err != nil {
			e.Warns.Addf("parse %s: %v", rel, err)
			continue
		}
		if parsed == nil {
			continue
		}
		acc := role(parsed.RoleName)
		acc.sourceFiles = append(acc.sourceFiles, parsed.SourceFiles...)
		for _, section := range parsed.Sections {
			acc.section(section.SectionName).Skills = append(acc.section(section.SectionName).Skills, section.Skills...)
		}
	}

	for _, entry := range content {
		acc := role(entry.role)
		acc.sourceFiles = append(acc.sourceFiles, entry.fileRel)
		acc.section(entry.section).Skills = append(acc.section(entry.section).Skills, entry.skill)
	}

	doc := &roadmap.RawDoc{
		Meta: roadmap.Meta{
			Repo:        e.Repo,
			RepoCommit:  e.Commit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, name := range roleOrder {
		doc.Roles = append(doc.Roles, roles[name].finish())
	}
	if len(doc.Roles) == 0 {
		return nil, fmt.Errorf("no roles extracted from %s", e.RoadmapsDir)
	}
	return doc, nil
}

// findMarkdownFiles returns slash-separated paths relative to RoadmapsDir.
// Files under a content directory participate only when the content folder
// is their parent or grandparent.
func (e *Extractor) findMarkdownFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(e.RoadmapsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(e.RoadmapsDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		parts := strings.Split(rel, "/")
		inContent := false
		for _, part := range parts[:len(parts)-1] {
			if part == "content" {
				inContent = true
				break
			}
		}
		if !inContent {
			files = append(files, rel)
			return nil
		}
		if _, _, ok := contentPlacement(rel); ok {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", e.RoadmapsDir, err)
	}
	return files, nil
}

// contentPlacement maps a content-file path to its role and section. A file
// directly inside role/content/ lands in section "main"; one level deeper
// the subfolder names the section.
func contentPlacement(rel string) (roleName, section string, ok bool) {
	parts := strings.Split(rel, "/")
	if len(parts) < 3 {
		return "", "", false
	}
	switch {
	case parts[len(parts)-2] == "content":
		roleDir := parts[len(parts)-3]
		return engine.TitleWords(roleDir), "main", true
	case len(parts) >= 4 && parts[len(parts)-3] == "content":
		roleDir := parts[len(parts)-4]
		return engine.TitleWords(roleDir), engine.TitleWords(parts[len(parts)-2]), true
	}
	return "", "", false
}

type roleAccumulator struct {
	name         string
	sourceFiles  []string
	sectionOrder []string
	sections     map[string]*roadmap.RawSection
}

func newRoleAccumulator(name string) *roleAccumulator {
	return &roleAccumulator{name: name, sections: map[string]*roadmap.RawSection{}}
}

func (r *roleAccumulator) section(name string) *roadmap.RawSection {
	s, ok := r.sections[name]
	if !ok {
		s = &roadmap.RawSection{SectionName: name}
		r.sections[name] = s
		r.sectionOrder = append(r.sectionOrder, name)
	}
	return s
}

func (r *roleAccumulator) finish() roadmap.RawRole {
	seen := map[string]bool{}
	var sources []string
	for _, f := range r.sourceFiles {
		if !seen[f] {
			seen[f] = true
			sources = append(sources, f)
		}
	}
	sort.Strings(sources)

	role := roadmap.RawRole{RoleName: r.name, SourceFiles: sources}
	for _, name := range r.sectionOrder {
		role.Sections = append(role.Sections, *r.sections[name])
	}
	return role
}
