package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avoronov/go_skillmap/internal/roadmap"
)

// WriteCSV flattens the raw document into one row per skill link (or one
// row with empty link columns for linkless skills).
func WriteCSV(doc *roadmap.RawDoc, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"role_name", "section_name", "skill_text", "parent_skill", "link_text", "link_href"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, role := range doc.Roles {
		for _, section := range role.Sections {
			for _, skill := range section.Skills {
				if len(skill.Links) == 0 {
					if err := w.Write([]string{role.RoleName, section.SectionName, skill.SkillText, skill.ParentSkill, "", ""}); err != nil {
						return fmt.Errorf("write csv row: %w", err)
					}
					continue
				}
				for _, link := range skill.Links {
					if err := w.Write([]string{role.RoleName, section.SectionName, skill.SkillText, skill.ParentSkill, link.Text, link.Href}); err != nil {
						return fmt.Errorf("write csv row: %w", err)
					}
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
