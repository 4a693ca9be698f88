package extract

import (
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/roadmap"
)

var listMarkerRe = regexp.MustCompile(`^\s*[-*+]\s+`)

// parseRoadmapFile extracts a role with its sections and skills from one
// roadmap markdown file. Returns nil when the file yields no skills.
func parseRoadmapFile(content, fileRel, repo, commit string) (*roadmap.RawRole, error) {
	content = stripFrontmatter(content)
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	doc, err := docFromMarkdown(content)
	if err != nil {
		return nil, err
	}

	roleName := strings.TrimSpace(doc.Find("h1").First().Text())
	if roleName == "" {
		roleName = roleNameFromPath(fileRel)
	}

	var (
		sections []roadmap.RawSection
		current  *roadmap.RawSection
	)
	flush := func() {
		if current != nil && len(current.Skills) > 0 {
			sections = append(sections, *current)
		}
	}

	doc.Find("h2, h3, ul, ol, table").Each(func(_ int, s *goquery.Selection) {
		// Nested lists are reached through their parent list item.
		if s.ParentsFiltered("li").Length() > 0 {
			return
		}

		switch goquery.NodeName(s) {
		case "h2", "h3":
			flush()
			current = &roadmap.RawSection{SectionName: strings.TrimSpace(s.Text())}
		case "ul", "ol":
			if current == nil {
				current = &roadmap.RawSection{SectionName: "main"}
			}
			s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				current.Skills = append(current.Skills, parseListItem(li, fileRel, repo, commit, "")...)
			})
		case "table":
			if current == nil {
				current = &roadmap.RawSection{SectionName: "main"}
			}
			current.Skills = append(current.Skills, parseTable(s, fileRel, repo, commit)...)
		}
	})
	flush()

	if len(sections) == 0 {
		return nil, nil
	}

	return &roadmap.RawRole{
		RoleName:    roleName,
		SourceFiles: []string{fileRel},
		Sections:    sections,
	}, nil
}

// parseContentFile treats the whole file as a single skill: name from the
// h1 (or the filename), links from every anchor plus bare URLs in the
// source text.
func parseContentFile(content, fileRel, repo, commit string) (*roadmap.RawSkill, error) {
	doc, err := docFromMarkdown(content)
	if err != nil {
		return nil, err
	}

	skillText := strings.TrimSpace(doc.Find("h1").First().Text())
	if skillText == "" {
		stem := strings.TrimSuffix(path.Base(fileRel), path.Ext(fileRel))
		stem, _, _ = strings.Cut(stem, "@")
		skillText = engine.TitleWords(stem)
	}
	skillText = NormalizeSkillText(skillText)
	if skillText == "" {
		return nil, nil
	}

	var links []roadmap.Link
	seen := map[string]bool{}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		text := strings.TrimSpace(a.Text())
		if text == "" {
			text = href
		}
		if nt := NormalizeSkillText(text); nt != "" {
			text = nt
		}
		normalized := NormalizeURL(href, fileRel, repo, commit)
		if !seen[normalized] {
			seen[normalized] = true
			links = append(links, roadmap.Link{Text: text, Href: normalized})
		}
	})

	for _, m := range plainURLRe.FindAllString(content, -1) {
		url := trimURLPunct(m)
		if !seen[url] {
			seen[url] = true
			links = append(links, roadmap.Link{Text: url, Href: url})
		}
	}

	return &roadmap.RawSkill{SkillText: skillText, Links: links}, nil
}

// parseListItem turns one list item into skill entries: the item itself
// first, then its nested items tagged with the parent's text.
func parseListItem(li *goquery.Selection, fileRel, repo, commit, parent string) []roadmap.RawSkill {
	text := listMarkerRe.ReplaceAllString(ownText(li), "")

	var links []roadmap.Link
	seen := map[string]bool{}

	li.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		linkText := strings.TrimSpace(a.Text())
		if linkText == "" {
			linkText = href
		}
		if nt := NormalizeSkillText(linkText); nt != "" {
			linkText = nt
		}
		normalized := NormalizeURL(href, fileRel, repo, commit)
		if !seen[normalized] {
			seen[normalized] = true
			links = append(links, roadmap.Link{Text: linkText, Href: normalized})
		}
	})

	var skillText string
	if strings.TrimSpace(text) == "" && len(links) > 0 {
		skillText = links[0].Text
	} else {
		skillText = NormalizeSkillText(text)
	}
	if skillText == "" {
		return nil
	}

	if raw, err := goquery.OuterHtml(li); err == nil {
		for _, m := range plainURLRe.FindAllString(raw, -1) {
			url := trimURLPunct(m)
			if !seen[url] {
				seen[url] = true
				links = append(links, roadmap.Link{Text: url, Href: url})
			}
		}
	}

	skills := []roadmap.RawSkill{{SkillText: skillText, ParentSkill: parent, Links: links}}

	li.ChildrenFiltered("ul, ol").Each(func(_ int, nested *goquery.Selection) {
		nested.ChildrenFiltered("li").Each(func(_ int, child *goquery.Selection) {
			skills = append(skills, parseListItem(child, fileRel, repo, commit, skillText)...)
		})
	})

	return skills
}

// parseTable extracts one skill per linked cell, deduplicating hrefs across
// the table.
func parseTable(table *goquery.Selection, fileRel, repo, commit string) []roadmap.RawSkill {
	var skills []roadmap.RawSkill
	seen := map[string]bool{}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cell.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href := strings.TrimSpace(a.AttrOr("href", ""))
				if href == "" {
					return
				}
				linkText := strings.TrimSpace(a.Text())
				if linkText == "" {
					linkText = href
				}
				normalized := NormalizeURL(href, fileRel, repo, commit)
				if seen[normalized] {
					return
				}
				seen[normalized] = true

				skillText := NormalizeSkillText(strings.TrimSpace(cell.Text()))
				if skillText == "" {
					skillText = NormalizeSkillText(linkText)
				}
				if skillText == "" {
					return
				}
				skills = append(skills, roadmap.RawSkill{
					SkillText: skillText,
					Links:     []roadmap.Link{{Text: linkText, Href: normalized}},
				})
			})
		})
	})

	return skills
}

// ownText collects the item's text up to (but not including) its first
// nested list.
func ownText(li *goquery.Selection) string {
	if len(li.Nodes) == 0 {
		return ""
	}
	var parts []string
	for n := li.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol") {
			break
		}
		var t string
		switch n.Type {
		case html.TextNode:
			t = strings.TrimSpace(n.Data)
		case html.ElementNode:
			t = strings.TrimSpace(goquery.NewDocumentFromNode(n).Text())
		}
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// roleNameFromPath derives a role name from the file location when the
// document has no h1.
func roleNameFromPath(fileRel string) string {
	folder := path.Base(path.Dir(fileRel))
	if folder != "" && folder != "." && folder != "content" {
		return engine.TitleWords(folder)
	}
	if folder == "content" {
		if up := path.Base(path.Dir(path.Dir(fileRel))); up != "" && up != "." {
			return engine.TitleWords(up)
		}
	}
	stem := strings.TrimSuffix(path.Base(fileRel), path.Ext(fileRel))
	return engine.TitleWords(stem)
}
