package extract

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	typeMarkerRe  = regexp.MustCompile(`@\w+@`)
	badgeImageRe  = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkedBadgeRe = regexp.MustCompile(`\[!\[.*?\]\(.*?\)\]\(.*?\)`)
	trailPunctRe  = regexp.MustCompile(`[.,;:!?]+$`)
	plainURLRe    = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]()]+`)
)

// NormalizeSkillText strips @type@ markers, badge images and trailing
// punctuation, and collapses whitespace.
func NormalizeSkillText(text string) string {
	if text == "" {
		return ""
	}
	text = typeMarkerRe.ReplaceAllString(text, "")
	text = badgeImageRe.ReplaceAllString(text, "")
	text = linkedBadgeRe.ReplaceAllString(text, "")
	text = trailPunctRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeURL resolves a link against the repo-relative path of the file it
// appears in. Absolute URLs pass through; relative paths become raw GitHub
// URLs when a commit is known, or stay as cleaned repo-relative paths.
func NormalizeURL(rawURL, fileRel, repo, commit string) string {
	if rawURL == "" {
		return rawURL
	}
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}

	rawURL, _, _ = strings.Cut(rawURL, "#")

	var p string
	if strings.HasPrefix(rawURL, "/") {
		p = strings.TrimLeft(rawURL, "/")
	} else {
		p = path.Join(path.Dir(fileRel), rawURL)
	}

	if commit != "" && commit != "unknown" {
		return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s", repo, commit, p)
	}
	return p
}

// trimURLPunct drops trailing punctuation that bare-URL scanning tends to
// pick up from surrounding markdown.
func trimURLPunct(url string) string {
	return strings.TrimRight(url, ".,;:!?)")
}
