package jobs

import (
	"html"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	tagRe = regexp.MustCompile(`<[^>]+>`)
	wsRe  = regexp.MustCompile(`\s+`)
	// Everything outside letters, digits, whitespace and common punctuation
	// (emoji, control noise, markdown leftovers).
	noiseRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?()\-]`)
)

// CleanText flattens an exported job field to plain text: HTML converted to
// markdown, entities decoded, leftover tags stripped, whitespace collapsed
// and emoji/control noise removed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	if strings.Contains(text, "<") {
		if md, err := htmltomarkdown.ConvertString(text); err == nil && md != "" {
			text = md
		}
	}

	text = html.UnescapeString(text)
	text = tagRe.ReplaceAllString(text, "")
	text = wsRe.ReplaceAllString(text, " ")
	text = noiseRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
