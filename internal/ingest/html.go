// Package ingest reduces uploaded deal documents to clean text so the
// extraction side can pull facility-name candidates out of them.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var multiBlankRe = regexp.MustCompile(`\n{3,}`)

// ExtractText parses an HTML deal document and returns its visible text
// with scripts, styles, and markup removed.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML document: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(blockText(s))
	})
	if sb.Len() == 0 {
		// Fragment without a body tag; take the whole selection.
		sb.WriteString(blockText(doc.Selection))
	}

	return CleanText(sb.String()), nil
}

// blockText walks block-level elements so headings, paragraphs, list
// items, and table cells land on their own lines.
func blockText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, div").Each(func(_ int, el *goquery.Selection) {
		// Skip containers whose text is already covered by a child.
		if el.Children().Is("h1, h2, h3, h4, h5, h6, p, li, td, th, div") {
			return
		}
		text := strings.TrimSpace(el.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	if sb.Len() == 0 {
		return strings.TrimSpace(s.Text())
	}
	return sb.String()
}

// CleanText normalizes extracted text: one trimmed line per source
// line, no more than one consecutive blank line, no surrounding
// whitespace.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
