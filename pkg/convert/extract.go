package convert

import (
	"regexp"
	"strings"
)

var (
	contentSectionRegex = regexp.MustCompile(`(?s)<table class="row content">(.*?)</table>\s*<table class="row footer">`)
	contentCellRegex    = regexp.MustCompile(`(?s)<td>(.*?)</td>`)
	headerFallbackRegex = regexp.MustCompile(`(?s)<table class="header row">.*?</table>(.*?)<table class="row footer">`)
)

// ExtractContent returns the message body of a vendor-exported email: the
// first cell of the content section, or everything between the header and
// footer sections when the document has no content section. The result is
// trimmed; ok is false when nothing was found.
func ExtractContent(html string) (content string, ok bool) {
	content, _ = extract(html)
	return content, content != ""
}

// extract also reports whether the header/footer fallback was used.
func extract(html string) (content string, fallback bool) {
	if m := contentSectionRegex.FindStringSubmatch(html); m != nil {
		inner := m[1]
		if cell := contentCellRegex.FindStringSubmatch(inner); cell != nil {
			return strings.TrimSpace(cell[1]), false
		}
		return strings.TrimSpace(inner), false
	}

	if m := headerFallbackRegex.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", true
}
