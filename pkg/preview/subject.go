package preview

import (
	"path/filepath"
	"regexp"
	"strings"
)

var firstCommentRegex = regexp.MustCompile(`<!--\s*(.+?)\s*-->`)

// Subject returns the text of the first single-line HTML comment in
// document, or the base name of path without its extension.
func Subject(document, path string) string {
	if m := firstCommentRegex.FindStringSubmatch(document); m != nil {
		return m[1]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
