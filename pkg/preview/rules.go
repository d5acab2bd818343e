package preview

import "regexp"

// Rule replaces every match of Pattern with the literal Replacement.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func (r Rule) apply(s string) string {
	return r.Pattern.ReplaceAllLiteralString(s, r.Replacement)
}

// DefaultRules returns the ordered pattern table applied after literal
// substitution. The final rule removes any output tag still present, so it
// must stay last for the specific rules above it to take effect.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: regexp.MustCompile(`\{\{\s*original_item\.image\s*\|\s*image_url:[^}]+\}\}`), Replacement: sampleImageURL},
		{Pattern: regexp.MustCompile(`\{\{\s*[^}]*\|\s*money\s*\}\}`), Replacement: "$0.00"},
		{Pattern: regexp.MustCompile(`\{\{-?\s*original_item\.[^}]+\}\}`), Replacement: ""},
		{Pattern: regexp.MustCompile(`\{\{-?\s*adjusted_[^}]+\}\}`), Replacement: ""},
		{Pattern: regexp.MustCompile(`\{\{-?\s*current_item\.[^}]+\}\}`), Replacement: ""},
		{Pattern: regexp.MustCompile(`\{\{\s*line_title\s*\}\}`), Replacement: sampleLineTitle},
		{Pattern: catchAllOutputRegex, Replacement: ""},
	}
}

var catchAllOutputRegex = regexp.MustCompile(`\{\{[\s\S]*?\}\}`)
