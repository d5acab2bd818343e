package preview

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailtpl/pkg/logger"
)

// cleanupPasses is the number of sweeps for orphaned control tags.
const cleanupPasses = 3

var (
	captureBlockRegex = regexp.MustCompile(`(?s)\{%-?\s*capture\s+\w+\s*-?%\}.*?\{%-?\s*endcapture\s*-?%\}`)

	caseBlockRegex = regexp.MustCompile(`\{%\s*case\s+[^%]+%\}([\s\S]*?)\{%\s*endcase\s*%\}`)
	firstWhenRegex = regexp.MustCompile(`\{%\s*when\s+[^%]+%\}([\s\S]*?)(?:\{%\s*when\s+|$)`)

	ifOpenRegex    = regexp.MustCompile(`\{%\s*if\s+`)
	ifBlockRegex   = regexp.MustCompile(`\{%-?\s*if\s+([^%]+)%\}([\s\S]*?)\{%-?\s*endif\s*-?%\}`)
	elseSplitRegex = regexp.MustCompile(`\{%-?\s*(?:elsif|else)`)

	unlessBlockRegex   = regexp.MustCompile(`\{%\s*unless\s+[^%]+%\}[\s\S]*?\{%\s*endunless\s*%\}`)
	lineItemsLoopRegex = regexp.MustCompile(`\{%\s*for\s+line_item\s+in\s+line_items\s*%\}([\s\S]*?)\{%\s*endfor\s*%\}`)
	forLoopRegex       = regexp.MustCompile(`\{%\s*for\s+[^%]+%\}([\s\S]*?)\{%\s*endfor\s*%\}`)

	assignRegex   = regexp.MustCompile(`\{%-?\s*assign\s+[^%]+%\}`)
	continueRegex = regexp.MustCompile(`\{%\s*continue\s*%\}`)

	orphanTagRegexes = []*regexp.Regexp{
		regexp.MustCompile(`\{%\s*if\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*elsif\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*else\s*%\}`),
		regexp.MustCompile(`\{%\s*endif\s*%\}`),
		regexp.MustCompile(`\{%\s*case\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*when\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*endcase\s*%\}`),
		regexp.MustCompile(`\{%\s*unless\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*endunless\s*%\}`),
		regexp.MustCompile(`\{%\s*for\s+[^%]+%\}`),
		regexp.MustCompile(`\{%\s*endfor\s*%\}`),
	}
	trimOpenRegex  = regexp.MustCompile(`\{%-`)
	trimCloseRegex = regexp.MustCompile(`-%\}`)

	// Any control tag left after cleanup has no classification and is dropped.
	catchAllControlRegex = regexp.MustCompile(`\{%[\s\S]*?%\}`)

	tripleBlankRegex = regexp.MustCompile(`\n\s*\n\s*\n`)
	brBlankRegex     = regexp.MustCompile(`(?i)(<br\s*/?>)\s*\n\s*\n`)
	doubleBlankRegex = regexp.MustCompile(`\n\s*\n`)
)

// Option configures a Rewriter.
type Option func(*Rewriter)

func WithPolicy(p Policy) Option {
	return func(r *Rewriter) { r.policy = p }
}

// WithRules replaces the pattern table. The caller is responsible for
// keeping a catch-all rule last.
func WithRules(rules ...Rule) Option {
	return func(r *Rewriter) { r.rules = rules }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Rewriter) {
		if l != nil {
			r.log = l
		}
	}
}

// Rewriter turns a Liquid email template into static preview HTML.
type Rewriter struct {
	policy Policy
	rules  []Rule
	log    *slog.Logger

	captureRefs []captureRef
}

type captureRef struct {
	block *regexp.Regexp
	ref   *regexp.Regexp
	value string
}

func NewRewriter(opts ...Option) *Rewriter {
	r := &Rewriter{
		policy: DefaultPolicy(),
		rules:  DefaultRules(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.policy.MaxIfPasses <= 0 {
		r.policy.MaxIfPasses = DefaultMaxIfPasses
	}

	for _, c := range r.policy.Captures {
		name := regexp.QuoteMeta(c.Name)
		r.captureRefs = append(r.captureRefs, captureRef{
			block: regexp.MustCompile(fmt.Sprintf(`(?s)\{%%-?\s*capture\s+%s\s*-?%%\}.*?\{%%-?\s*endcapture\s*-?%%\}`, name)),
			ref:   regexp.MustCompile(fmt.Sprintf(`\{\{-?\s*%s\s*-?\}\}`, name)),
			value: c.Value,
		})
	}
	return r
}

// Rewrite resolves control flow with the fixed Policy, fills placeholders
// from samples and the rule table, and normalizes blank lines. The result
// contains no Liquid tags.
func (r *Rewriter) Rewrite(document string, samples Samples) string {
	doc := foldTrimMarkers(document)
	doc = r.stripCaptures(doc)
	doc = flattenCases(doc)
	doc = r.resolveIfs(doc)
	doc = unlessBlockRegex.ReplaceAllLiteralString(doc, "")
	doc = flattenLoops(doc)
	doc = cleanupControlTags(doc)
	doc = substituteLiterals(doc, samples)
	for _, rule := range r.rules {
		doc = rule.apply(doc)
	}
	// Custom rule tables may omit the catch-all.
	doc = catchAllOutputRegex.ReplaceAllLiteralString(doc, "")
	return normalizeWhitespace(doc)
}

// foldTrimMarkers rewrites {%- and -%} to their plain forms so every
// control-flow step sees one tag syntax.
func foldTrimMarkers(doc string) string {
	doc = trimOpenRegex.ReplaceAllLiteralString(doc, "{%")
	return trimCloseRegex.ReplaceAllLiteralString(doc, "%}")
}

func (r *Rewriter) stripCaptures(doc string) string {
	for _, c := range r.captureRefs {
		doc = c.block.ReplaceAllLiteralString(doc, "")
		doc = c.ref.ReplaceAllLiteralString(doc, c.value)
	}
	return captureBlockRegex.ReplaceAllLiteralString(doc, "")
}

// flattenCases keeps only the body of the first when branch.
func flattenCases(doc string) string {
	return caseBlockRegex.ReplaceAllStringFunc(doc, func(block string) string {
		body := caseBlockRegex.FindStringSubmatch(block)[1]
		when := firstWhenRegex.FindStringSubmatch(body)
		if when == nil {
			return ""
		}
		return strings.TrimSpace(when[1])
	})
}

// resolveIfs rewrites the leftmost if block once per pass until no if tag
// remains, a pass changes nothing, or the pass bound is reached.
func (r *Rewriter) resolveIfs(doc string) string {
	pass := 0
	for ; pass < r.policy.MaxIfPasses && ifOpenRegex.MatchString(doc); pass++ {
		next := r.resolveFirstIf(doc)
		if next == doc {
			return doc
		}
		doc = next
	}

	if pass == r.policy.MaxIfPasses && ifOpenRegex.MatchString(doc) {
		r.log.Warn("if resolution stopped at pass limit; remaining tags are stripped",
			slog.Int("passes", pass))
	}
	return doc
}

func (r *Rewriter) resolveFirstIf(doc string) string {
	m := ifBlockRegex.FindStringSubmatchIndex(doc)
	if m == nil {
		return doc
	}

	condition := strings.TrimSpace(doc[m[2]:m[3]])
	body := doc[m[4]:m[5]]

	var replacement string
	switch r.policy.decide(condition) {
	case outcomeDrop:
		replacement = ""
	case outcomeSale, outcomeFirstBranch:
		replacement = strings.TrimSpace(elseSplitRegex.Split(body, 2)[0])
	}

	return doc[:m[0]] + replacement + doc[m[1]:]
}

// flattenLoops renders every loop body exactly once, simulating a single
// sample line item.
func flattenLoops(doc string) string {
	doc = lineItemsLoopRegex.ReplaceAllString(doc, "${1}")
	return forLoopRegex.ReplaceAllString(doc, "${1}")
}

func cleanupControlTags(doc string) string {
	doc = assignRegex.ReplaceAllLiteralString(doc, "")
	doc = continueRegex.ReplaceAllLiteralString(doc, "")
	for range cleanupPasses {
		for _, re := range orphanTagRegexes {
			doc = re.ReplaceAllLiteralString(doc, "")
		}
	}
	return catchAllControlRegex.ReplaceAllLiteralString(doc, "")
}

func substituteLiterals(doc string, samples Samples) string {
	for _, tag := range samples.keys() {
		doc = strings.ReplaceAll(doc, tag, samples[tag])
	}
	return doc
}

func normalizeWhitespace(doc string) string {
	doc = tripleBlankRegex.ReplaceAllLiteralString(doc, "\n\n")
	doc = brBlankRegex.ReplaceAllString(doc, "${1}\n")
	return doubleBlankRegex.ReplaceAllLiteralString(doc, "\n")
}
