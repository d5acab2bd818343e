package partial

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/mailtpl/pkg/logger"
)

// directiveRegex matches an include directive: {{> name }}.
var directiveRegex = regexp.MustCompile(`\{\{>\s*([a-zA-Z0-9_\-/]+)\s*\}\}`)

// MissingMarker is substituted for a directive whose partial cannot be loaded.
func MissingMarker(name string) string {
	return fmt.Sprintf("<!-- PARTIAL NOT FOUND: %s -->", name)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache shares an existing cache. Without it each Resolver owns a fresh one.
func WithCache(c *Cache) Option {
	return func(r *Resolver) {
		if c != nil {
			r.cache = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolver expands include directives into partial content.
type Resolver struct {
	loader  Loader
	cache   *Cache
	log     *slog.Logger
	missing []string
	seen    map[string]struct{}
}

func NewResolver(loader Loader, opts ...Option) *Resolver {
	r := &Resolver{
		loader: loader,
		cache:  NewCache(),
		log:    logger.Discard(),
		seen:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve replaces every include directive found in document with the text
// of the named partial and returns the flattened document.
//
// Directives are collected from the input once and substituted in a single
// pass. Text coming from a partial is not scanned again, so a partial that
// itself contains a directive is emitted with that directive intact.
// Missing partials never fail the call: the directive becomes MissingMarker
// and a warning is logged.
func (r *Resolver) Resolve(document string) string {
	matches := directiveRegex.FindAllStringSubmatchIndex(document, -1)
	if len(matches) == 0 {
		return document
	}

	var sb strings.Builder
	sb.Grow(len(document))
	last := 0
	for _, m := range matches {
		name := document[m[2]:m[3]]
		sb.WriteString(document[last:m[0]])
		sb.WriteString(r.partial(name))
		last = m[1]
	}
	sb.WriteString(document[last:])
	return sb.String()
}

// Missing lists the names that could not be resolved so far, in the order
// they were first encountered.
func (r *Resolver) Missing() []string {
	out := make([]string, len(r.missing))
	copy(out, r.missing)
	return out
}

func (r *Resolver) partial(name string) string {
	if text, ok := r.cache.Get(name); ok {
		return text
	}

	text, err := r.loader.Load(name)
	if err != nil {
		if errors.Is(err, ErrPartialNotFound) {
			r.log.Warn("partial not found", logger.Partial(name))
		} else {
			r.log.Error("failed to load partial", logger.Partial(name), logger.Error(err))
		}
		r.recordMissing(name)
		return MissingMarker(name)
	}

	r.cache.Set(name, text)
	return text
}

func (r *Resolver) recordMissing(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.missing = append(r.missing, name)
}
