package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/mailtpl/pkg/email/templates"
	"github.com/dmitrymomot/mailtpl/pkg/logger"
	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

// Result summarizes one conversion run.
type Result struct {
	Converted []string         // output paths written
	Replaced  []string         // converted output paths that overwrote an existing template
	Skipped   []string         // source files without extractable content
	Failed    map[string]error // source files that could not be read or written
	Total     int              // source files matched by the profile
}

// Option configures a Converter.
type Option func(*Converter)

func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// Converter rewrites vendor-exported emails into partial-based templates.
type Converter struct {
	out storage.Storage
	log *slog.Logger
}

// NewConverter writes converted templates to out.
func NewConverter(out storage.Storage, opts ...Option) *Converter {
	c := &Converter{
		out: out,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert processes every file of p.SourceDir accepted by p.Match, in name
// order. A missing source directory fails the run before anything is
// written; problems with individual documents are recorded in the result
// and the run continues.
func (c *Converter) Convert(ctx context.Context, p Profile) (Result, error) {
	res := Result{Failed: make(map[string]error)}
	log := c.log.With(logger.Component("convert"), slog.String("profile", p.Name))

	info, err := os.Stat(p.SourceDir)
	if err != nil || !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrSourceDirNotFound, p.SourceDir)
	}

	entries, err := os.ReadDir(p.SourceDir)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrSourceDirNotFound, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && p.Match(e.Name()) {
			files = append(files, e.Name())
		}
	}
	res.Total = len(files)

	if len(files) == 0 {
		log.WarnContext(ctx, "no matching source files", logger.Path(p.SourceDir))
		return res, nil
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		existed := c.out.Exists(ctx, p.OutputPath(name))
		out, err := c.ConvertFile(ctx, p, name)
		switch {
		case errors.Is(err, ErrNoContentExtracted):
			log.WarnContext(ctx, "no content extracted", logger.Template(name))
			res.Skipped = append(res.Skipped, name)
		case err != nil:
			log.ErrorContext(ctx, "conversion failed", logger.Template(name), logger.Error(err))
			res.Failed[name] = err
		case existed:
			log.InfoContext(ctx, "template replaced", logger.Template(name), logger.Path(out))
			res.Converted = append(res.Converted, out)
			res.Replaced = append(res.Replaced, out)
		default:
			log.InfoContext(ctx, "template created", logger.Template(name), logger.Path(out))
			res.Converted = append(res.Converted, out)
		}
	}

	log.InfoContext(ctx, "conversion finished",
		logger.Count(len(res.Converted)),
		slog.Int("total", res.Total),
	)
	return res, nil
}

// ConvertFile converts a single source file of p and returns the storage
// path written. ErrNoContentExtracted means the document was left alone.
func (c *Converter) ConvertFile(ctx context.Context, p Profile, filename string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(p.SourceDir, filename))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}

	content, fallback := extract(string(raw))
	if fallback {
		c.log.DebugContext(ctx, "content section not found, using header/footer fallback", logger.Template(filename))
	}
	if content == "" {
		return "", fmt.Errorf("%w: %s", ErrNoContentExtracted, filename)
	}

	html, err := templates.Render(ctx, Scaffold(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	out := p.OutputPath(filename)
	if err := c.out.Write(ctx, out, []byte(html)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToWrite, err)
	}
	return out, nil
}
