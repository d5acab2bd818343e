package build

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/dmitrymomot/mailtpl/pkg/logger"
	"github.com/dmitrymomot/mailtpl/pkg/partial"
	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

// Config locates the template sources and the build output.
type Config struct {
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"src/templates"`
	PartialsDir  string `env:"PARTIALS_DIR" envDefault:"src/partials"`
	OutputDir    string `env:"OUTPUT_DIR" envDefault:"dist"`
	Ext          string `env:"TEMPLATE_EXT" envDefault:".html"`
}

// Result summarizes one build run.
type Result struct {
	Built           []string         // relative paths written, in build order
	Failed          map[string]error // templates that could not be read or written
	MissingPartials []string         // partial names that resolved to a marker
}

// Option configures a Builder.
type Option func(*Builder)

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithPartialLoader replaces the file system loader rooted at
// Config.PartialsDir.
func WithPartialLoader(l partial.Loader) Option {
	return func(b *Builder) {
		if l != nil {
			b.loader = l
		}
	}
}

// Builder flattens every template under Config.TemplatesDir into out.
type Builder struct {
	cfg    Config
	out    storage.Storage
	loader partial.Loader
	log    *slog.Logger
}

// NewBuilder creates a Builder writing to out.
func NewBuilder(cfg Config, out storage.Storage, opts ...Option) *Builder {
	if cfg.Ext == "" {
		cfg.Ext = ".html"
	}
	if !strings.HasPrefix(cfg.Ext, ".") {
		cfg.Ext = "." + cfg.Ext
	}

	b := &Builder{
		cfg: cfg,
		out: out,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.loader == nil {
		b.loader = partial.NewFSLoader(os.DirFS(cfg.PartialsDir), cfg.Ext)
	}
	return b
}

// Build resolves the partial includes of every template and writes the
// result under the same relative path. All templates of a run share one
// partial cache. A missing templates directory fails before anything is
// written; a template that cannot be read or written is recorded in
// Result.Failed and the run continues.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	res := Result{Failed: make(map[string]error)}
	log := b.log.With(logger.Component("build"))
	start := time.Now()

	info, err := os.Stat(b.cfg.TemplatesDir)
	if err != nil || !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrTemplatesDirNotFound, b.cfg.TemplatesDir)
	}

	if info, err := os.Stat(b.cfg.PartialsDir); err != nil || !info.IsDir() {
		log.WarnContext(ctx, "partials directory not found", logger.Path(b.cfg.PartialsDir))
	}

	templatesFS := os.DirFS(b.cfg.TemplatesDir)
	files, err := discover(templatesFS, b.cfg.Ext)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrTemplatesDirNotFound, err)
	}

	if len(files) == 0 {
		log.WarnContext(ctx, "no template files found", logger.Path(b.cfg.TemplatesDir))
		return res, nil
	}

	// The resolver logs without a context, so the run ID is bound up front.
	resolver := partial.NewResolver(b.loader,
		partial.WithLogger(log.With(logger.RunID(logger.RunIDFromContext(ctx)))),
	)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		raw, err := fs.ReadFile(templatesFS, name)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrFailedToReadTemplate, err)
			log.ErrorContext(ctx, "template skipped", logger.Template(name), logger.Error(err))
			res.Failed[name] = err
			continue
		}

		if err := b.out.Write(ctx, name, []byte(resolver.Resolve(string(raw)))); err != nil {
			err = fmt.Errorf("%w: %w", ErrFailedToWriteTemplate, err)
			log.ErrorContext(ctx, "template skipped", logger.Template(name), logger.Error(err))
			res.Failed[name] = err
			continue
		}

		log.InfoContext(ctx, "template built", logger.Template(name))
		res.Built = append(res.Built, name)
	}

	res.MissingPartials = resolver.Missing()
	log.InfoContext(ctx, "build finished",
		logger.Count(len(res.Built)),
		slog.Int("failed", len(res.Failed)),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

// discover lists template files below the root of fsys in lexical order.
// Hidden files and directories are skipped.
func discover(fsys fs.FS, ext string) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && path.Ext(p) == ext {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
