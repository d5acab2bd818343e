package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailtpl/pkg/build"
	"github.com/dmitrymomot/mailtpl/pkg/email"
	"github.com/dmitrymomot/mailtpl/pkg/logger"
	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// AppConfig gathers the settings of every command.
type AppConfig struct {
	Log     logger.Config
	Build   build.Config
	Convert ConvertConfig
	Preview PreviewConfig
	Email   email.Config
	S3      storage.S3Config
}

type ConvertConfig struct {
	OriginalsDir string `env:"ORIGINALS_DIR" envDefault:"Original Email"`
}

type PreviewConfig struct {
	SamplesFile   string `env:"PREVIEW_SAMPLES_FILE"`
	ImageURLsFile string `env:"IMAGE_URLS_FILE" envDefault:"image_urls.json"`
}

// app holds the dependencies shared by the commands. Tests build it
// directly to avoid touching the process environment.
type app struct {
	cfg    AppConfig
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	newSender func(email.Config) (email.EmailSender, error)
	newBucket func(context.Context, storage.S3Config) (storage.Storage, error)
}

func newApp(cfg AppConfig, log *slog.Logger, stdout, stderr io.Writer) *app {
	return &app{
		cfg:       cfg,
		log:       log,
		stdout:    stdout,
		stderr:    stderr,
		now:       time.Now,
		newSender: email.NewSender,
		newBucket: func(ctx context.Context, cfg storage.S3Config) (storage.Storage, error) {
			return storage.NewS3Storage(ctx, cfg)
		},
	}
}

func (a *app) dispatch(ctx context.Context, args []string) int {
	switch args[0] {
	case "build":
		return a.build(ctx, args[1:])
	case "convert":
		return a.convert(ctx, args[1:])
	case "preview":
		return a.preview(ctx, args[1:])
	case "version":
		fmt.Fprintf(a.stdout, "mailtpl version %s\n", version)
		return exitOK
	default:
		fmt.Fprintf(a.stderr, "Unknown command: %s\n\n", args[0])
		usage(a.stderr)
		return exitUsage
	}
}

func (a *app) fail(format string, args ...any) int {
	fmt.Fprintf(a.stderr, "Error: "+format+"\n", args...)
	return exitFailure
}
