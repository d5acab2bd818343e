// Command mailtpl builds storefront email templates from partials, converts
// vendor-exported emails into that structure and sends previews to a
// sandbox inbox.
//
// Usage:
//
//	mailtpl build
//	mailtpl convert orders|subscriptions
//	mailtpl preview [-to address] <template.html>
//	mailtpl version
//
// Settings are read from the environment and from an optional .env file in
// the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/mailtpl/pkg/config"
	"github.com/dmitrymomot/mailtpl/pkg/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	if args[0] == "version" {
		fmt.Fprintf(stdout, "mailtpl version %s\n", version)
		return exitOK
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	log := logger.New(append(logger.FromConfig(cfg.Log, "mailtpl"), logger.WithRunID())...)
	logger.SetAsDefault(log)

	a := newApp(cfg, log, stdout, stderr)
	return a.dispatch(logger.WithRunIDContext(ctx), args)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailtpl <command> [arguments]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  build                              Resolve partials into the output directory")
	fmt.Fprintln(w, "  convert orders|subscriptions       Convert vendor-exported emails into templates")
	fmt.Fprintln(w, "  preview [-to address] <file>       Send a rendered preview to the sandbox inbox")
	fmt.Fprintln(w, "  version                            Show version information")
}
