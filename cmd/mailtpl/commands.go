package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/mailtpl/pkg/build"
	"github.com/dmitrymomot/mailtpl/pkg/convert"
	"github.com/dmitrymomot/mailtpl/pkg/email"
	"github.com/dmitrymomot/mailtpl/pkg/logger"
	"github.com/dmitrymomot/mailtpl/pkg/preview"
	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

func (a *app) build(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	outDir := fs.String("out", a.cfg.Build.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	local, err := storage.NewLocalStorage(*outDir)
	if err != nil {
		return a.fail("cannot prepare output directory %s: %v", *outDir, err)
	}

	var out storage.Storage = local
	if a.cfg.S3.Enabled() {
		bucket, err := a.newBucket(ctx, a.cfg.S3)
		if err != nil {
			return a.fail("cannot connect to bucket %s: %v", a.cfg.S3.Bucket, err)
		}
		if out, err = storage.NewMirror(local, bucket); err != nil {
			return a.fail("%v", err)
		}
		a.log.InfoContext(ctx, "publishing build output", slog.String("bucket", a.cfg.S3.Bucket))
	}

	fmt.Fprintln(a.stdout, "Starting build process...")
	res, err := build.NewBuilder(a.cfg.Build, out, build.WithLogger(a.log)).Build(ctx)
	if err != nil {
		return a.fail("%v", err)
	}

	if len(res.Built) == 0 && len(res.Failed) == 0 {
		fmt.Fprintf(a.stdout, "No template files found in %s\n", a.cfg.Build.TemplatesDir)
		return exitOK
	}

	for _, name := range res.Built {
		fmt.Fprintf(a.stdout, "  Built: %s\n", filepath.Join(*outDir, filepath.FromSlash(name)))
	}
	if len(res.MissingPartials) > 0 {
		fmt.Fprintf(a.stdout, "Missing partials: %s\n", strings.Join(res.MissingPartials, ", "))
	}
	fmt.Fprintf(a.stdout, "\nBuild complete! %d template(s) built.\n", len(res.Built))

	if len(res.Failed) > 0 {
		for _, name := range sortedKeys(res.Failed) {
			fmt.Fprintf(a.stderr, "  Failed: %s: %v\n", name, res.Failed[name])
		}
		return exitFailure
	}
	return exitOK
}

func (a *app) convert(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(a.stderr, "Usage: mailtpl convert %s|%s\n", convert.ProfileOrders, convert.ProfileSubscriptions)
		return exitUsage
	}

	profile, err := convert.ProfileByName(args[0], a.cfg.Convert.OriginalsDir)
	if err != nil {
		return a.fail("%v", err)
	}

	out, err := storage.NewLocalStorage(a.cfg.Build.TemplatesDir)
	if err != nil {
		return a.fail("cannot prepare templates directory %s: %v", a.cfg.Build.TemplatesDir, err)
	}

	fmt.Fprintf(a.stdout, "Converting %s emails to the template system\n", profile.Name)
	res, err := convert.NewConverter(out, convert.WithLogger(a.log)).Convert(ctx, profile)
	if err != nil {
		if errors.Is(err, convert.ErrSourceDirNotFound) {
			return a.fail("original emails directory not found: %s", profile.SourceDir)
		}
		return a.fail("%v", err)
	}

	if res.Total == 0 {
		fmt.Fprintf(a.stdout, "No %s email files found in %s\n", profile.Name, profile.SourceDir)
		return exitOK
	}

	for _, p := range res.Converted {
		verb := "Created"
		if slices.Contains(res.Replaced, p) {
			verb = "Replaced"
		}
		fmt.Fprintf(a.stdout, "  %s: %s\n", verb, filepath.Join(a.cfg.Build.TemplatesDir, filepath.FromSlash(p)))
	}
	for _, name := range res.Skipped {
		fmt.Fprintf(a.stdout, "  Warning: no content extracted from %s\n", name)
	}
	for _, name := range sortedKeys(res.Failed) {
		fmt.Fprintf(a.stderr, "  Failed: %s: %v\n", name, res.Failed[name])
	}

	fmt.Fprintf(a.stdout, "\nConversion complete! %d/%d templates converted.\n", len(res.Converted), res.Total)
	fmt.Fprintln(a.stdout, "\nNext steps:")
	for i, step := range profile.NextSteps(a.cfg.Build.OutputDir) {
		fmt.Fprintf(a.stdout, "  %d. %s\n", i+1, step)
	}

	if len(res.Failed) > 0 {
		return exitFailure
	}
	return exitOK
}

func (a *app) preview(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	sendTo := fs.String("to", a.cfg.Email.SendTo, "recipient address")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "Error: please provide a template file path")
		fmt.Fprintln(a.stderr, "\nUsage:\n  mailtpl preview [-to address] <path-to-template.html>")
		fmt.Fprintf(a.stderr, "\nExample:\n  mailtpl preview %s\n", filepath.Join(a.cfg.Build.OutputDir, "order-confirmation.html"))
		return exitUsage
	}
	file := fs.Arg(0)

	if _, err := os.Stat(file); err != nil {
		return a.fail("template file not found: %s", file)
	}

	sender, err := a.newSender(a.cfg.Email)
	if err != nil {
		if errors.Is(err, email.ErrMissingCredentials) {
			fmt.Fprintln(a.stderr, "Error: sandbox credentials not found")
			fmt.Fprintln(a.stderr, "\nSet them in the environment or in a .env file:")
			fmt.Fprintln(a.stderr, "  MAILTRAP_HOST=sandbox.smtp.mailtrap.io")
			fmt.Fprintln(a.stderr, "  MAILTRAP_PORT=2525")
			fmt.Fprintln(a.stderr, "  MAILTRAP_USER=your_username")
			fmt.Fprintln(a.stderr, "  MAILTRAP_PASS=your_password")
			return exitFailure
		}
		return a.fail("%v", err)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return a.fail("cannot read template: %v", err)
	}
	fmt.Fprintf(a.stdout, "Reading template: %s\n", file)

	samples, err := a.samples()
	if err != nil {
		return a.fail("%v", err)
	}

	rewriter := preview.NewRewriter(
		preview.WithLogger(a.log.With(logger.RunID(logger.RunIDFromContext(ctx)), logger.Template(file))),
	)
	html := rewriter.Rewrite(string(raw), samples)
	subject := preview.Subject(html, file)
	fmt.Fprintf(a.stdout, "Subject: %s\n", subject)

	base := filepath.Base(file)
	err = sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   *sendTo,
		Subject:  subject,
		BodyHTML: html,
		Tag:      strings.TrimSuffix(base, filepath.Ext(base)),
	})
	if err != nil {
		a.log.ErrorContext(ctx, "preview send failed", logger.Template(file), logger.Error(err))
		return a.fail("sending email: %v", err)
	}

	a.log.InfoContext(ctx, "preview sent", logger.Template(file), logger.Recipient(*sendTo))
	fmt.Fprintln(a.stdout, "Email sent successfully!")
	if strings.EqualFold(a.cfg.Email.Transport, email.TransportDev) {
		fmt.Fprintf(a.stdout, "Preview saved to %s\n", a.cfg.Email.DevDir)
	}
	return exitOK
}

// samples builds the sample table: defaults with the logo override, then
// the optional extra file on top.
func (a *app) samples() (preview.Samples, error) {
	images, err := preview.LoadImageURLs(a.cfg.Preview.ImageURLsFile)
	if err != nil {
		return nil, err
	}
	samples := preview.DefaultSamples(a.now(), images)

	if a.cfg.Preview.SamplesFile == "" {
		return samples, nil
	}
	extra, err := preview.LoadSamples(a.cfg.Preview.SamplesFile)
	if err != nil {
		return nil, err
	}
	return samples.Merge(extra), nil
}

func sortedKeys(m map[string]error) []string {
	return slices.Sorted(maps.Keys(m))
}
