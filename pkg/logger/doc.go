// Package logger builds the structured slog loggers used by every stage of
// the template pipeline.
//
// New assembles a *slog.Logger from functional options: output format
// (text or json), minimum level, static attributes, and ContextExtractor
// callbacks evaluated on every record. WithRunID registers the extractor for
// the run identifier placed in the context by WithRunIDContext, so all
// records of a single build, conversion, or preview run can be correlated.
//
// Attribute helpers (Template, Partial, Path, Count, Error, ...) keep key
// names consistent across packages.
//
//	log := logger.New(logger.FromConfig(cfg, "mailtpl")...)
//	ctx := logger.WithRunIDContext(context.Background())
//	log.InfoContext(ctx, "built template", logger.Template("order-shipped.html"))
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so callers may pass possibly-nil errors without a check.
package logger
