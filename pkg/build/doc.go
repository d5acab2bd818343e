// Package build assembles email templates by expanding their partial
// includes.
//
// Templates are discovered recursively below Config.TemplatesDir, resolved
// with a single partial.Resolver per run and written to a storage.Storage
// under the same relative path:
//
//	out, _ := storage.NewLocalStorage(cfg.OutputDir)
//	res, err := build.NewBuilder(cfg, out, build.WithLogger(log)).Build(ctx)
//	if errors.Is(err, build.ErrTemplatesDirNotFound) {
//		// nothing was built
//	}
//
// Partials that cannot be found are replaced with partial.MissingMarker and
// listed in Result.MissingPartials.
package build
