// Package partial expands `{{> name }}` include directives into the content
// of reusable HTML fragments.
//
// A Resolver reads partials through a Loader (FSLoader for a directory of
// `<name>.html` files) and keeps them in a Cache for the lifetime of a run.
// Each run should create its own Resolver, or share one Cache explicitly
// with WithCache; there is no package-level state.
//
// Expansion is a single pass over the directives present in the input.
// Content inserted from a partial is not expanded again, so nested includes
// are left as written. A directive naming a partial that does not exist is
// replaced by an HTML comment produced by MissingMarker and reported through
// the logger and Resolver.Missing; Resolve itself never fails.
//
//	r := partial.NewResolver(partial.NewFSLoader(os.DirFS("src/partials"), ""))
//	html := r.Resolve(`{{> head }}<p>Hello</p>{{> footer }}`)
package partial
