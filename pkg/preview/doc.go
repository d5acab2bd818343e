// Package preview turns Shopify Liquid email templates into static HTML that
// can be sent to a sandbox inbox.
//
// Rewriter applies a fixed, ordered pipeline instead of evaluating Liquid:
//
//  1. named captures are dropped; the known ones (Policy.Captures) have their
//     {{name}} references replaced by literal values
//  2. case blocks keep the body of their first when branch
//  3. if blocks are resolved one per pass, leftmost first, until none remain,
//     a pass changes nothing, or Policy.MaxIfPasses is reached; a condition
//     matching Policy.FalseConditions removes the block, anything else keeps
//     the first branch
//  4. unless blocks are removed
//  5. for loops render their body once
//  6. assign, continue and orphaned control tags are removed and trim
//     markers folded
//  7. exact placeholder text is replaced from Samples
//  8. the Rule table handles filter chains and deletes any leftover tag
//  9. runs of blank lines are collapsed
//
// Subject picks the mail subject from the first HTML comment of the result.
//
//	rw := preview.NewRewriter(preview.WithLogger(log))
//	html := rw.Rewrite(raw, preview.DefaultSamples(time.Now(), preview.ImageURLs{}))
//	subject := preview.Subject(html, "dist/order-shipped.html")
package preview
