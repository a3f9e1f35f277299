// Package builder converts a parsed set of want-lists into a frozen
// graph.Graph, applying the configured priority scheme to derive edge
// costs and recording every malformed entry as a human-readable string
// instead of aborting.
//
// The package offers:
//
//   - ParseData: the want-list structure handed in by the front-end
//     tokenizer (out of scope for this module).
//   - Options / Option: functional-options configuration for priority
//     scheme, rank steps, non-trade cost, dummy handling, and case
//     sensitivity.
//   - Build: the single entry point, returning a frozen *graph.Graph.
//
// Node creation and edge creation happen in two passes over WantLists, in
// list order, matching the reference parser's two-pass structure: every
// item must exist as a node before any want can reference it.
package builder
