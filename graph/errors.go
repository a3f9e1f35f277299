// errors.go — sentinel errors for the graph package.
//
// Construction-time misuse (duplicate names, mutating a frozen graph,
// freezing twice, calling an algorithm before Freeze) are all programmer
// errors — the caller controls its own call order — so they panic rather
// than returning an error a caller might plausibly ignore. The one
// condition outside the caller's control, a context canceled mid-algorithm,
// is the only one reported through a sentinel.
package graph

import "errors"

// ErrCanceled is returned by RemoveImpossibleEdges and FindCycles when the
// supplied context was canceled before the operation completed.
var ErrCanceled = errors.New("graph: canceled")
