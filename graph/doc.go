// Package graph owns the twin-node bipartite graph that the trade engine
// solves: every item becomes a Wants node and a Sends node, joined as
// twins, and edges run from a Wants node to the Sends node of an item its
// owner would accept in exchange.
//
// The package provides the full lifecycle a template graph goes through:
// construction (AddNode/AddEdge/Freeze), pruning to strongly connected
// components (RemoveImpossibleEdges), per-iteration randomization and
// duplication (Shuffle/Copy), and min-cost perfect matching (FindCycles).
// Matching is a worker-local operation: once a graph is copied, only the
// goroutine that owns the copy may call FindCycles on it.
package graph
