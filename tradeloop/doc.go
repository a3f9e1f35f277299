// Package tradeloop wires the full pipeline together: builder.Build turns
// a tokenized want-list set into a frozen graph, graph.RemoveImpossibleEdges
// prunes it to its strongly connected components, and scheduler.Run
// searches it for the best-scoring set of trade cycles.
package tradeloop
