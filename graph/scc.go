package graph

import "context"

// RemoveImpossibleEdges prunes the graph to its strongly connected
// components via Kosaraju's algorithm, run over the bipartite twin
// structure: a Wants→edge→Sends step followed by the implicit
// Sends→twin→Wants step stands in for the forward edge of a conventional
// directed graph. Edges whose two endpoints end up in different components
// cannot participate in any cycle and are deleted; wanters left with
// nothing but their self-loop become orphans.
//
// It panics if the graph is not frozen. It returns ErrCanceled if ctx is
// canceled mid-pass; the graph is then left partially pruned, and a cut
// between the wanter and sender passes can leave a deleted edge still
// listed on its sender. Callers discard canceled graphs.
func (g *Graph) RemoveImpossibleEdges(ctx context.Context) error {
	if !g.frozen {
		panic("graph: RemoveImpossibleEdges on an unfrozen graph")
	}

	g.timestamp++
	g.finished = g.finished[:0]

	for _, w := range g.Wanters {
		if err := ctx.Err(); err != nil {
			return ErrCanceled
		}
		if w.Mark != g.timestamp {
			g.visitWanters(w)
		}
	}

	for i := len(g.finished) - 1; i >= 0; i-- {
		n := g.finished[i]
		if n.Mark != g.timestamp {
			g.component++
			g.visitSenders(n)
		}
	}

	var edgeDelQueue []*Edge
	for _, w := range g.Wanters {
		if err := ctx.Err(); err != nil {
			return ErrCanceled
		}
		edgeDelQueue = removeBadEdges(w, edgeDelQueue)
	}
	for _, s := range g.Senders {
		if err := ctx.Err(); err != nil {
			return ErrCanceled
		}
		edgeDelQueue = removeBadEdges(s, edgeDelQueue)

		s.MinInCost = MaxValue
		for _, e := range s.Edges {
			if e.Cost < s.MinInCost {
				s.MinInCost = e.Cost
			}
		}
	}

	g.removeOrphans()
	return nil
}

// visitWanters is the first DFS pass of Kosaraju's algorithm: it marks
// reachable Wants nodes and, on the way back up the recursion, records
// each one's Sends twin onto the finishing order.
func (g *Graph) visitWanters(w *Node) {
	w.Mark = g.timestamp
	for _, e := range w.Edges {
		next := e.Sender.Twin
		if next.Mark != g.timestamp {
			g.visitWanters(next)
		}
	}
	g.finished = append(g.finished, w.Twin)
}

// visitSenders is the second DFS pass: it walks the graph in the
// finishing order from visitWanters and labels every node it reaches,
// along with each one's twin, with the current component number.
func (g *Graph) visitSenders(s *Node) {
	s.Mark = g.timestamp
	for _, e := range s.Edges {
		next := e.Wanter.Twin
		if next.Mark != g.timestamp {
			g.visitSenders(next)
		}
	}
	s.Component = g.component
	s.Twin.Component = g.component
}

// removeBadEdges deletes n's edges whose wanter and sender disagree on
// component, appending newly-queued edges (for bookkeeping by the caller)
// to delQueue. Edges are shared between their wanter and sender node, so
// the same *Edge can reach this function twice; delQueue dedup is not
// required in Go since deleting the slice entries on each side
// independently is idempotent per node.
func removeBadEdges(n *Node, delQueue []*Edge) []*Edge {
	kept := n.Edges[:0]
	for _, e := range n.Edges {
		if e.Wanter.Component != e.Sender.Component {
			delQueue = append(delQueue, e)
			continue
		}
		kept = append(kept, e)
	}
	n.Edges = kept
	return delQueue
}

// removeOrphans moves wanters left with nothing but their self-loop into
// Orphans, discarding their Sends twin, and tallies ViableRealItems among
// the survivors.
func (g *Graph) removeOrphans() {
	survivors := g.Wanters[:0]
	for _, w := range g.Wanters {
		if len(w.Edges) < 2 {
			if len(w.Edges) != 1 || w.Edges[0].Sender != w.Twin {
				panic("graph: orphan candidate missing its self-loop")
			}
			g.Orphans = append(g.Orphans, w)
			continue
		}
		if !w.IsDummy {
			g.ViableRealItems++
		}
		survivors = append(survivors, w)
	}
	g.Wanters = survivors

	liveSenders := g.Senders[:0]
	for _, s := range g.Senders {
		if len(s.Edges) < 2 {
			continue
		}
		liveSenders = append(liveSenders, s)
	}
	g.Senders = liveSenders
}
