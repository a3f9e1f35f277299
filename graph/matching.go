package graph

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mtrade/tradeloop/pheap"
)

// CycleNode is a snapshot of one item's role in a resolved trade cycle,
// captured after matching so the original node can be freed along with its
// graph.
type CycleNode struct {
	Name      string
	Owner     string
	IsDummy   bool
	MatchCost uint64
	// Receives is the name of the item this node is matched to receive,
	// i.e. the next node's item name walking the cycle forward. It is
	// carried only so a formatter can print "X receives Y"; the engine
	// itself does not interpret it.
	Receives string
	// ReceivesOwner is the owner of the item named in Receives, needed by
	// the CombineShipping metric (owner pairs, not item pairs).
	ReceivesOwner string
}

// Cycle is a non-empty closed sequence of matched items.
type Cycle []CycleNode

// Cycles is the result of a successful FindCycles call.
type Cycles []Cycle

// FindCycles solves min-cost perfect matching on the bipartite Wants/Sends
// graph via successive shortest augmenting paths with reduced-cost
// Dijkstra (the Jonker-Volgenant "price" scheme), then elides dummy items
// and extracts the resulting cycles.
//
// ctx is checked every 64 rounds; a cancellation returns (nil, ErrCanceled)
// with the graph left in an unspecified, not-reused state. paused is
// sampled at the same cadence: while it reads true the goroutine sleeps in
// one-second ticks, matching the reference's pause behavior.
//
// FindCycles panics if the graph is not frozen, or if an internal
// invariant (a non-negative reduced cost, a reachable sink on every round)
// is violated — both are programmer errors, not input errors.
func (g *Graph) FindCycles(ctx context.Context, paused *atomic.Bool) (Cycles, error) {
	if !g.frozen {
		panic("graph: FindCycles on an unfrozen graph")
	}
	if len(g.Wanters) == 0 {
		g.Progress = 256
		return Cycles{}, nil
	}

	for _, w := range g.Wanters {
		w.Match = nil
		w.Price = 0
	}
	for _, s := range g.Senders {
		s.Match = nil
		s.Price = s.MinInCost
	}

	numWanters := len(g.Wanters)
	for round := 0; round < numWanters; round++ {
		if round&0x3F == 0 {
			g.Progress = (round<<8)/numWanters + 1
			if ctx.Err() != nil {
				return nil, ErrCanceled
			}
			for paused != nil && paused.Load() {
				time.Sleep(time.Second)
				if ctx.Err() != nil {
					return nil, ErrCanceled
				}
			}
		}

		heap := pheap.New[*Node](len(g.Senders) * 2)
		sinkFrom, _ := g.dijkstra(heap)
		if sinkFrom == nil {
			panic("graph: matching round found no reachable sink")
		}

		sender := sinkFrom
		for sender != nil {
			wanter := sender.From
			if sender.Match != nil {
				sender.Match.Match = nil
			}
			if wanter.Match != nil {
				wanter.Match.Match = nil
			}
			sender.Match = wanter
			wanter.Match = sender

			for _, e := range wanter.Edges {
				if e.Sender == sender {
					wanter.MatchCost = e.Cost
					break
				}
			}

			sender = wanter.From
		}

		for _, w := range g.Wanters {
			w.Price = clampAdd(w.Price, w.heapEntry.Cost)
		}
		for _, s := range g.Senders {
			s.Price = clampAdd(s.Price, s.heapEntry.Cost)
		}
	}
	g.Progress = 256

	g.elideDummies()
	return g.extractCycles(), nil
}

// dijkstra runs one round of reduced-cost relaxation over every node in
// the graph and returns the cheapest unmatched Sends node reached (the
// augmenting path's sink) along with its cost.
func (g *Graph) dijkstra(heap *pheap.Heap[*Node]) (sinkFrom *Node, sinkCost uint64) {
	sinkCost = MaxValue

	for _, s := range g.Senders {
		s.From = nil
		s.heapEntry = heap.Insert(s, infinity)
	}
	for _, w := range g.Wanters {
		cost := uint64(infinity)
		if w.Match == nil {
			cost = 0
		}
		w.From = nil
		w.heapEntry = heap.Insert(w, cost)
	}

	for !heap.IsEmpty() {
		entry := heap.ExtractMin()
		node := entry.Value
		cost := entry.Cost

		if cost == infinity {
			break
		}

		switch {
		case node.Direction == Wants:
			for _, e := range node.Edges {
				other := e.Sender
				if other == node.Match {
					continue
				}
				c := node.Price + e.Cost - other.Price
				if c > MaxValue {
					panic("graph: reduced cost went negative (wanter->sender)")
				}
				if cost+c < other.heapEntry.Cost {
					heap.DecreaseCost(other.heapEntry, cost+c)
					other.From = node
				}
			}
		case node.Match == nil:
			if cost < sinkCost {
				sinkFrom = node
				sinkCost = cost
			}
		default:
			other := node.Match
			c := node.Price - other.MatchCost - other.Price
			if c > MaxValue {
				panic("graph: reduced cost went negative (sender->wanter)")
			}
			if cost+c < other.heapEntry.Cost {
				heap.DecreaseCost(other.heapEntry, cost+c)
				other.From = node
			}
		}
	}
	return sinkFrom, sinkCost
}

// clampAdd adds b to a, saturating at MaxValue instead of wrapping.
func clampAdd(a, b uint64) uint64 {
	sum := a + b
	if sum > MaxValue || sum < a {
		return MaxValue
	}
	return sum
}

// elideDummies re-links matches through any run of dummy senders so that
// dummies never appear as a hop in a trade chain, then matches each
// bypassed dummy to its own twin so it drops out of cycle extraction. It
// is idempotent and is only ever run once, immediately after matching.
func (g *Graph) elideDummies() {
	for _, w := range g.Wanters {
		if w.IsDummy {
			continue
		}
		for w.Match.IsDummy {
			dummySender := w.Match
			next := dummySender.Twin.Match
			w.Match = next
			next.Match = w
			dummySender.Match = dummySender.Twin
			dummySender.Twin.Match = dummySender
		}
	}
}

// extractCycles walks the matched wanters into disjoint cycles, skipping
// any wanter matched to its own twin (a no-trade outcome).
func (g *Graph) extractCycles() Cycles {
	g.timestamp++
	var cycles Cycles

	for _, start := range g.Wanters {
		if start.Mark == g.timestamp || start.Match == start.Twin {
			continue
		}

		var cyc Cycle
		node := start
		for node.Mark != g.timestamp {
			node.Mark = g.timestamp
			cyc = append(cyc, CycleNode{
				Name:          node.Name,
				Owner:         node.Owner,
				IsDummy:       node.IsDummy,
				MatchCost:     node.MatchCost,
				Receives:      node.Match.Twin.Name,
				ReceivesOwner: node.Match.Twin.Owner,
			})
			node = node.Match.Twin
		}
		cycles = append(cycles, cyc)
	}
	return cycles
}
