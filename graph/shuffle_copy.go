package graph

import "github.com/mtrade/tradeloop/prng"

// Shuffle randomizes the wanter order and each wanter's edge order via
// Fisher-Yates, driven by source.NextInt. The exact iteration order here
// (descending from len down to 2, swapping index j with i-1) is
// load-bearing: it must match the reference implementation bit-for-bit so
// that a given seed reproduces the same matching. Senders are never
// shuffled directly; their effective edge order follows the wanter order
// through Copy's re-emission rule.
func (g *Graph) Shuffle(source *prng.Source) {
	for i := len(g.Wanters); i > 1; i-- {
		j := int(source.NextInt(int32(i)))
		g.Wanters[j], g.Wanters[i-1] = g.Wanters[i-1], g.Wanters[j]
	}

	for _, w := range g.Wanters {
		edges := w.Edges
		for i := len(edges); i > 1; i-- {
			j := int(source.NextInt(int32(i)))
			edges[j], edges[i-1] = edges[i-1], edges[j]
		}
	}
}

// Copy produces a new frozen graph isomorphic to g. Wanters are recreated
// in g's current (possibly shuffled) order; senders are recreated in their
// original order and re-linked to their wanter twin by stripping the
// " sender" name suffix. Edges are re-emitted by walking the old senders in
// their original order but reading each one's edges off its twin wanter,
// so that edge insertion order follows the shuffled wanter's edge order.
// This ordering discipline reproduces the reference's tie-breaking and
// must not be "simplified" away.
//
// Copy panics if g is not frozen.
func (g *Graph) Copy() *Graph {
	if !g.frozen {
		panic("graph: Copy on an unfrozen graph")
	}

	cp := New()

	for _, w := range g.Wanters {
		nw := &Node{
			Name:      w.Name,
			Owner:     w.Owner,
			IsDummy:   w.IsDummy,
			Direction: Wants,
			MinInCost: MaxValue,
		}
		cp.Wanters = append(cp.Wanters, nw)
		cp.nameMap[nw.Name] = nw
	}

	for _, s := range g.Senders {
		ns := &Node{
			Name:      s.Name,
			Owner:     s.Owner,
			IsDummy:   s.IsDummy,
			Direction: Sends,
			MinInCost: MaxValue,
		}
		cp.Senders = append(cp.Senders, ns)

		wantName := s.Name[:len(s.Name)-len(senderSuffix)]
		nw := cp.GetNode(wantName)
		if nw == nil {
			panic("graph: Copy could not find twin wanter for " + s.Name)
		}
		nw.Twin = ns
		ns.Twin = nw
	}

	for _, s := range g.Senders {
		w := s.Twin
		for _, e := range w.Edges {
			nw := cp.GetNode(e.Wanter.Name)
			ns := cp.GetNode(e.Sender.Twin.Name).Twin
			cp.AddEdge(nw, ns, e.Cost)
		}
	}

	g.NumCopies++
	cp.NumCopies = g.NumCopies
	cp.ViableRealItems = g.ViableRealItems
	cp.Freeze()
	return cp
}
