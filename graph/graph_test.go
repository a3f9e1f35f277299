// Package graph_test exercises the twin-node graph through its exported
// API only, mirroring how the builder and scheduler packages use it.
package graph_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrade/tradeloop/graph"
	"github.com/mtrade/tradeloop/prng"
)

const nonTradeCost = uint64(1_000_000_000)

func selfLoop(g *graph.Graph, n *graph.Node) {
	g.AddEdge(n, n.Twin, nonTradeCost)
}

func cycleNames(c graph.Cycle) []string {
	names := make([]string, len(c))
	for i, n := range c {
		names[i] = n.Name
	}
	return names
}

func TestTrivialPair(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	b := g.AddNode("B", "u2", false)
	selfLoop(g, a)
	selfLoop(g, b)
	g.AddEdge(a, b.Twin, 1)
	g.AddEdge(b, a.Twin, 1)
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	cycles, err := g.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 2)
	assert.ElementsMatch(t, []string{"A", "B"}, cycleNames(cycles[0]))

	var totalCost uint64
	for _, n := range cycles[0] {
		totalCost += n.MatchCost
	}
	assert.EqualValues(t, 2, totalCost)
}

func TestNoTradePossible(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	b := g.AddNode("B", "u2", false)
	c := g.AddNode("C", "u3", false)
	selfLoop(g, a)
	selfLoop(g, b)
	selfLoop(g, c)
	g.AddEdge(a, b.Twin, 1)
	g.AddEdge(b, c.Twin, 1)
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	cycles, err := g.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestSCCPruningOrphansDanglingWanter(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	b := g.AddNode("B", "u2", false)
	c := g.AddNode("C", "u3", false)
	selfLoop(g, a)
	selfLoop(g, b)
	selfLoop(g, c)
	g.AddEdge(a, b.Twin, 1)
	g.AddEdge(b, a.Twin, 1)
	g.AddEdge(c, a.Twin, 1) // C wants A, but A never wants C back
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	require.Len(t, g.Orphans, 1)
	assert.Equal(t, "C", g.Orphans[0].Name)

	cycles, err := g.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.ElementsMatch(t, []string{"A", "B"}, cycleNames(cycles[0]))
}

func TestDummyElisionHidesDummyFromCycle(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u2", false)
	d := g.AddNode("%D", "u1", true)
	c := g.AddNode("C", "u1", false)
	selfLoop(g, a)
	selfLoop(g, d)
	selfLoop(g, c)
	g.AddEdge(a, d.Twin, 1)
	g.AddEdge(d, c.Twin, 1)
	g.AddEdge(c, a.Twin, 1)
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	cycles, err := g.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	names := cycleNames(cycles[0])
	assert.NotContains(t, names, "%D")
	assert.ElementsMatch(t, []string{"A", "C"}, names)
}

func TestZeroWantersReturnsEmptyWithoutDijkstra(t *testing.T) {
	g := graph.New()
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	cycles, err := g.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestOrphanWithOnlySelfLoop(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	selfLoop(g, a)
	g.Freeze()

	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
	require.Len(t, g.Orphans, 1)
	assert.Empty(t, g.Wanters)
}

func TestFreezeTwicePanics(t *testing.T) {
	g := graph.New()
	g.Freeze()
	assert.Panics(t, func() { g.Freeze() })
}

func TestAddNodeAfterFreezePanics(t *testing.T) {
	g := graph.New()
	g.Freeze()
	assert.Panics(t, func() { g.AddNode("A", "u1", false) })
}

func TestCopyIdempotence(t *testing.T) {
	build := func() *graph.Graph {
		g := graph.New()
		a := g.AddNode("A", "u1", false)
		b := g.AddNode("B", "u2", false)
		selfLoop(g, a)
		selfLoop(g, b)
		g.AddEdge(a, b.Twin, 1)
		g.AddEdge(b, a.Twin, 1)
		g.Freeze()
		require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
		return g
	}

	template := build()
	copyA := template.Copy()
	copyB := template.Copy()

	cyclesA, err := copyA.FindCycles(context.Background(), nil)
	require.NoError(t, err)
	cyclesB, err := copyB.FindCycles(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, cyclesA, cyclesB)
}

func TestDeterministicSingleIteration(t *testing.T) {
	build := func() *graph.Graph {
		g := graph.New()
		names := []string{"A", "B", "C", "D"}
		nodes := make(map[string]*graph.Node)
		for _, n := range names {
			nodes[n] = g.AddNode(n, "u-"+n, false)
			selfLoop(g, nodes[n])
		}
		g.AddEdge(nodes["A"], nodes["B"].Twin, 1)
		g.AddEdge(nodes["B"], nodes["C"].Twin, 1)
		g.AddEdge(nodes["C"], nodes["D"].Twin, 1)
		g.AddEdge(nodes["D"], nodes["A"].Twin, 1)
		g.Freeze()
		require.NoError(t, g.RemoveImpossibleEdges(context.Background()))
		return g
	}

	run := func(seed int64) graph.Cycles {
		tmpl := build()
		tmpl.Shuffle(prng.NewSource(seed))
		cp := tmpl.Copy()
		cycles, err := cp.FindCycles(context.Background(), nil)
		require.NoError(t, err)
		return cycles
	}

	first := run(42)
	second := run(42)
	assert.Equal(t, first, second)
}

func TestRemoveImpossibleEdgesRespectsCancellation(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	b := g.AddNode("B", "u2", false)
	selfLoop(g, a)
	selfLoop(g, b)
	g.AddEdge(a, b.Twin, 1)
	g.AddEdge(b, a.Twin, 1)
	g.Freeze()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := g.RemoveImpossibleEdges(ctx)
	assert.ErrorIs(t, err, graph.ErrCanceled)
}

func TestFindCyclesRespectsPauseFlag(t *testing.T) {
	// FindCycles samples the pause flag at round 0 (and every 64th round
	// after). The flag here is never set, so this test only verifies that
	// an unset pause flag never blocks.
	g := graph.New()
	a := g.AddNode("A", "u1", false)
	b := g.AddNode("B", "u2", false)
	selfLoop(g, a)
	selfLoop(g, b)
	g.AddEdge(a, b.Twin, 1)
	g.AddEdge(b, a.Twin, 1)
	g.Freeze()
	require.NoError(t, g.RemoveImpossibleEdges(context.Background()))

	var paused atomic.Bool
	cycles, err := g.FindCycles(context.Background(), &paused)
	require.NoError(t, err)
	assert.Len(t, cycles, 1)
}
