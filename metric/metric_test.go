package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtrade/tradeloop/graph"
	"github.com/mtrade/tradeloop/metric"
)

func cn(name, owner, receivesOwner string) graph.CycleNode {
	return graph.CycleNode{Name: name, Owner: owner, ReceivesOwner: receivesOwner}
}

func TestChainSizesSOS(t *testing.T) {
	cycles := graph.Cycles{
		{cn("A", "u1", "u2"), cn("B", "u2", "u1")},
	}
	score, summary := metric.Evaluate(metric.ChainSizesSOS, cycles)
	assert.EqualValues(t, 4, score)
	assert.Equal(t, "[ 4 : 2 ]", summary)
}

func TestChainSizesSOSMultipleCyclesSortedDescending(t *testing.T) {
	cycles := graph.Cycles{
		{cn("A", "u1", "u2"), cn("B", "u2", "u1")},
		{cn("C", "u3", "u4"), cn("D", "u4", "u5"), cn("E", "u5", "u3")},
	}
	score, summary := metric.Evaluate(metric.ChainSizesSOS, cycles)
	assert.EqualValues(t, 4+9, score)
	assert.Equal(t, "[ 13 : 3 2 ]", summary)
}

func TestUsersTrading(t *testing.T) {
	cycles := graph.Cycles{
		{cn("A", "u1", "u2"), cn("B", "u2", "u1")},
		{cn("C", "u3", "u4"), cn("D", "u4", "u3")},
	}
	score, summary := metric.Evaluate(metric.UsersTrading, cycles)
	assert.EqualValues(t, -4, score)
	assert.Equal(t, "[ users trading = 4 ]", summary)
}

func TestUsersSOSSumsSquaredOwnerSlots(t *testing.T) {
	cycles := graph.Cycles{
		{cn("A", "u1", "u2"), cn("B", "u1", "u2"), cn("C", "u2", "u1")},
	}
	score, summary := metric.Evaluate(metric.UsersSOS, cycles)
	// u1 contributes 2 slots, u2 contributes 1: 2^2 + 1^2 = 5.
	assert.EqualValues(t, 5, score)
	assert.Equal(t, "[ users trading = 2, sum of squares = 5 ]", summary)
}

func TestCombineShippingCountsRepeatedOwnerPairs(t *testing.T) {
	cycles := graph.Cycles{
		{cn("A", "u1", "u2"), cn("B", "u1", "u2"), cn("C", "u2", "u1")},
	}
	score, summary := metric.Evaluate(metric.CombineShipping, cycles)
	// "u1 receives u2" occurs twice -> 1 combined shipment saved.
	assert.EqualValues(t, -1, score)
	assert.Equal(t, "[ combine shipping = 1 ]", summary)
}

func TestEmptyCyclesScoreZero(t *testing.T) {
	for _, s := range []metric.Scheme{metric.ChainSizesSOS, metric.UsersTrading, metric.UsersSOS, metric.CombineShipping} {
		score, _ := metric.Evaluate(s, graph.Cycles{})
		assert.Zero(t, score, s.String())
	}
}

func TestEvaluatePanicsOnUnknownScheme(t *testing.T) {
	assert.Panics(t, func() {
		metric.Evaluate(metric.Scheme(99), graph.Cycles{})
	})
}
