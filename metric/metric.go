// Package metric scores a resolved cycle-set under one of four schemes and
// renders the same human-readable summary string the reference
// implementation produces, so regression tests can diff against captured
// reference output.
package metric

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mtrade/tradeloop/graph"
)

// Scheme selects which formula Evaluate applies. Lower scores are always
// better; schemes that are naturally "higher is better" (trading more
// users, combining more shipments) are negated so every scheme shares the
// same ordering direction.
type Scheme int

const (
	// ChainSizesSOS scores Σ sizeᵢ²; for the same number of trading items
	// it prefers more, smaller cycles over fewer, larger ones.
	ChainSizesSOS Scheme = iota
	// UsersTrading maximizes the count of distinct owners who trade.
	UsersTrading
	// UsersSOS scores Σ countᵤ² over each owner's cycle slots, so it
	// prefers slots spread across owners and penalizes one owner holding
	// many of them.
	UsersSOS
	// CombineShipping minimizes the distinct sender/receiver owner pairs
	// that would require separate shipments.
	CombineShipping
)

func (s Scheme) String() string {
	switch s {
	case ChainSizesSOS:
		return "ChainSizesSOS"
	case UsersTrading:
		return "UsersTrading"
	case UsersSOS:
		return "UsersSOS"
	case CombineShipping:
		return "CombineShipping"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Evaluate scores cycles under scheme, returning the score (lower is
// better) and its summary string. It panics on an unrecognized scheme,
// since Scheme values are only ever constructed from the constants above.
func Evaluate(scheme Scheme, cycles graph.Cycles) (score int64, summary string) {
	switch scheme {
	case ChainSizesSOS:
		return chainSizesSOS(cycles)
	case UsersTrading:
		return usersTrading(cycles)
	case UsersSOS:
		return usersSOS(cycles)
	case CombineShipping:
		return combineShipping(cycles)
	default:
		panic(fmt.Sprintf("metric: unknown scheme %d", int(scheme)))
	}
}

func chainSizesSOS(cycles graph.Cycles) (int64, string) {
	var sum int64
	sizes := make([]int, 0, len(cycles))
	for _, c := range cycles {
		n := int64(len(c))
		sum += n * n
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)

	var b strings.Builder
	fmt.Fprintf(&b, "[ %d :", sum)
	for i := len(sizes) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " %d", sizes[i])
	}
	b.WriteString(" ]")
	return sum, b.String()
}

func usersTrading(cycles graph.Cycles) (int64, string) {
	seen := make(map[string]struct{})
	for _, c := range cycles {
		for _, n := range c {
			seen[n.Owner] = struct{}{}
		}
	}
	count := len(seen)
	return -int64(count), fmt.Sprintf("[ users trading = %d ]", count)
}

func usersSOS(cycles graph.Cycles) (int64, string) {
	counts := make(map[string]int64)
	for _, c := range cycles {
		for _, n := range c {
			counts[n.Owner]++
		}
	}
	var sum int64
	for _, c := range counts {
		sum += c * c
	}
	return sum, fmt.Sprintf("[ users trading = %d, sum of squares = %d ]", len(counts), sum)
}

func combineShipping(cycles graph.Cycles) (int64, string) {
	pairs := make(map[string]int64)
	for _, c := range cycles {
		for _, n := range c {
			key := n.Owner + " receives " + n.ReceivesOwner
			pairs[key]++
		}
	}
	var count int64
	for _, v := range pairs {
		if v > 1 {
			count += v - 1
		}
	}
	return -count, fmt.Sprintf("[ combine shipping = %d ]", count)
}
