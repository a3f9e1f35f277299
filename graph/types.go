package graph

import "github.com/mtrade/tradeloop/pheap"

// MaxValue is the saturating clamp applied to price updates so the u64
// arithmetic backing reduced costs never wraps.
const MaxValue uint64 = 1<<63 - 1

// infinity is the heap-entry cost used to mean "unreached" during a
// matching round. It is far below MaxValue so that price + cost - price
// arithmetic during relaxation never collides with it.
const infinity uint64 = 100_000_000_000_000

// Direction distinguishes the two twin halves of an item.
type Direction int

const (
	// Wants is the item viewed as a receiver: its edges are the other
	// items its owner would accept instead.
	Wants Direction = iota
	// Sends is the item viewed as a sender: its edges mirror the Wants
	// side of every item that listed it.
	Sends
)

func (d Direction) String() string {
	if d == Wants {
		return "wants"
	}
	return "sends"
}

// Node is one half of an item's twin pair. Nodes are never shared across
// graph copies; a worker goroutine owns every Node reachable from the
// Graph it was handed.
type Node struct {
	Name      string
	Owner     string
	IsDummy   bool
	Direction Direction
	Edges     []*Edge

	Twin  *Node
	Match *Node

	MatchCost uint64
	MinInCost uint64
	Mark      uint32
	From      *Node
	Price     uint64
	Component uint32

	heapEntry *pheap.Entry[*Node]
}

// ContainsEdge reports whether this node already has an edge to the given
// Sends node. The builder uses it to detect a want repeated within one
// want list; it mirrors the reference's containsEdge helper.
func (n *Node) ContainsEdge(sender *Node) bool {
	for _, e := range n.Edges {
		if e.Sender == sender {
			return true
		}
	}
	return false
}

// Edge is a directed offer: the Wanter is willing to receive the item the
// Sender half represents, at the given cost. Both endpoints hold a
// reference to the same Edge value.
type Edge struct {
	Wanter *Node
	Sender *Node
	Cost   uint64
}

// Graph owns a set of twin node pairs and the edges between them.
type Graph struct {
	Wanters []*Node
	Senders []*Node
	Orphans []*Node

	nameMap map[string]*Node

	frozen    bool
	timestamp uint32
	component uint32
	finished  []*Node

	// NumCopies records how many times the template this graph descended
	// from has been copied; it is the tie-break key when two iterations
	// score equally well (spec.md §4.7: lower NumCopies wins).
	NumCopies int
	// Progress runs 1..256 during FindCycles, then 256 once complete.
	Progress int
	// ViableRealItems is the count of non-dummy items that survived
	// RemoveImpossibleEdges.
	ViableRealItems int
}

// New returns an empty, unfrozen graph ready for AddNode/AddEdge calls.
func New() *Graph {
	return &Graph{nameMap: make(map[string]*Node)}
}

// GetNode looks up a Wants node by its exact item name, returning nil if no
// such node exists. Sends nodes are not indexed; reach one through its
// wanter's Twin.
func (g *Graph) GetNode(name string) *Node {
	return g.nameMap[name]
}

// Frozen reports whether the graph has been frozen.
func (g *Graph) Frozen() bool {
	return g.frozen
}
