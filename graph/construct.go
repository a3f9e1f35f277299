package graph

// senderSuffix is appended to a wanter's name to derive its twin sender's
// name. Copy() strips it back off to re-link twins by name.
const senderSuffix = " sender"

// AddNode creates a twin pair — a Wants node named name and a Sends node
// named name+" sender" — and returns the Wants half. It panics if the
// graph is frozen or name is already taken; both are builder bugs, not
// input errors (input validation happens before AddNode is called).
func (g *Graph) AddNode(name, owner string, isDummy bool) *Node {
	if g.frozen {
		panic("graph: AddNode on a frozen graph")
	}
	if _, exists := g.nameMap[name]; exists {
		panic("graph: AddNode with duplicate name " + name)
	}

	wanter := &Node{
		Name:      name,
		Owner:     owner,
		IsDummy:   isDummy,
		Direction: Wants,
		MinInCost: MaxValue,
	}
	g.Wanters = append(g.Wanters, wanter)
	g.nameMap[name] = wanter

	sender := &Node{
		Name:      name + senderSuffix,
		Owner:     owner,
		IsDummy:   isDummy,
		Direction: Sends,
		MinInCost: MaxValue,
	}
	g.Senders = append(g.Senders, sender)
	wanter.Twin = sender
	sender.Twin = wanter

	return wanter
}

// AddEdge records that wanter is willing to receive from sender, at cost.
// It opportunistically tracks the sender's minimum incoming cost; that
// value is recomputed authoritatively by RemoveImpossibleEdges once bad
// edges are pruned, so this pass is an optimization, not a correctness
// requirement (see DESIGN.md for the open question this resolves).
func (g *Graph) AddEdge(wanter, sender *Node, cost uint64) *Edge {
	if g.frozen {
		panic("graph: AddEdge on a frozen graph")
	}
	if wanter.Direction != Wants {
		panic("graph: AddEdge wanter argument is not a Wants node")
	}
	if sender.Direction != Sends {
		panic("graph: AddEdge sender argument is not a Sends node")
	}

	e := &Edge{Wanter: wanter, Sender: sender, Cost: cost}
	wanter.Edges = append(wanter.Edges, e)
	sender.Edges = append(sender.Edges, e)

	if cost < sender.MinInCost {
		sender.MinInCost = cost
	}
	return e
}

// Freeze locks the graph against further AddNode/AddEdge calls. It panics
// if called twice.
func (g *Graph) Freeze() {
	if g.frozen {
		panic("graph: Freeze called twice")
	}
	g.frozen = true
}
