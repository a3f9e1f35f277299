package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mtrade/tradeloop/graph"
)

// Build converts data into a frozen graph.Graph, deriving edge costs from
// opts.PriorityScheme. It never aborts on a malformed want list: the entry
// is skipped and a human-readable line is appended to data.Errors. Build
// only returns a non-nil error for caller misuse — a nil data, or a
// WantLists entry with no item name (no tokens at all, or only an owner
// token).
//
// Construction runs in the same two passes the reference parser uses: the
// first pass creates every node (so duplicate/unofficial/dummy names can
// be rejected before any edge references them), the second creates edges.
func Build(data *ParseData, opts ...Option) (*graph.Graph, error) {
	if data == nil {
		return nil, fmt.Errorf("builder: nil ParseData")
	}
	o := newOptions(opts...)
	g := graph.New()

	official := make(map[string]bool, len(data.OfficialNames))
	for _, n := range data.OfficialNames {
		official[normalizeCase(n, o.CaseSensitive)] = true
	}
	usernames := make(map[string]bool)

	skip := make([]bool, len(data.WantLists))
	for i, list := range data.WantLists {
		if len(list) == 0 {
			return nil, ErrEmptyWantList
		}

		name := list[0]
		owner := ""
		if strings.HasPrefix(name, "(") {
			owner = strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(name, "("), ")"), "#", " ")
			list = list[1:]
			if len(list) == 0 {
				return nil, ErrEmptyWantList
			}
			name = list[0]
			usernames[owner] = true
		}

		isDummy := strings.HasPrefix(name, "%")
		if isDummy {
			switch {
			case owner == "":
				data.Errors = append(data.Errors, fmt.Sprintf("**** Dummy item %s declared without a username.", name))
				skip[i] = true
				continue
			case !o.AllowDummies:
				data.Errors = append(data.Errors, fmt.Sprintf("**** Dummy items not allowed. (%s)", name))
				skip[i] = true
				continue
			}
			name += " for user " + owner
		}

		key := normalizeCase(name, o.CaseSensitive)
		if len(official) > 0 && !official[key] && !isDummy {
			data.Errors = append(data.Errors, fmt.Sprintf("**** Cannot define want list for %s because it is not an official name.  (Usually indicates a typo by the item owner.)", name))
			skip[i] = true
			continue
		}
		if g.GetNode(name) != nil {
			data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s has multiple want lists--ignoring all but first.  (Sometimes the result of an accidental line break in the middle of a want list.)", name))
			skip[i] = true
			continue
		}

		data.NumItems++
		if isDummy {
			data.NumDummyItems++
		}
		g.AddNode(name, owner, isDummy)
		if official[key] {
			data.UsedNames = append(data.UsedNames, name)
		}
		if !isDummy {
			width := len(showName(name, owner, o.SortByItem))
			if width > data.MaxNameWidth {
				data.MaxNameWidth = width
			}
		}

		// Fold the owner-prefix strip and dummy suffix back into the
		// stored list so the edge pass below can address this item by
		// its resolved node name without redoing the transform.
		resolved := make([]string, len(list))
		copy(resolved, list)
		resolved[0] = name
		data.WantLists[i] = resolved
	}
	for u := range usernames {
		data.Usernames = append(data.Usernames, u)
	}

	unknown := make(map[string]int)
	for i, list := range data.WantLists {
		if skip[i] {
			continue
		}

		fromName := list[0]
		fromNode := g.GetNode(fromName)
		g.AddEdge(fromNode, fromNode.Twin, o.NonTradeCost)

		rank := uint64(1)
		for _, tok := range list[1:] {
			if tok == ";" {
				rank += o.BigStep
				continue
			}

			toName := tok
			cost := rank
			if idx := strings.IndexByte(tok, '='); idx >= 0 {
				if o.PriorityScheme != Explicit {
					data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s: explicit costs require the Explicit priority scheme.", tok))
					continue
				}
				explicitCost, err := strconv.ParseUint(tok[idx+1:], 10, 64)
				if err != nil || explicitCost < 1 {
					data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s has an invalid explicit cost.", tok))
					continue
				}
				toName = tok[:idx]
				rank = explicitCost
				cost = explicitCost
			}

			if strings.HasPrefix(toName, "%") {
				if fromNode.Owner == "" {
					data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s wants dummy item %s, but has no username.", fromName, toName))
					continue
				}
				toName += " for user " + fromNode.Owner
			}

			toWanter := g.GetNode(toName)
			if toWanter == nil {
				if official[normalizeCase(toName, o.CaseSensitive)] {
					rank += o.SmallStep
				} else {
					unknown[toName]++
				}
				continue
			}
			toSender := toWanter.Twin

			switch {
			case toSender == fromNode.Twin:
				data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s appears in its own want list.", toName))
			case fromNode.ContainsEdge(toSender):
				if o.ShowRepeats {
					data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s is repeated in want list for %s.", toName, fromName))
				}
			case !toSender.IsDummy && fromNode.Owner == toSender.Owner:
				data.Errors = append(data.Errors, fmt.Sprintf("**** Item %s contains item %s from the same user (%s)", fromNode.Name, toSender.Name, fromNode.Owner))
			default:
				edgeCost := priorityCost(o.PriorityScheme, rank, cost)
				if fromNode.IsDummy {
					edgeCost = o.NonTradeCost
				}
				g.AddEdge(fromNode, toSender, edgeCost)
			}

			rank += o.SmallStep
		}

		if o.PriorityScheme == Scaled && !fromNode.IsDummy {
			rescale(fromNode)
		}
	}

	for name, count := range unknown {
		occurrence := "occurrence"
		if count != 1 {
			occurrence += "s"
		}
		data.Errors = append(data.Errors, fmt.Sprintf("**** Unknown item %s (%d %s)", name, count, occurrence))
	}

	g.Freeze()
	return g, nil
}

// priorityCost converts a want's rank into an edge cost under scheme. rank
// is pre-stepped by the caller; explicitCost is only meaningful under the
// Explicit scheme.
func priorityCost(scheme PriorityScheme, rank, explicitCost uint64) uint64 {
	switch scheme {
	case NoPriorities:
		return 1
	case Triangle:
		return rank * (rank + 1) / 2
	case Square:
		return rank * rank
	case Explicit:
		return explicitCost
	default: // Linear, Scaled
		return rank
	}
}

// rescale maps each of fromNode's non-self-loop edge costs to
// 1 + (cost-1)*scaledPriorityRange/n, where n is the number of such edges,
// preserving their relative order. Costs stay within 1..scaledPriorityRange
// only while no rank exceeds n; a semicolon or a skipped token pushes later
// costs past it. It is applied once per node, after its whole want list has
// been read, matching the reference's post-pass.
func rescale(fromNode *graph.Node) {
	n := len(fromNode.Edges) - 1
	if n <= 0 {
		return
	}
	for _, e := range fromNode.Edges {
		if e.Sender == fromNode.Twin {
			continue
		}
		e.Cost = 1 + (e.Cost-1)*scaledPriorityRange/uint64(n)
	}
}

func normalizeCase(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// showName renders an item the way a formatter built on this package
// would display it: bare for ownerless items, else paired with
// the owner in the order sortByItem selects.
func showName(name, owner string, sortByItem bool) string {
	if owner == "" {
		return name
	}
	if sortByItem {
		return name + " " + owner
	}
	return owner + " " + name
}
