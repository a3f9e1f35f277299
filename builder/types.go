package builder

// ParseData is the front end's tokenized output: one entry in WantLists per
// line of input, already split into whitespace-delimited tokens with raw
// punctuation (parentheses, colons, semicolons) resolved into the shape
// Build expects below.
//
// Each WantLists[i] is ["itemName", "wantedItem1", "wantedItem2", ...],
// optionally preceded by an owner token of the form "(username)" before the
// item name. Build strips the parentheses and turns any "#" in the token
// back into a space to get the owner name.
// A ";" token inside the tail advances the big step; a token containing
// "=" is an explicit cost override, valid only under the Explicit scheme.
type ParseData struct {
	// OfficialNames, when non-empty, restricts which items may have a want
	// list; a want list for a name outside this set is an error unless the
	// item is a dummy.
	OfficialNames []string
	WantLists     [][]string

	// Usernames, NumItems, NumDummyItems, MaxNameWidth, and UsedNames are
	// populated by Build as it runs, mirroring the bookkeeping the
	// reference parser accumulates during buildGraph.
	Usernames     []string
	NumItems      int
	NumDummyItems int
	MaxNameWidth  int
	UsedNames     []string

	// Errors collects one human-readable line per malformed entry; Build
	// never aborts on a bad want list, it records the problem here and
	// continues with the rest.
	Errors []string
}
