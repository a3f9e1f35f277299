// Package pheap implements an addressable pairing heap: a min-priority
// queue that supports decrease-key in amortized O(1), which the matching
// round in package graph relies on to relax reduced costs without
// rebuilding the queue.
package pheap

// Entry is a handle returned by Insert. Callers keep it around only to pass
// back into DecreaseCost; no other field access is part of the contract.
type Entry[T any] struct {
	Value T
	Cost  uint64

	child, sibling, prev *Entry[T]
	used                 bool
}

// Heap is a pairing heap of Entry values ordered by ascending Cost.
// It is not safe for concurrent use.
type Heap[T any] struct {
	root *Entry[T]
}

// New returns an empty heap. expectedSize is accepted for symmetry with the
// reference implementation's preallocation hint but Go's allocator makes it
// unnecessary here.
func New[T any](expectedSize int) *Heap[T] {
	return &Heap[T]{}
}

// IsEmpty reports whether the heap currently holds no entries.
func (h *Heap[T]) IsEmpty() bool {
	return h.root == nil
}

// Insert adds value at the given cost and returns a handle for later use
// with DecreaseCost.
func (h *Heap[T]) Insert(value T, cost uint64) *Entry[T] {
	e := &Entry[T]{Value: value, Cost: cost}
	if h.root == nil {
		h.root = e
	} else {
		h.root = merge(e, h.root)
	}
	return e
}

// ExtractMin removes and returns the entry with the smallest cost. It
// panics if the heap is empty; callers must check IsEmpty first, mirroring
// the reference's assertion that extractMin is never called on an empty
// heap.
func (h *Heap[T]) ExtractMin() *Entry[T] {
	if h.root == nil {
		panic("pheap: ExtractMin on empty heap")
	}
	min := h.root
	list := min.child
	min.used = true

	if list != nil {
		// The new root cannot have siblings. Each pass pair-merges the
		// list left to right and collects the merged pairs in reverse
		// order, with an odd entry out placed at the front; passes repeat
		// until one tree remains. This is the multi-pass form of pairing:
		// there is no single right-to-left folding pass.
		for list.sibling != nil {
			var next *Entry[T]
			for list != nil && list.sibling != nil {
				a := list
				b := a.sibling
				list = b.sibling

				a.sibling, b.sibling = nil, nil
				a = merge(a, b)
				a.sibling = next
				next = a
			}
			if list == nil {
				list = next
			} else {
				list.sibling = next
			}
		}
		list.prev = nil
	}
	h.root = list
	return min
}

// DecreaseCost lowers entry's cost and repositions it if needed. The caller
// must ensure newCost < entry.Cost and that entry has not already been
// extracted; both are programmer errors, not recoverable conditions.
func (h *Heap[T]) DecreaseCost(entry *Entry[T], newCost uint64) {
	if entry.used {
		panic("pheap: DecreaseCost on an already-extracted entry")
	}
	if newCost >= entry.Cost {
		panic("pheap: DecreaseCost requires a strictly smaller cost")
	}
	entry.Cost = newCost

	if entry == h.root || entry.Cost >= entry.prev.Cost {
		return
	}

	// Detach entry from its parent/sibling chain.
	if entry == entry.prev.child {
		entry.prev.child = entry.sibling
	} else {
		entry.prev.sibling = entry.sibling
	}
	if entry.sibling != nil {
		entry.sibling.prev = entry.prev
	}
	entry.prev = nil

	h.root = merge(entry, h.root)
}

// merge links the two trees so the cheaper root wins; the other is pushed
// to the front of the winner's child list.
func merge[T any](a, b *Entry[T]) *Entry[T] {
	if b.Cost < a.Cost {
		a, b = b, a
	}
	b.prev = a
	b.sibling = a.child
	if b.sibling != nil {
		b.sibling.prev = b
	}
	a.child = b
	return a
}
