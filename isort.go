// Indirect sorting.
//
// Sorting happens in two phases. Order computes a permutation from keys
// while only reading the items. Apply then moves the items into that order
// in place by following the permutation's cycles, so items are swapped, not
// copied into a second slice: at most n-1 swaps and no allocation.
//
// Apply indexes items with the permutation's values without further checks
// and relies on it being a bijection over [0, n). A Permutation can only be
// obtained from Order, which builds one by construction, or from
// NewPermutation, which validates it first.
package tes3

import (
	"fmt"
	"slices"
)

// Permutation is an ordering of n positions: position i of the result takes
// the item currently at Indices()[i]. It is used up by Apply.
type Permutation struct {
	indices  []int
	consumed bool
}

// Order returns the permutation that stable-sorts items by key. Items whose
// keys compare equal keep their relative order.
func Order[T, K any](items []T, key func(T) K, compare func(a, b K) int) *Permutation {
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return compare(key(items[a]), key(items[b]))
	})
	return &Permutation{indices: indices}
}

// NewPermutation validates an externally built order. Every value must be in
// [0, len(indices)) and appear exactly once. The slice is copied.
func NewPermutation(indices []int) (*Permutation, error) {
	seen := make([]bool, len(indices))
	for i, v := range indices {
		if v < 0 || v >= len(indices) {
			return nil, fmt.Errorf("%w: index %d at position %d out of range [0, %d)", ErrPermutation, v, i, len(indices))
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: index %d repeated at position %d", ErrPermutation, v, i)
		}
		seen[v] = true
	}
	return &Permutation{indices: slices.Clone(indices)}, nil
}

// Len returns the number of positions.
func (p *Permutation) Len() int {
	return len(p.indices)
}

// Indices returns a copy of the order, or nil once the permutation has been
// applied.
func (p *Permutation) Indices() []int {
	if p.consumed {
		return nil
	}
	return slices.Clone(p.indices)
}

// Apply rearranges items so that the new items[i] is the old
// items[p.Indices()[i]]. The permutation's storage is reused as scratch
// space, so p cannot be applied twice. It fails with ErrPermutation on a
// length mismatch or a consumed permutation, before moving anything.
func Apply[T any](p *Permutation, items []T) error {
	if p == nil || p.consumed {
		return fmt.Errorf("%w: already applied", ErrPermutation)
	}
	if len(p.indices) != len(items) {
		return fmt.Errorf("%w: %d positions for %d items", ErrPermutation, len(p.indices), len(items))
	}
	p.consumed = true

	order := p.indices
	for i := 0; i < len(order)-1; i++ {
		curr := i
		for {
			next := order[curr]
			// A slot pointing at itself is settled; this also stops later
			// starts from re-walking a closed cycle.
			order[curr] = curr
			if next == i {
				break
			}
			items[curr], items[next] = items[next], items[curr]
			curr = next
		}
	}
	return nil
}

// SortStable sorts items in place by key, keeping the relative order of
// items with equal keys.
func SortStable[T, K any](items []T, key func(T) K, compare func(a, b K) int) {
	// Order always yields a permutation of len(items).
	_ = Apply(Order(items, key, compare), items)
}
