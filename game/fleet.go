package game

import (
	"fmt"
	"sort"

	"seabattle/utils"
)

// Fleet is the multiset of ship sizes still afloat in one match. It only
// ever shrinks; sinking the last ship ends the match.
type Fleet struct {
	sizes []int
}

// NewFleet builds a fleet from the given sizes.
func NewFleet(sizes ...int) *Fleet {
	owned := make([]int, len(sizes))
	copy(owned, sizes)
	sort.Ints(owned)
	return &Fleet{sizes: owned}
}

// NewStandardFleet returns the ships a standard match starts with: one
// pair, two triples, a four, a five and the cross ship.
func NewStandardFleet() *Fleet {
	return NewFleet(2, 3, 3, 4, 5, CrossShipSize)
}

// Sizes returns a copy of the remaining sizes in ascending order.
func (f *Fleet) Sizes() []int {
	out := make([]int, len(f.sizes))
	copy(out, f.sizes)
	return out
}

func (f *Fleet) Empty() bool { return len(f.sizes) == 0 }

// Count returns the number of ships still afloat.
func (f *Fleet) Count() int { return len(f.sizes) }

// Has reports whether at least one ship of the given size remains.
func (f *Fleet) Has(size int) bool {
	return utils.FindIndex(f.sizes, size) >= 0
}

// Min returns the smallest remaining size, 0 for an empty fleet.
func (f *Fleet) Min() int {
	if len(f.sizes) == 0 {
		return 0
	}
	return f.sizes[0]
}

// Max returns the largest remaining size, 0 for an empty fleet.
func (f *Fleet) Max() int {
	if len(f.sizes) == 0 {
		return 0
	}
	return f.sizes[len(f.sizes)-1]
}

// TotalCells returns how many board cells the remaining ships cover.
func (f *Fleet) TotalCells() int {
	total := 0
	for _, size := range f.sizes {
		total += size
	}
	return total
}

// Remove discards one ship of the given size. A size that is not in the
// fleet means the sinking logic contradicted the inventory, which is a
// bug, so it panics.
func (f *Fleet) Remove(size int) {
	i := utils.FindIndex(f.sizes, size)
	if i < 0 {
		panic(fmt.Sprintf("no ship of size %d left to remove, remaining %v", size, f.sizes))
	}
	f.sizes = append(f.sizes[:i], f.sizes[i+1:]...)
}
