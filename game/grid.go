package game

import (
	"fmt"
	"iter"
)

// Grid is a rows×cols board addressed by Position, stored row-major. Each
// grid owns its backing slice exclusively. The zero value is unusable;
// construct with NewGrid.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", rows, cols))
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

func (g *Grid[T]) Rows() int { return g.rows }
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p addresses a cell of g.
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the value at p. Panics when p is out of bounds.
func (g *Grid[T]) At(p Position) T {
	g.mustContain(p)
	return g.cells[g.Index(p)]
}

// Set stores v at p. Panics when p is out of bounds.
func (g *Grid[T]) Set(p Position, v T) {
	g.mustContain(p)
	g.cells[g.Index(p)] = v
}

// Index maps p to its row-major linear index.
func (g *Grid[T]) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionAt inverts Index. Panics when i is out of range.
func (g *Grid[T]) PositionAt(i int) Position {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("index %d outside %dx%d grid", i, g.rows, g.cols))
	}
	return Position{Row: i / g.cols, Col: i % g.cols}
}

// AtIndex returns the value at linear index i.
func (g *Grid[T]) AtIndex(i int) T {
	return g.cells[i]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

func (g *Grid[T]) mustContain(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("position %v outside %dx%d grid", p, g.rows, g.cols))
	}
}

var (
	crossOffsets    = [4]Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	diagonalOffsets = [4]Position{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
)

// Positions yields every position of g in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.cols; col++ {
				if !yield(Position{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// CrossNeighbors yields the in-bounds orthogonal neighbors of p in a fixed
// order: up, down, left, right. The sequence is restartable.
func (g *Grid[T]) CrossNeighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range crossOffsets {
			n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// AllAroundNeighbors yields up to eight in-bounds neighbors of p: the
// orthogonal ones first, then the diagonals.
func (g *Grid[T]) AllAroundNeighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range crossOffsets {
			n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
		for _, d := range diagonalOffsets {
			n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}
