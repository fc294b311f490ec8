package strategy

import (
	"golang.org/x/exp/rand"

	"seabattle/game"
)

// Estimator scores every Unknown cell by how promising a blind shot at it
// is. Higher is better; revealed cells must score zero.
type Estimator interface {
	Surface(board *game.Grid[game.CellState], fleet *game.Fleet) *game.Grid[int]
}

// PlacementCounter estimates by brute enumeration: every legal placement
// of every remaining ship adds one point to each cell it covers. Cells
// covered by many placements are the likeliest to hold a ship.
type PlacementCounter struct {
	catalog *game.Catalog
}

func NewPlacementCounter() *PlacementCounter {
	return &PlacementCounter{catalog: game.NewCatalog()}
}

func (e *PlacementCounter) Surface(board *game.Grid[game.CellState], fleet *game.Fleet) *game.Grid[int] {
	surface := game.NewGrid[int](board.Rows(), board.Cols())
	for _, size := range fleet.Sizes() {
		shape, err := e.catalog.ShapeFor(size)
		if err != nil {
			panic(err) // the fleet holds a size the catalog cannot place
		}
		countPlacements(surface, board, shape)
		rotated := shape.Rotate()
		if !rotated.Equal(shape) {
			countPlacements(surface, board, rotated)
		}
	}
	return surface
}

func countPlacements(surface *game.Grid[int], board *game.Grid[game.CellState], shape game.ShipShape) {
	offsets := shape.Offsets()
	for anchor := range board.Positions() {
		if !fits(board, offsets, anchor) {
			continue
		}
		for _, off := range offsets {
			p := game.Position{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}
			surface.Set(p, surface.At(p)+1)
		}
	}
}

// fits reports whether a placement anchored at the bounding box origin
// keeps every occupied cell in bounds and on Unknown water.
func fits(board *game.Grid[game.CellState], offsets []game.Position, anchor game.Position) bool {
	for _, off := range offsets {
		p := game.Position{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}
		if !board.InBounds(p) || board.At(p) != game.CellUnknown {
			return false
		}
	}
	return true
}

// RandomSurface scores Unknown cells uniformly at random. It exists as the
// baseline search policy for experiments; the randomness is injected so
// runs stay reproducible.
type RandomSurface struct {
	rng *rand.Rand
}

func NewRandomSurface(rng *rand.Rand) *RandomSurface {
	if rng == nil {
		panic("Must provide a random source")
	}
	return &RandomSurface{rng: rng}
}

func (e *RandomSurface) Surface(board *game.Grid[game.CellState], _ *game.Fleet) *game.Grid[int] {
	surface := game.NewGrid[int](board.Rows(), board.Cols())
	for p := range board.Positions() {
		if board.At(p) == game.CellUnknown {
			surface.Set(p, 1+e.rng.Intn(board.Len()))
		}
	}
	return surface
}
