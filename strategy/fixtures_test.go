package strategy

import (
	"strings"

	"seabattle/game"
)

// boardFromRows builds a board from one string per row using the wire
// symbols: '?' unknown, '.' water, 'X' ship.
func boardFromRows(rows ...string) *game.Grid[game.CellState] {
	board, err := game.ParseBoard(len(rows), len(rows[0]), strings.Join(rows, ""))
	if err != nil {
		panic(err)
	}
	return board
}

// blankBoard is a rows×cols board with every cell Unknown.
func blankBoard(rows, cols int) *game.Grid[game.CellState] {
	return game.NewGrid[game.CellState](rows, cols)
}

// stubEstimator returns a fixed surface regardless of the board, letting
// controller tests steer the search decision.
type stubEstimator struct {
	surface *game.Grid[int]
}

func (s stubEstimator) Surface(board *game.Grid[game.CellState], fleet *game.Fleet) *game.Grid[int] {
	return s.surface
}

// uniformSurface scores every cell the same, so search falls back to
// row-major order.
func uniformSurface(rows, cols int) *game.Grid[int] {
	surface := game.NewGrid[int](rows, cols)
	surface.Fill(1)
	return surface
}

// sessionWithHits builds a session already owning the given hits.
func sessionWithHits(hits ...game.Position) *Session {
	session := NewSession()
	for _, h := range hits {
		session.AddHit(h)
	}
	return session
}
