package game

import "fmt"

// ParseBoard decodes a board from its fixed-length symbol string, one
// symbol per cell in row-major order.
func ParseBoard(rows, cols int, encoded string) (*Grid[CellState], error) {
	if len(encoded) != rows*cols {
		return nil, fmt.Errorf("board encoding has %d symbols, want %d", len(encoded), rows*cols)
	}
	board := NewGrid[CellState](rows, cols)
	for i := 0; i < len(encoded); i++ {
		state, err := ParseCellState(encoded[i])
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", board.PositionAt(i), err)
		}
		board.cells[i] = state
	}
	return board, nil
}

// EncodeBoard is the inverse of ParseBoard.
func EncodeBoard(board *Grid[CellState]) string {
	buf := make([]byte, board.Len())
	for i, state := range board.cells {
		buf[i] = state.Symbol()
	}
	return string(buf)
}

// Reveal records a known state for p. Unknown never overwrites a known
// value and a known cell never changes, so replaying the same updates in
// any order converges on the same board.
func Reveal(board *Grid[CellState], p Position, state CellState) {
	if state == CellUnknown {
		return
	}
	if board.At(p) != CellUnknown {
		return
	}
	board.Set(p, state)
}

// Merge folds every known cell of src into dst. Panics when the grids have
// different dimensions.
func Merge(dst, src *Grid[CellState]) {
	if dst.rows != src.rows || dst.cols != src.cols {
		panic(fmt.Sprintf("cannot merge %dx%d board into %dx%d board", src.rows, src.cols, dst.rows, dst.cols))
	}
	for i, state := range src.cells {
		if state != CellUnknown && dst.cells[i] == CellUnknown {
			dst.cells[i] = state
		}
	}
}

// CountUnknown returns the number of cells not yet revealed.
func CountUnknown(board *Grid[CellState]) int {
	count := 0
	for _, state := range board.cells {
		if state == CellUnknown {
			count++
		}
	}
	return count
}
