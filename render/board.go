package render

import (
	"fmt"
	"strings"

	"seabattle/game"
)

// BoardString renders the agent's knowledge grid as fixed-width ASCII with
// row and column headers, one symbol per cell.
func BoardString(board *game.Grid[game.CellState]) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < board.Cols(); col++ {
		fmt.Fprintf(&sb, "%2d ", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < board.Rows(); row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < board.Cols(); col++ {
			state := board.At(game.Position{Row: row, Col: col})
			fmt.Fprintf(&sb, " %c ", state.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SurfaceString renders a probability surface with one right-aligned count
// per cell, for log output.
func SurfaceString(surface *game.Grid[int]) string {
	max := 0
	for p := range surface.Positions() {
		if v := surface.At(p); v > max {
			max = v
		}
	}
	width := len(fmt.Sprint(max)) + 1

	var sb strings.Builder
	for row := 0; row < surface.Rows(); row++ {
		for col := 0; col < surface.Cols(); col++ {
			fmt.Fprintf(&sb, "%*d", width, surface.At(game.Position{Row: row, Col: col}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
