package game

// ShipShape is one orientation of a ship as an occupancy matrix over its
// bounding box. Shapes are immutable; Rotate returns a new shape.
type ShipShape struct {
	cells [][]bool
	size  int
}

// NewShipShape copies the given occupancy matrix. Panics on empty or
// ragged input, or when no cell is occupied.
func NewShipShape(cells [][]bool) ShipShape {
	if len(cells) == 0 || len(cells[0]) == 0 {
		panic("ship shape must not be empty")
	}
	width := len(cells[0])
	copied := make([][]bool, len(cells))
	size := 0
	for r, row := range cells {
		if len(row) != width {
			panic("ship shape rows must have equal width")
		}
		copied[r] = make([]bool, width)
		copy(copied[r], row)
		for _, occupied := range row {
			if occupied {
				size++
			}
		}
	}
	if size == 0 {
		panic("ship shape must occupy at least one cell")
	}
	return ShipShape{cells: copied, size: size}
}

func (s ShipShape) Height() int { return len(s.cells) }
func (s ShipShape) Width() int  { return len(s.cells[0]) }

// Size returns the number of occupied cells.
func (s ShipShape) Size() int { return s.size }

// OccupiedAt reports whether the shape covers cell (row, col) of its
// bounding box.
func (s ShipShape) OccupiedAt(row, col int) bool {
	return s.cells[row][col]
}

// Offsets returns the occupied cells as offsets from the bounding box
// origin, in row-major order.
func (s ShipShape) Offsets() []Position {
	offsets := make([]Position, 0, s.size)
	for r, row := range s.cells {
		for c, occupied := range row {
			if occupied {
				offsets = append(offsets, Position{Row: r, Col: c})
			}
		}
	}
	return offsets
}

// Rotate returns the shape transposed. Rotating twice restores the
// original, so a shape has at most two distinct orientations.
func (s ShipShape) Rotate() ShipShape {
	height, width := s.Height(), s.Width()
	rotated := make([][]bool, width)
	for r := 0; r < width; r++ {
		rotated[r] = make([]bool, height)
		for c := 0; c < height; c++ {
			rotated[r][c] = s.cells[c][r]
		}
	}
	return ShipShape{cells: rotated, size: s.size}
}

// Equal reports whether two shapes occupy the same cells.
func (s ShipShape) Equal(o ShipShape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// LongestRun returns the longest horizontal or vertical run of occupied
// cells anywhere in the shape.
func (s ShipShape) LongestRun() int {
	longest := 0
	for r := range s.cells {
		run := 0
		for c := range s.cells[r] {
			if s.cells[r][c] {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
	}
	for c := 0; c < s.Width(); c++ {
		run := 0
		for r := 0; r < s.Height(); r++ {
			if s.cells[r][c] {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
	}
	return longest
}
