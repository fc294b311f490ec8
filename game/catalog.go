package game

import (
	"fmt"
	"sort"
)

// CrossShipSize is the nine-cell cross ship, the only non-straight shape
// in the standard catalog.
const CrossShipSize = 9

// Catalog holds the canonical shape for every ship size in play. The two
// three-cell ships of the standard fleet share one canonical line.
type Catalog struct {
	shapes map[int]ShipShape
}

// NewCatalog returns the standard catalog: straight lines of length 2 to
// 5 plus the cross ship.
func NewCatalog() *Catalog {
	shapes := make(map[int]ShipShape, 5)
	for _, size := range []int{2, 3, 4, 5} {
		row := make([]bool, size)
		for i := range row {
			row[i] = true
		}
		shapes[size] = NewShipShape([][]bool{row})
	}
	shapes[CrossShipSize] = NewShipShape(crossShipCells())
	return &Catalog{shapes: shapes}
}

// crossShipCells lays out the cross ship: a central plus with four wing
// cells that touch the plus only diagonally.
//
//	X . X . X
//	. X X X .
//	X . X . X
func crossShipCells() [][]bool {
	const o, x = false, true
	return [][]bool{
		{x, o, x, o, x},
		{o, x, x, x, o},
		{x, o, x, o, x},
	}
}

// ShapeFor returns the canonical shape for size.
func (c *Catalog) ShapeFor(size int) (ShipShape, error) {
	shape, ok := c.shapes[size]
	if !ok {
		return ShipShape{}, fmt.Errorf("no ship of size %d in the catalog", size)
	}
	return shape, nil
}

// Sizes returns the catalog's ship sizes in ascending order.
func (c *Catalog) Sizes() []int {
	sizes := make([]int, 0, len(c.shapes))
	for size := range c.shapes {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}
