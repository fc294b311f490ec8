package game

import "fmt"

// CellState is the agent's knowledge about one board cell. Cells start
// Unknown and only ever move to Water or Ship; a known cell never changes
// again.
type CellState uint8

const (
	CellUnknown CellState = iota
	CellWater
	CellShip
)

// Wire symbols for the three cell states.
const (
	SymbolUnknown byte = '?'
	SymbolWater   byte = '.'
	SymbolShip    byte = 'X'
)

func (c CellState) String() string {
	switch c {
	case CellUnknown:
		return "unknown"
	case CellWater:
		return "water"
	case CellShip:
		return "ship"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(c))
	}
}

// Symbol returns the wire symbol for c.
func (c CellState) Symbol() byte {
	switch c {
	case CellWater:
		return SymbolWater
	case CellShip:
		return SymbolShip
	default:
		return SymbolUnknown
	}
}

// ParseCellState maps a wire symbol back to its state.
func ParseCellState(symbol byte) (CellState, error) {
	switch symbol {
	case SymbolUnknown:
		return CellUnknown, nil
	case SymbolWater:
		return CellWater, nil
	case SymbolShip:
		return CellShip, nil
	default:
		return CellUnknown, fmt.Errorf("unknown board symbol %q", symbol)
	}
}

// Position addresses one board cell. Row 0 is the top row, column 0 the
// leftmost column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Power is one of the once-per-match special abilities.
type Power int

const (
	PowerNone Power = iota
	PowerRevealSmallest
	PowerRevealArea
	PowerDestroyShip
)

func (p Power) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerRevealSmallest:
		return "reveal-smallest"
	case PowerRevealArea:
		return "reveal-area"
	case PowerDestroyShip:
		return "destroy-ship"
	default:
		return fmt.Sprintf("Power(%d)", int(p))
	}
}

// ParsePower is the inverse of String.
func ParsePower(s string) (Power, error) {
	switch s {
	case "none", "":
		return PowerNone, nil
	case "reveal-smallest":
		return PowerRevealSmallest, nil
	case "reveal-area":
		return PowerRevealArea, nil
	case "destroy-ship":
		return PowerDestroyShip, nil
	default:
		return PowerNone, fmt.Errorf("unknown power %q", s)
	}
}

// Shot is one turn's decision: the cell to reveal and the power to spend
// alongside it, if any.
type Shot struct {
	Target Position
	Power  Power
}

// Observation is the snapshot of the match handed to the agent each turn.
// The board grid is the agent's copy to keep; the opponent never mutates
// it afterwards.
type Observation struct {
	Board          *Grid[CellState]
	LastShotHit    bool
	PowerAvailable bool
	PowerUsed      bool
	Finished       bool
}
