package board

import (
	"fmt"

	"golang.org/x/exp/rand"

	"seabattle/game"
	"seabattle/meta"
)

// hiddenShip is one ship of the simulated opponent: its cells and how many
// of them the agent has revealed so far.
type hiddenShip struct {
	size     int
	cells    []game.Position
	revealed int
}

func (s *hiddenShip) destroyed() bool { return s.revealed == s.size }

// LocalBoard simulates the opponent for offline play: it holds a randomly
// generated hidden fleet and reveals one cell per shot. Powers, when
// enabled, follow the match rules: at most one per match, reveal or
// destroy extra cells.
type LocalBoard struct {
	truth    *game.Grid[int] // ship index + 1, 0 for water
	ships    []*hiddenShip
	revealed *game.Grid[game.CellState]

	powersEnabled bool
	powerUsed     bool
	lastShotHit   bool
	cellsLeft     int
}

// NewLocalBoard generates a hidden board holding the given fleet. The
// random source drives ship placement, so a fixed seed reproduces the
// board exactly.
func NewLocalBoard(rows, cols int, fleet *game.Fleet, powers bool, rng *rand.Rand) (*LocalBoard, error) {
	ships, truth, err := placeFleet(rows, cols, fleet.Sizes(), rng)
	if err != nil {
		return nil, err
	}
	b := &LocalBoard{
		truth:         truth,
		ships:         ships,
		revealed:      game.NewGrid[game.CellState](rows, cols),
		powersEnabled: powers,
		cellsLeft:     fleet.TotalCells(),
	}
	return b, nil
}

func (b *LocalBoard) Observe() (game.Observation, error) {
	return game.Observation{
		Board:          b.revealed.Clone(),
		LastShotHit:    b.lastShotHit,
		PowerAvailable: b.powersEnabled && !b.powerUsed,
		PowerUsed:      b.powerUsed,
		Finished:       b.cellsLeft == 0,
	}, nil
}

func (b *LocalBoard) Fire(shot game.Shot) error {
	if b.cellsLeft == 0 {
		return fmt.Errorf("fired at a finished match")
	}
	if !b.revealed.InBounds(shot.Target) {
		return fmt.Errorf("shot %v is off the board", shot.Target)
	}
	if b.revealed.At(shot.Target) != game.CellUnknown {
		return fmt.Errorf("shot %v targets an already revealed cell", shot.Target)
	}
	if shot.Power != game.PowerNone {
		if err := b.applyPower(shot); err != nil {
			return err
		}
	}

	b.lastShotHit = b.reveal(shot.Target)
	return nil
}

func (b *LocalBoard) applyPower(shot game.Shot) error {
	if !b.powersEnabled {
		return fmt.Errorf("power %v used in a match without powers", shot.Power)
	}
	if b.powerUsed {
		return fmt.Errorf("power %v used twice in one match", shot.Power)
	}
	b.powerUsed = true

	switch shot.Power {
	case game.PowerRevealSmallest:
		if ship := b.smallestAfloat(); ship != nil {
			for _, p := range ship.cells {
				b.reveal(p)
			}
		}
	case game.PowerRevealArea:
		// The true state of the 3×3 block centered on the shot.
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				p := game.Position{Row: shot.Target.Row + dr, Col: shot.Target.Col + dc}
				if b.revealed.InBounds(p) {
					b.reveal(p)
				}
			}
		}
	case game.PowerDestroyShip:
		// Destroys whatever ship the shot itself hits; wasted on water.
		if index := b.truth.At(shot.Target); index > 0 {
			for _, p := range b.ships[index-1].cells {
				b.reveal(p)
			}
		}
	default:
		return fmt.Errorf("unknown power %v", shot.Power)
	}
	return nil
}

// reveal uncovers p and reports whether it held ship. Already revealed
// cells stay as they are.
func (b *LocalBoard) reveal(p game.Position) bool {
	index := b.truth.At(p)
	if b.revealed.At(p) != game.CellUnknown {
		return index > 0
	}
	if index == 0 {
		b.revealed.Set(p, game.CellWater)
		return false
	}
	b.revealed.Set(p, game.CellShip)
	b.ships[index-1].revealed++
	b.cellsLeft--
	return true
}

func (b *LocalBoard) smallestAfloat() *hiddenShip {
	var smallest *hiddenShip
	for _, ship := range b.ships {
		if ship.destroyed() {
			continue
		}
		if smallest == nil || ship.size < smallest.size {
			smallest = ship
		}
	}
	return smallest
}

// placeFleet drops every fleet shape on an empty board, largest first so
// the bulky ships get space before the board fills up. Ships never touch,
// not even diagonally. Placement is retried up to meta.PLACEMENT_TRIES
// times per ship before giving up on the whole board.
func placeFleet(rows, cols int, sizes []int, rng *rand.Rand) ([]*hiddenShip, *game.Grid[int], error) {
	catalog := game.NewCatalog()
	truth := game.NewGrid[int](rows, cols)
	blocked := game.NewGrid[bool](rows, cols)

	ships := make([]*hiddenShip, 0, len(sizes))
	for i := len(sizes) - 1; i >= 0; i-- {
		size := sizes[i]
		shape, err := catalog.ShapeFor(size)
		if err != nil {
			return nil, nil, err
		}
		cells, err := placeShip(truth, blocked, shape, len(ships)+1, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("placing ship of size %d: %w", size, err)
		}
		ships = append(ships, &hiddenShip{size: size, cells: cells})
	}
	return ships, truth, nil
}

func placeShip(truth *game.Grid[int], blocked *game.Grid[bool], shape game.ShipShape, index int, rng *rand.Rand) ([]game.Position, error) {
	for try := 0; try < meta.PLACEMENT_TRIES; try++ {
		oriented := shape
		if rng.Intn(2) == 1 {
			oriented = shape.Rotate()
		}
		maxRow := truth.Rows() - oriented.Height()
		maxCol := truth.Cols() - oriented.Width()
		if maxRow < 0 || maxCol < 0 {
			continue
		}
		anchor := game.Position{Row: rng.Intn(maxRow + 1), Col: rng.Intn(maxCol + 1)}

		cells := make([]game.Position, 0, oriented.Size())
		fits := true
		for _, off := range oriented.Offsets() {
			p := game.Position{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}
			if blocked.At(p) {
				fits = false
				break
			}
			cells = append(cells, p)
		}
		if !fits {
			continue
		}

		for _, p := range cells {
			truth.Set(p, index)
			blocked.Set(p, true)
			for n := range truth.AllAroundNeighbors(p) {
				blocked.Set(n, true)
			}
		}
		return cells, nil
	}
	return nil, fmt.Errorf("no room left after %d tries", meta.PLACEMENT_TRIES)
}
