package strategy

import (
	"seabattle/game"
	"seabattle/utils"
)

// SunkDetector decides whether the session's hits amount to a destroyed
// ship. Detection is heuristic: it must never confirm while the evidence
// could still belong to a larger ship.
type SunkDetector interface {
	Confirmed(session *Session, board *game.Grid[game.CellState], fleet *game.Fleet) bool
}

// LineCrossDetector is the standard detector. Straight ships are confirmed
// by caps or encirclement; the nine-cell cross ship makes a straight run
// of its arm length ambiguous, which the perpendicular of the run midpoint
// resolves.
type LineCrossDetector struct {
	orientations [2]game.ShipShape
	crossArm     int
}

func NewLineCrossDetector() *LineCrossDetector {
	cross, err := game.NewCatalog().ShapeFor(game.CrossShipSize)
	if err != nil {
		panic(err)
	}
	return &LineCrossDetector{
		orientations: [2]game.ShipShape{cross, cross.Rotate()},
		crossArm:     cross.LongestRun(),
	}
}

func (d *LineCrossDetector) Confirmed(session *Session, board *game.Grid[game.CellState], fleet *game.Fleet) bool {
	hits := session.Hits()
	if len(hits) < 2 {
		return false
	}

	// Nothing bigger is afloat, so the hits explain themselves.
	if len(hits) == fleet.Max() {
		return true
	}

	if run, ok := straightRun(hits); ok {
		if !d.blockedBeyond(run.before(), board) || !d.blockedBeyond(run.after(), board) {
			return false
		}
		if fleet.Has(game.CrossShipSize) && run.length() == d.crossArm && d.crossCouldExplain(hits, board) {
			return d.midpointRulesOutCross(run, board)
		}
		return true
	}

	if d.surrounded(hits, board) {
		// The hits may still be a fragment of the cross ship whose wings
		// are only diagonal neighbors, which encirclement cannot see.
		if fleet.Has(game.CrossShipSize) && d.crossCouldExplain(hits, board) {
			return false
		}
		return true
	}
	return false
}

// surrounded reports whether every cross-neighbor of every hit is already
// known, leaving the ship nowhere to continue.
func (d *LineCrossDetector) surrounded(hits []game.Position, board *game.Grid[game.CellState]) bool {
	for _, h := range hits {
		for n := range board.CrossNeighbors(h) {
			if board.At(n) == game.CellUnknown {
				return false
			}
		}
	}
	return true
}

// blockedBeyond reports whether p cannot hold the hunted ship's next cell:
// off the board or already revealed. A revealed Ship cell beyond an end
// would have been absorbed into the session, so revealed means Water here.
func (d *LineCrossDetector) blockedBeyond(p game.Position, board *game.Grid[game.CellState]) bool {
	return !board.InBounds(p) || board.At(p) != game.CellUnknown
}

// crossCouldExplain reports whether some placement of the cross ship could
// still own every hit: all hits on occupied cells and no occupied cell
// known to be Water.
func (d *LineCrossDetector) crossCouldExplain(hits []game.Position, board *game.Grid[game.CellState]) bool {
	for _, shape := range d.orientations {
		for row := 0; row <= board.Rows()-shape.Height(); row++ {
			for col := 0; col <= board.Cols()-shape.Width(); col++ {
				if placementCovers(board, shape, game.Position{Row: row, Col: col}, hits) {
					return true
				}
			}
		}
	}
	return false
}

func placementCovers(board *game.Grid[game.CellState], shape game.ShipShape, anchor game.Position, hits []game.Position) bool {
	for _, hit := range hits {
		r, c := hit.Row-anchor.Row, hit.Col-anchor.Col
		if r < 0 || r >= shape.Height() || c < 0 || c >= shape.Width() || !shape.OccupiedAt(r, c) {
			return false
		}
	}
	for _, off := range shape.Offsets() {
		p := game.Position{Row: anchor.Row + off.Row, Col: anchor.Col + off.Col}
		if board.At(p) == game.CellWater {
			return false
		}
	}
	return true
}

// midpointRulesOutCross settles the line/cross ambiguity for a capped
// straight run. Were the run the cross ship's mid-line, both cells
// perpendicular to its midpoint would hold ship; Water or the board edge
// there rules the cross out and the run is a sunk straight ship. While
// both perpendicular cells stay Unknown the hunt continues.
func (d *LineCrossDetector) midpointRulesOutCross(r hitRun, board *game.Grid[game.CellState]) bool {
	mid := r.midpoint()
	var sides [2]game.Position
	if r.horizontal {
		sides[0] = game.Position{Row: mid.Row - 1, Col: mid.Col}
		sides[1] = game.Position{Row: mid.Row + 1, Col: mid.Col}
	} else {
		sides[0] = game.Position{Row: mid.Row, Col: mid.Col - 1}
		sides[1] = game.Position{Row: mid.Row, Col: mid.Col + 1}
	}
	for _, p := range sides {
		if !board.InBounds(p) || board.At(p) == game.CellWater {
			return true
		}
	}
	return false
}

// hitRun is a gap-free straight line of hits.
type hitRun struct {
	horizontal bool
	fixed      int // the shared row (horizontal) or column (vertical)
	lo, hi     int // inclusive bounds on the varying axis
}

// straightRun reports the hits as one contiguous line, when they form one.
func straightRun(hits []game.Position) (hitRun, bool) {
	if len(hits) < 2 {
		return hitRun{}, false
	}
	sameRow, sameCol := true, true
	for _, h := range hits[1:] {
		sameRow = sameRow && h.Row == hits[0].Row
		sameCol = sameCol && h.Col == hits[0].Col
	}
	switch {
	case sameRow:
		lo, hi := hits[0].Col, hits[0].Col
		for _, h := range hits[1:] {
			lo, hi = utils.Min(lo, h.Col), utils.Max(hi, h.Col)
		}
		if hi-lo+1 != len(hits) {
			return hitRun{}, false
		}
		return hitRun{horizontal: true, fixed: hits[0].Row, lo: lo, hi: hi}, true
	case sameCol:
		lo, hi := hits[0].Row, hits[0].Row
		for _, h := range hits[1:] {
			lo, hi = utils.Min(lo, h.Row), utils.Max(hi, h.Row)
		}
		if hi-lo+1 != len(hits) {
			return hitRun{}, false
		}
		return hitRun{horizontal: false, fixed: hits[0].Col, lo: lo, hi: hi}, true
	}
	return hitRun{}, false
}

func (r hitRun) length() int { return r.hi - r.lo + 1 }

// before and after address the cells just beyond the run's two ends. They
// may be out of bounds.
func (r hitRun) before() game.Position {
	if r.horizontal {
		return game.Position{Row: r.fixed, Col: r.lo - 1}
	}
	return game.Position{Row: r.lo - 1, Col: r.fixed}
}

func (r hitRun) after() game.Position {
	if r.horizontal {
		return game.Position{Row: r.fixed, Col: r.hi + 1}
	}
	return game.Position{Row: r.hi + 1, Col: r.fixed}
}

// midpoint returns the central cell of the run, rounding down.
func (r hitRun) midpoint() game.Position {
	mid := (r.lo + r.hi) / 2
	if r.horizontal {
		return game.Position{Row: r.fixed, Col: mid}
	}
	return game.Position{Row: mid, Col: r.fixed}
}
