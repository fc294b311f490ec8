package strategy

import (
	"seabattle/game"
	"seabattle/utils"
)

// Orientation is the line direction of the ship being hunted, inferred
// from its hits.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Session tracks the hunt for one ship: the hits attributed to it in
// discovery order plus a FIFO queue of cells still worth trying after a
// miss. A session outlives single turns and is cleared when its ship is
// confirmed sunk.
type Session struct {
	hits   []game.Position
	member map[game.Position]bool
	queue  []game.Position
}

func NewSession() *Session {
	return &Session{member: make(map[game.Position]bool)}
}

// Active reports whether any hit is attributed to the session.
func (s *Session) Active() bool { return len(s.hits) > 0 }

// HitCount returns the number of attributed hits.
func (s *Session) HitCount() int { return len(s.hits) }

// Hits returns the attributed hits in discovery order.
func (s *Session) Hits() []game.Position {
	out := make([]game.Position, len(s.hits))
	copy(out, s.hits)
	return out
}

// Contains reports whether p is already attributed to the session.
func (s *Session) Contains(p game.Position) bool { return s.member[p] }

// Pending returns the number of queued candidate cells.
func (s *Session) Pending() int { return len(s.queue) }

// AddHit attributes a confirmed Ship cell to the session. Duplicates are
// dropped, so replaying an observation is harmless.
func (s *Session) AddHit(p game.Position) {
	if s.member[p] {
		return
	}
	s.member[p] = true
	s.hits = append(s.hits, p)
}

// Clear resets the session to idle after its ship sank.
func (s *Session) Clear() {
	s.hits = nil
	s.member = make(map[game.Position]bool)
	s.queue = nil
}

// Absorb flood-fills revealed Ship cells cross-connected to the current
// hits, skipping cells already attributed to a sunk ship. A power can
// uncover several ship cells at once; after absorbing, the session owns
// the whole connected island.
func (s *Session) Absorb(board *game.Grid[game.CellState], sunk *Registry) {
	frontier := append([]game.Position(nil), s.hits...)
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		for n := range board.CrossNeighbors(p) {
			if board.At(n) != game.CellShip || s.member[n] || sunk.Contains(n) {
				continue
			}
			s.AddHit(n)
			frontier = append(frontier, n)
		}
	}
}

// Orientation infers the hunted ship's line direction. A single hit, or
// hits that do not share a row or column, give Unknown.
func (s *Session) Orientation() Orientation {
	if len(s.hits) < 2 {
		return OrientationUnknown
	}
	sameRow, sameCol := true, true
	for _, h := range s.hits[1:] {
		sameRow = sameRow && h.Row == s.hits[0].Row
		sameCol = sameCol && h.Col == s.hits[0].Col
	}
	switch {
	case sameRow:
		return OrientationHorizontal
	case sameCol:
		return OrientationVertical
	default:
		return OrientationUnknown
	}
}

// Propose picks the next cell to shoot at. After a miss the queue is
// drained first; otherwise fresh candidates are derived from the hits:
// the extensions of the hit line when the orientation is known, then the
// Unknown cross-neighbors of the newest hit, then of every earlier hit.
// The first candidate is returned, the rest are queued. ok is false when
// the session has nothing left to try.
func (s *Session) Propose(board *game.Grid[game.CellState], lastWasHit bool) (game.Position, bool) {
	if !lastWasHit {
		if p, ok := s.dequeue(board); ok {
			return p, true
		}
	}
	candidates := s.lineExtensions(board)
	if len(candidates) == 0 {
		candidates = s.neighborCandidates(board)
	}
	if len(candidates) == 0 {
		return game.Position{}, false
	}
	s.queue = append(s.queue, candidates[1:]...)
	return candidates[0], true
}

// dequeue pops queued candidates until one is still Unknown. Cells
// revealed since they were queued are silently discarded.
func (s *Session) dequeue(board *game.Grid[game.CellState]) (game.Position, bool) {
	for len(s.queue) > 0 {
		p := s.queue[0]
		s.queue = s.queue[1:]
		if board.At(p) == game.CellUnknown {
			return p, true
		}
	}
	return game.Position{}, false
}

// lineExtensions returns the Unknown cells just beyond both ends of the
// hit line, low coordinate first. Nil when no orientation is known.
func (s *Session) lineExtensions(board *game.Grid[game.CellState]) []game.Position {
	var ends [2]game.Position
	switch s.Orientation() {
	case OrientationHorizontal:
		row := s.hits[0].Row
		minCol, maxCol := s.hits[0].Col, s.hits[0].Col
		for _, h := range s.hits[1:] {
			minCol = utils.Min(minCol, h.Col)
			maxCol = utils.Max(maxCol, h.Col)
		}
		ends[0] = game.Position{Row: row, Col: minCol - 1}
		ends[1] = game.Position{Row: row, Col: maxCol + 1}
	case OrientationVertical:
		col := s.hits[0].Col
		minRow, maxRow := s.hits[0].Row, s.hits[0].Row
		for _, h := range s.hits[1:] {
			minRow = utils.Min(minRow, h.Row)
			maxRow = utils.Max(maxRow, h.Row)
		}
		ends[0] = game.Position{Row: minRow - 1, Col: col}
		ends[1] = game.Position{Row: maxRow + 1, Col: col}
	default:
		return nil
	}
	var out []game.Position
	for _, p := range ends {
		if board.InBounds(p) && board.At(p) == game.CellUnknown {
			out = append(out, p)
		}
	}
	return out
}

// neighborCandidates returns the Unknown cross-neighbors of the hits,
// newest hit first, then the earlier hits in discovery order, without
// duplicates.
func (s *Session) neighborCandidates(board *game.Grid[game.CellState]) []game.Position {
	if len(s.hits) == 0 {
		return nil
	}
	seen := make(map[game.Position]bool)
	var out []game.Position
	collect := func(h game.Position) {
		for n := range board.CrossNeighbors(h) {
			if board.At(n) == game.CellUnknown && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	collect(s.hits[len(s.hits)-1])
	for _, h := range s.hits[:len(s.hits)-1] {
		collect(h)
	}
	return out
}
