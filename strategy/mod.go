package strategy

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"seabattle/game"
)

// Mode is the controller's top-level state: blind search across the whole
// board, or targeted destruction of a ship already found.
type Mode int

const (
	ModeSearching Mode = iota
	ModeTargeting
)

func (m Mode) String() string {
	switch m {
	case ModeTargeting:
		return "targeting"
	default:
		return "searching"
	}
}

var (
	// ErrMatchFinished is returned when Decide is called although the
	// observation reports the match over, or the agent's own inventory
	// says every ship already sank.
	ErrMatchFinished = errors.New("match already finished")

	// ErrNoCandidate is returned when no heuristic produced a target.
	// With Unknown cells still on the board it points at an internal
	// reasoning bug; without any it means the caller should have stopped.
	ErrNoCandidate = errors.New("no candidate cell found")
)

// SurfaceObserver receives the probability surface each time it is
// recomputed, for visualization. The grid is the observer's to keep.
type SurfaceObserver func(surface *game.Grid[int])

// Option configures a Strategy at construction.
type Option func(s *Strategy)

func WithEstimator(estimator Estimator) Option {
	return func(s *Strategy) {
		if estimator != nil {
			s.estimator = estimator
		}
	}
}

func WithDetector(detector SunkDetector) Option {
	return func(s *Strategy) {
		if detector != nil {
			s.detector = detector
		}
	}
}

func WithAdvisor(advisor PowerAdvisor) Option {
	return func(s *Strategy) {
		if advisor != nil {
			s.advisor = advisor
		}
	}
}

func WithSurfaceObserver(observer SurfaceObserver) Option {
	return func(s *Strategy) {
		s.observer = observer
	}
}

// Strategy is the decision engine for one match: it consumes one
// observation per turn and emits the next cell to shoot at. One instance
// per match, driven by a single goroutine; all state lives here and dies
// with the match.
type Strategy struct {
	estimator Estimator
	detector  SunkDetector
	advisor   PowerAdvisor
	observer  SurfaceObserver

	board   *game.Grid[game.CellState]
	fleet   *game.Fleet
	session *Session
	sunk    *Registry

	mode      Mode
	lastShot  game.Position
	shotFired bool
}

// New builds a strategy for one match on a rows×cols board hunting the
// given fleet. The fleet is owned by the strategy afterwards.
func New(rows, cols int, fleet *game.Fleet, options ...Option) *Strategy {
	s := &Strategy{
		estimator: NewPlacementCounter(),
		detector:  NewLineCrossDetector(),
		advisor:   NewThresholdAdvisor(),
		board:     game.NewGrid[game.CellState](rows, cols),
		fleet:     fleet,
		session:   NewSession(),
		sunk:      NewRegistry(),
		mode:      ModeSearching,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Mode returns the controller state chosen on the last Decide call.
func (s *Strategy) Mode() Mode { return s.mode }

// Fleet returns the strategy's remaining-ship inventory.
func (s *Strategy) Fleet() *game.Fleet { return s.fleet }

// Decide consumes the turn's observation and picks the next shot. The
// returned target is always an Unknown cell of the observed board.
func (s *Strategy) Decide(obs game.Observation) (game.Shot, error) {
	if obs.Finished || s.fleet.Empty() {
		return game.Shot{}, ErrMatchFinished
	}
	if obs.Board == nil {
		return game.Shot{}, fmt.Errorf("observation carries no board")
	}

	game.Merge(s.board, obs.Board)
	s.digest(obs.LastShotHit)
	if s.fleet.Empty() {
		// The previous shot sank the last ship; the opponent just has
		// not told us yet.
		return game.Shot{}, ErrMatchFinished
	}

	s.mode = ModeSearching
	if s.session.Active() || s.session.Pending() > 0 {
		s.mode = ModeTargeting
	}

	target, ok := s.pickTarget(obs.LastShotHit)
	if !ok {
		return game.Shot{}, ErrNoCandidate
	}
	if s.board.At(target) != game.CellUnknown {
		panic(fmt.Sprintf("proposed already revealed cell %v", target))
	}

	shot := game.Shot{Target: target}
	if obs.PowerAvailable && !obs.PowerUsed {
		unknown := float64(game.CountUnknown(s.board)) / float64(s.board.Len())
		shot.Power = s.advisor.Advise(s.mode, s.session, s.fleet, unknown)
	}

	s.lastShot = target
	s.shotFired = true
	return shot, nil
}

// digest folds the previous shot's outcome and every freshly revealed
// cell into the hunt state, and settles any ship this evidence sinks.
func (s *Strategy) digest(lastShotHit bool) {
	if s.shotFired && lastShotHit {
		s.session.AddHit(s.lastShot)
	}
	s.claimIsland()

	for s.session.HitCount() >= 2 && s.detector.Confirmed(s.session, s.board, s.fleet) {
		s.sink()
		// A power may have revealed another island; claim it right away
		// so this turn already hunts it.
		s.claimIsland()
	}
}

// claimIsland attributes revealed Ship cells to the session: first the
// cells connected to existing hits, then, when the session is idle, the
// first still unowned Ship cell on the board.
func (s *Strategy) claimIsland() {
	s.session.Absorb(s.board, s.sunk)
	if s.session.Active() {
		return
	}
	for p := range s.board.Positions() {
		if s.board.At(p) == game.CellShip && !s.sunk.Contains(p) {
			s.session.AddHit(p)
			s.session.Absorb(s.board, s.sunk)
			return
		}
	}
}

// sink retires the hunted ship: its size leaves the inventory, every
// Unknown cell around it becomes Water (ships never touch), its cells move
// to the sunk registry and the session resets.
func (s *Strategy) sink() {
	hits := s.session.Hits()
	log.Info().Msgf("ship of size %d sunk at %v", len(hits), hits)

	s.fleet.Remove(len(hits))
	for _, h := range hits {
		for n := range s.board.AllAroundNeighbors(h) {
			if s.board.At(n) == game.CellUnknown {
				s.board.Set(n, game.CellWater)
			}
		}
	}
	s.sunk.Add(hits...)
	s.session.Clear()
}

// pickTarget runs the mode's heuristic ladder: the session proposes while
// targeting, and search by probability surface is the fallback for both
// modes.
func (s *Strategy) pickTarget(lastShotHit bool) (game.Position, bool) {
	if s.mode == ModeTargeting {
		if p, ok := s.session.Propose(s.board, lastShotHit); ok {
			return p, true
		}
		log.Warn().Msgf("session with hits %v cannot extend, falling back to search", s.session.Hits())
		s.mode = ModeSearching
	}
	return s.search()
}

// search ranks Unknown cells by the probability surface and returns the
// best one, first in row-major order on ties.
func (s *Strategy) search() (game.Position, bool) {
	surface := s.estimator.Surface(s.board, s.fleet)
	if s.observer != nil {
		s.observer(surface)
	}

	var best game.Position
	bestScore, found := -1, false
	for p := range s.board.Positions() {
		if s.board.At(p) != game.CellUnknown {
			continue
		}
		if score := surface.At(p); score > bestScore {
			best, bestScore, found = p, score, true
		}
	}
	return best, found
}
