package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seabattle/game"
)

func TestDecideRefusesFinishedMatches(t *testing.T) {
	t.Run("observation says finished", func(t *testing.T) {
		strat := New(12, 12, game.NewStandardFleet())

		_, err := strat.Decide(game.Observation{Board: blankBoard(12, 12), Finished: true})

		require.ErrorIs(t, err, ErrMatchFinished)
	})

	t.Run("own inventory is empty", func(t *testing.T) {
		strat := New(12, 12, game.NewFleet())

		_, err := strat.Decide(game.Observation{Board: blankBoard(12, 12)})

		require.ErrorIs(t, err, ErrMatchFinished)
	})
}

func TestDecideSearch(t *testing.T) {
	t.Run("picks the highest scoring unknown cell", func(t *testing.T) {
		surface := game.NewGrid[int](3, 3)
		surface.Set(game.Position{Row: 1, Col: 2}, 9)
		strat := New(3, 3, game.NewFleet(2), WithEstimator(stubEstimator{surface: surface}))

		shot, err := strat.Decide(game.Observation{Board: blankBoard(3, 3)})

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 1, Col: 2}, shot.Target)
		require.Equal(t, ModeSearching, strat.Mode())
	})

	t.Run("breaks ties in row-major order", func(t *testing.T) {
		strat := New(3, 3, game.NewFleet(2), WithEstimator(stubEstimator{surface: uniformSurface(3, 3)}))

		shot, err := strat.Decide(game.Observation{Board: blankBoard(3, 3)})

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 0}, shot.Target)
	})

	t.Run("never proposes a revealed cell whatever the surface says", func(t *testing.T) {
		surface := game.NewGrid[int](2, 2)
		surface.Set(game.Position{Row: 0, Col: 0}, 50)
		surface.Set(game.Position{Row: 1, Col: 1}, 3)
		board := boardFromRows(
			".?",
			"??",
		)
		strat := New(2, 2, game.NewFleet(2), WithEstimator(stubEstimator{surface: surface}))

		shot, err := strat.Decide(game.Observation{Board: board})

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 1, Col: 1}, shot.Target)
	})

	t.Run("errors when no unknown cell remains", func(t *testing.T) {
		board := boardFromRows(
			"..",
			"..",
		)
		strat := New(2, 2, game.NewFleet(2), WithEstimator(stubEstimator{surface: uniformSurface(2, 2)}))

		_, err := strat.Decide(game.Observation{Board: board})

		require.ErrorIs(t, err, ErrNoCandidate)
	})

	t.Run("reports the surface to the observer", func(t *testing.T) {
		var seen *game.Grid[int]
		strat := New(3, 3, game.NewFleet(2), WithSurfaceObserver(func(surface *game.Grid[int]) { seen = surface }))

		_, err := strat.Decide(game.Observation{Board: blankBoard(3, 3)})

		require.NoError(t, err)
		require.NotNil(t, seen)
		require.Equal(t, 3, seen.Rows())
	})
}

func TestDecideTargeting(t *testing.T) {
	t.Run("a hit flips the controller into targeting", func(t *testing.T) {
		strat := New(3, 3, game.NewFleet(2, 3), WithEstimator(stubEstimator{surface: uniformSurface(3, 3)}))

		first, err := strat.Decide(game.Observation{Board: blankBoard(3, 3)})
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 0}, first.Target)

		board := blankBoard(3, 3)
		board.Set(first.Target, game.CellShip)
		second, err := strat.Decide(game.Observation{Board: board, LastShotHit: true})

		require.NoError(t, err)
		require.Equal(t, ModeTargeting, strat.Mode())
		require.Equal(t, game.Position{Row: 1, Col: 0}, second.Target, "first open cross-neighbor of the hit")
	})

	t.Run("an unattributed ship cell starts a hunt without a hit flag", func(t *testing.T) {
		board := blankBoard(12, 12)
		board.Set(game.Position{Row: 5, Col: 5}, game.CellShip)
		strat := New(12, 12, game.NewStandardFleet())

		shot, err := strat.Decide(game.Observation{Board: board})

		require.NoError(t, err)
		require.Equal(t, ModeTargeting, strat.Mode())
		require.Equal(t, game.Position{Row: 4, Col: 5}, shot.Target)
	})

	t.Run("an isolated hit falls back to search instead of re-shooting water", func(t *testing.T) {
		board := blankBoard(12, 12)
		hit := game.Position{Row: 5, Col: 5}
		board.Set(hit, game.CellShip)
		for n := range board.CrossNeighbors(hit) {
			board.Set(n, game.CellWater)
		}
		strat := New(12, 12, game.NewStandardFleet())

		shot, err := strat.Decide(game.Observation{Board: board})

		require.NoError(t, err)
		require.Equal(t, game.CellUnknown, board.At(shot.Target), "must target fresh water, not a known cell")
		require.Equal(t, ModeSearching, strat.Mode(), "the lone cell reads as a cross-ship wing, nothing to extend")
	})
}

func TestDecideSinking(t *testing.T) {
	// A capped horizontal five on the 12x12 board.
	cappedFive := func() *game.Grid[game.CellState] {
		board := blankBoard(12, 12)
		for col := 4; col <= 8; col++ {
			board.Set(game.Position{Row: 5, Col: col}, game.CellShip)
		}
		board.Set(game.Position{Row: 5, Col: 3}, game.CellWater)
		board.Set(game.Position{Row: 5, Col: 9}, game.CellWater)
		return board
	}

	t.Run("retires the ship and shields its surroundings", func(t *testing.T) {
		surface := uniformSurface(12, 12)
		surface.Set(game.Position{Row: 4, Col: 4}, 100) // diagonal neighbor of the wreck
		strat := New(12, 12, game.NewFleet(2, 5), WithEstimator(stubEstimator{surface: surface}))

		shot, err := strat.Decide(game.Observation{Board: cappedFive()})

		require.NoError(t, err)
		require.Equal(t, []int{2}, strat.Fleet().Sizes(), "the five leaves the inventory")
		require.Equal(t, ModeSearching, strat.Mode())
		require.Equal(t, game.Position{Row: 0, Col: 0}, shot.Target,
			"cells around the wreck count as water now, however tempting the surface")
	})

	t.Run("sinking the last ship ends the match", func(t *testing.T) {
		strat := New(12, 12, game.NewFleet(5))

		_, err := strat.Decide(game.Observation{Board: cappedFive()})

		require.ErrorIs(t, err, ErrMatchFinished)
		require.True(t, strat.Fleet().Empty())
	})
}

func TestDecidePower(t *testing.T) {
	board := blankBoard(12, 12)
	board.Set(game.Position{Row: 5, Col: 5}, game.CellShip)

	t.Run("spends the power when the advisor says so", func(t *testing.T) {
		strat := New(12, 12, game.NewFleet(4, 5, 9))

		shot, err := strat.Decide(game.Observation{Board: board.Clone(), PowerAvailable: true})

		require.NoError(t, err)
		require.Equal(t, game.PowerDestroyShip, shot.Power, "one hit and nothing small afloat")
	})

	t.Run("keeps quiet when the power is gone", func(t *testing.T) {
		strat := New(12, 12, game.NewFleet(4, 5, 9))

		shot, err := strat.Decide(game.Observation{Board: board.Clone(), PowerAvailable: false, PowerUsed: true})

		require.NoError(t, err)
		require.Equal(t, game.PowerNone, shot.Power)
	})
}

// TestDecideFullMatch plays out a small hand-built board and checks the
// hard invariants: only unknown cells get shot, never the same cell twice,
// and every ship is found.
func TestDecideFullMatch(t *testing.T) {
	const rows, cols = 5, 5
	shipCells := map[game.Position]bool{
		{Row: 0, Col: 0}: true, {Row: 0, Col: 1}: true, // the two
		{Row: 2, Col: 3}: true, {Row: 3, Col: 3}: true, {Row: 4, Col: 3}: true, // the three
	}
	revealed := blankBoard(rows, cols)
	strat := New(rows, cols, game.NewFleet(2, 3))

	targeted := map[game.Position]bool{}
	lastHit := false
	found := 0
	for turn := 0; turn < rows*cols; turn++ {
		if found == len(shipCells) {
			break
		}
		shot, err := strat.Decide(game.Observation{Board: revealed.Clone(), LastShotHit: lastHit})
		require.NoError(t, err)

		require.Equal(t, game.CellUnknown, revealed.At(shot.Target), "turn %d shot a revealed cell", turn)
		require.False(t, targeted[shot.Target], "turn %d repeated target %v", turn, shot.Target)
		targeted[shot.Target] = true

		lastHit = shipCells[shot.Target]
		if lastHit {
			revealed.Set(shot.Target, game.CellShip)
			found++
		} else {
			revealed.Set(shot.Target, game.CellWater)
		}
	}

	require.Equal(t, len(shipCells), found, "every ship cell should be found within one board sweep")
}
