package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"seabattle/game"
	"seabattle/meta"
)

func TestPlaceFleetInvariants(t *testing.T) {
	fleet := game.NewStandardFleet()

	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))

		ships, truth, err := placeFleet(meta.BOARD_ROWS, meta.BOARD_COLS, fleet.Sizes(), rng)
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, ships, fleet.Count())

		// Every ship is complete and owns its truth cells.
		total := 0
		for i, ship := range ships {
			require.Len(t, ship.cells, ship.size, "seed %d ship %d", seed, i)
			total += ship.size
			for _, p := range ship.cells {
				require.Equal(t, i+1, truth.At(p), "seed %d: truth disagrees at %v", seed, p)
			}
		}
		require.Equal(t, fleet.TotalCells(), total)

		// Ships never touch, not even diagonally.
		for p := range truth.Positions() {
			if truth.At(p) == 0 {
				continue
			}
			for n := range truth.AllAroundNeighbors(p) {
				other := truth.At(n)
				require.True(t, other == 0 || other == truth.At(p),
					"seed %d: ships %d and %d touch at %v/%v", seed, truth.At(p), other, p, n)
			}
		}
	}
}

func TestPlaceFleetReproducible(t *testing.T) {
	sizes := game.NewStandardFleet().Sizes()

	_, first, err := placeFleet(12, 12, sizes, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	_, second, err := placeFleet(12, 12, sizes, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for p := range first.Positions() {
		require.Equal(t, first.At(p), second.At(p), "same seed must give the same board")
	}
}

func TestPlaceFleetRejectsImpossibleBoards(t *testing.T) {
	_, _, err := placeFleet(3, 3, []int{5}, rand.New(rand.NewSource(1)))

	require.Error(t, err, "a five cannot fit a 3x3 board")
}

// testBoard builds a 4x4 board with a known layout: a pair on the top row
// and a triple down the last column.
//
//	S S . .
//	. . . S
//	. . . S
//	. . . S
func testBoard(t *testing.T, powers bool) *LocalBoard {
	t.Helper()
	truth := game.NewGrid[int](4, 4)
	pair := &hiddenShip{size: 2, cells: []game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
	triple := &hiddenShip{size: 3, cells: []game.Position{{Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3}}}
	for _, p := range pair.cells {
		truth.Set(p, 1)
	}
	for _, p := range triple.cells {
		truth.Set(p, 2)
	}
	return &LocalBoard{
		truth:         truth,
		ships:         []*hiddenShip{pair, triple},
		revealed:      game.NewGrid[game.CellState](4, 4),
		powersEnabled: powers,
		cellsLeft:     5,
	}
}

func TestLocalBoardFire(t *testing.T) {
	t.Run("reveals water and ship and tracks the last result", func(t *testing.T) {
		b := testBoard(t, false)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 0}}))
		obs, err := b.Observe()
		require.NoError(t, err)
		require.False(t, obs.LastShotHit)
		require.Equal(t, game.CellWater, obs.Board.At(game.Position{Row: 2, Col: 0}))

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 0, Col: 0}}))
		obs, err = b.Observe()
		require.NoError(t, err)
		require.True(t, obs.LastShotHit)
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 0, Col: 0}))
	})

	t.Run("rejects repeated and out-of-bounds shots", func(t *testing.T) {
		b := testBoard(t, false)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 1, Col: 1}}))
		require.Error(t, b.Fire(game.Shot{Target: game.Position{Row: 1, Col: 1}}), "already revealed")
		require.Error(t, b.Fire(game.Shot{Target: game.Position{Row: 9, Col: 0}}), "off the board")
	})

	t.Run("finishes when the last ship cell falls", func(t *testing.T) {
		b := testBoard(t, false)
		for _, p := range []game.Position{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
		} {
			require.NoError(t, b.Fire(game.Shot{Target: p}))
		}

		obs, err := b.Observe()
		require.NoError(t, err)
		require.True(t, obs.Finished)
		require.Error(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 2}}), "no shots after the match ends")
	})

	t.Run("observations are the caller's to keep", func(t *testing.T) {
		b := testBoard(t, false)
		obs, err := b.Observe()
		require.NoError(t, err)

		obs.Board.Set(game.Position{Row: 0, Col: 0}, game.CellWater)

		fresh, err := b.Observe()
		require.NoError(t, err)
		require.Equal(t, game.CellUnknown, fresh.Board.At(game.Position{Row: 0, Col: 0}))
	})
}

func TestLocalBoardPowers(t *testing.T) {
	t.Run("reveal smallest uncovers the smallest afloat ship", func(t *testing.T) {
		b := testBoard(t, true)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 0}, Power: game.PowerRevealSmallest}))

		obs, _ := b.Observe()
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 0, Col: 0}))
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 0, Col: 1}))
		require.True(t, obs.PowerUsed)
		require.False(t, obs.PowerAvailable)
	})

	t.Run("area reveal uncovers the 3x3 block around the shot", func(t *testing.T) {
		b := testBoard(t, true)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 2}, Power: game.PowerRevealArea}))

		obs, _ := b.Observe()
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 1, Col: 3}))
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 2, Col: 3}))
		require.Equal(t, game.CellWater, obs.Board.At(game.Position{Row: 1, Col: 1}))
		require.Equal(t, game.CellUnknown, obs.Board.At(game.Position{Row: 0, Col: 0}), "outside the block")
	})

	t.Run("destroy ship sinks whatever the shot hits", func(t *testing.T) {
		b := testBoard(t, true)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 3}, Power: game.PowerDestroyShip}))

		obs, _ := b.Observe()
		require.True(t, obs.LastShotHit)
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 1, Col: 3}))
		require.Equal(t, game.CellShip, obs.Board.At(game.Position{Row: 3, Col: 3}))
	})

	t.Run("destroy ship on water is wasted", func(t *testing.T) {
		b := testBoard(t, true)

		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 0}, Power: game.PowerDestroyShip}))

		obs, _ := b.Observe()
		require.False(t, obs.LastShotHit)
		require.True(t, obs.PowerUsed)
	})

	t.Run("only one power per match", func(t *testing.T) {
		b := testBoard(t, true)
		require.NoError(t, b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 0}, Power: game.PowerRevealArea}))

		err := b.Fire(game.Shot{Target: game.Position{Row: 3, Col: 0}, Power: game.PowerRevealArea})

		require.Error(t, err)
	})

	t.Run("powers must be enabled", func(t *testing.T) {
		b := testBoard(t, false)

		err := b.Fire(game.Shot{Target: game.Position{Row: 2, Col: 0}, Power: game.PowerRevealSmallest})

		require.Error(t, err)
	})
}
