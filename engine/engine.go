package engine

import (
	"time"

	"seabattle/game"
)

// Engine drives one match between an agent and a board.
type Engine interface {
	// Run loops until the board reports the match finished or the turn
	// cap trips.
	Run() (Result, error)
}

// Result is the outcome of one finished match.
type Result struct {
	MatchID   string
	Shots     int
	Hits      int
	Sunk      int // ships the agent accounted for, -1 when unknown
	PowerUsed bool
	Won       bool
	StartTime time.Time
	Duration  time.Duration
}

// Turn is what observers see after each decision, before the shot lands.
type Turn struct {
	MatchID string
	Number  int
	Board   *game.Grid[game.CellState]
	Shot    game.Shot
}

// Observer is notified once per turn. Calls come from the match loop's
// goroutine; observers must not block it for long.
type Observer interface {
	HandleTurn(turn Turn)
}
