package board

import "seabattle/game"

// Board is the opponent's side of the match: it answers what is at a cell
// once the agent shoots there. Implementations are a local simulator for
// testing and a websocket client against a remote server.
type Board interface {
	// Observe snapshots the match for the coming turn. The returned
	// observation and its grid belong to the caller.
	Observe() (game.Observation, error)

	// Fire applies the turn's shot and records its outcome for the next
	// observation.
	Fire(shot game.Shot) error
}
