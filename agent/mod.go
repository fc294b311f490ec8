package agent

import "seabattle/game"

// Agent is anything that can play a match: it receives the turn's
// observation and answers with the next shot. One agent instance serves
// one match at a time.
type Agent interface {
	Decide(obs game.Observation) (game.Shot, error)
}
