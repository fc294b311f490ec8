package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"seabattle/agent"
	"seabattle/board"
	"seabattle/experiments/metrics"
	"seabattle/game"
	"seabattle/meta"
)

// LocalEngine runs one agent against one board in the calling goroutine.
type LocalEngine struct {
	agent     agent.Agent
	board     board.Board
	collector metrics.Collector
	observers []Observer
}

type EngineOption func(e *LocalEngine)

func WithCollector(collector metrics.Collector) EngineOption {
	return func(e *LocalEngine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

func WithObserver(observer Observer) EngineOption {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

func NewLocalEngine(a agent.Agent, b board.Board, options ...EngineOption) *LocalEngine {
	if a == nil || b == nil {
		panic("need both an agent and a board")
	}
	e := &LocalEngine{
		agent:     a,
		board:     b,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// fleetReporter is implemented by agents that account for the remaining
// fleet, letting the engine report sunk ships in the result.
type fleetReporter interface {
	Fleet() *game.Fleet
}

// Run executes the match loop: observe, decide, fire, until the board
// reports the match over or meta.MAX_TURNS shots were spent.
func (e *LocalEngine) Run() (Result, error) {
	matchID := uuid.NewString()
	log.Info().Msgf("match %s starting", matchID)

	startFleet := -1
	if reporter, ok := e.agent.(fleetReporter); ok {
		startFleet = reporter.Fleet().Count()
	}

	e.collector.Start()
	won := false
	turn := 0
	for {
		obs, err := e.board.Observe()
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: observing failed: %w", turn+1, err)
		}
		if obs.LastShotHit {
			e.collector.AddHit()
		}
		if obs.PowerUsed {
			e.collector.SetPowerUsed()
		}
		if obs.Finished {
			won = true
			break
		}
		if turn >= meta.MAX_TURNS {
			break
		}

		shot, err := e.agent.Decide(obs)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: agent failed: %w", turn+1, err)
		}
		// The sole wire-level contract: only Unknown cells get shot at.
		if obs.Board.At(shot.Target) != game.CellUnknown {
			panic(fmt.Sprintf("agent proposed revealed cell %v", shot.Target))
		}

		turn++
		for _, observer := range e.observers {
			observer.HandleTurn(Turn{MatchID: matchID, Number: turn, Board: obs.Board, Shot: shot})
		}

		if err := e.board.Fire(shot); err != nil {
			return Result{}, fmt.Errorf("turn %d: firing at %v failed: %w", turn, shot.Target, err)
		}
		e.collector.AddShot()
	}

	if !won {
		log.Warn().Msgf("match %s stopped after %d turns without finishing", matchID, turn)
	}

	metric := e.collector.Complete(won)
	sunk := -1
	if reporter, ok := e.agent.(fleetReporter); ok {
		sunk = startFleet - reporter.Fleet().Count()
	}
	result := Result{
		MatchID:   matchID,
		Shots:     metric.Shots,
		Hits:      metric.Hits,
		Sunk:      sunk,
		PowerUsed: metric.PowerUsed,
		Won:       metric.Won,
		StartTime: metric.StartTime,
		Duration:  metric.Duration,
	}
	log.Info().Msgf("match %s over after %d shots (won=%t)", matchID, result.Shots, result.Won)
	return result, nil
}
