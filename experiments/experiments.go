package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"seabattle/board"
	"seabattle/engine"
	"seabattle/experiments/metrics"
	"seabattle/game"
	"seabattle/meta"
	"seabattle/strategy"
)

// EstimatorCounter and EstimatorRandom name the two search policies under
// study.
const (
	EstimatorCounter = "counter"
	EstimatorRandom  = "random"
)

// RunEstimatorExperiment compares placement counting against random
// search, powers off, over the same seeded boards.
func RunEstimatorExperiment(baseSeed uint64) {
	configs := []metrics.AgentConfig{
		{ID: 1, Estimator: EstimatorCounter},
		{ID: 2, Estimator: EstimatorRandom},
	}
	runExperiment("estimator", configs, baseSeed)
}

// RunPowerExperiment measures what the once-per-match power is worth to
// the placement-counting agent.
func RunPowerExperiment(baseSeed uint64) {
	configs := []metrics.AgentConfig{
		{ID: 1, Estimator: EstimatorCounter},
		{ID: 2, Estimator: EstimatorCounter, Powers: true},
	}
	runExperiment("power", configs, baseSeed)
}

func runExperiment(name string, configs []metrics.AgentConfig, baseSeed uint64) {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	matchRecords := []metrics.MatchRecord{}
	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		for i := 0; i < meta.MATCHES; i++ {
			// Every config sees the same board sequence.
			seed := baseSeed + uint64(i)
			result, err := RunMatch(config, seed)
			if err != nil {
				panic(fmt.Sprintf("failed to run match with seed %d: %v", seed, err))
			}
			count++
			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:    count,
				Agent: config.ID,
				Seed:  seed,
				MatchMetric: metrics.MatchMetric{
					Shots:     result.Shots,
					Hits:      result.Hits,
					PowerUsed: result.PowerUsed,
					Won:       result.Won,
					StartTime: result.StartTime,
					Duration:  result.Duration,
				},
			})
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteMatchRecords(matchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write match records: %v", err))
	}
	log.Info().Msg("stored match records")
}

// RunMatch plays one seeded local match with the given configuration.
func RunMatch(config metrics.AgentConfig, seed uint64) (engine.Result, error) {
	rng := rand.New(rand.NewSource(seed))
	fleet := game.NewStandardFleet()
	b, err := board.NewLocalBoard(meta.BOARD_ROWS, meta.BOARD_COLS, fleet, config.Powers, rng)
	if err != nil {
		return engine.Result{}, err
	}

	options := []strategy.Option{}
	if config.Estimator == EstimatorRandom {
		options = append(options, strategy.WithEstimator(strategy.NewRandomSurface(rng)))
	}
	strat := strategy.New(meta.BOARD_ROWS, meta.BOARD_COLS, game.NewStandardFleet(), options...)

	return engine.NewLocalEngine(strat, b).Run()
}
