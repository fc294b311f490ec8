package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"seabattle/board"
	"seabattle/engine"
	"seabattle/experiments"
	"seabattle/game"
	"seabattle/meta"
	"seabattle/render"
	"seabattle/strategy"
)

func main() {
	mode := flag.String("mode", "local", "local, remote or experiment")
	matches := flag.Int("matches", 1, "number of local matches to play")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for board generation and the random estimator")
	powers := flag.Bool("powers", false, "enable the once-per-match special power")
	estimator := flag.String("estimator", experiments.EstimatorCounter, "search policy: counter or random")
	watch := flag.Bool("watch", false, "watch local matches live in the terminal")
	delay := flag.Duration("delay", 200*time.Millisecond, "per-turn delay while watching")
	experiment := flag.String("experiment", "estimator", "experiment to run: estimator or power")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "local":
		runLocal(*matches, *seed, *powers, *estimator, *watch, *delay)
	case "remote":
		runRemote(*estimator, *seed)
	case "experiment":
		switch *experiment {
		case "estimator":
			experiments.RunEstimatorExperiment(*seed)
		case "power":
			experiments.RunPowerExperiment(*seed)
		default:
			log.Fatal().Msgf("unknown experiment %q", *experiment)
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func runLocal(matches int, seed uint64, powers bool, estimator string, watch bool, delay time.Duration) {
	var watcher *render.Watcher
	if watch {
		var err error
		watcher, err = render.NewWatcher(delay)
		if err != nil {
			log.Fatal().Msgf("failed to start watcher: %v", err)
		}
		defer watcher.Close()
	}

	for i := 0; i < matches; i++ {
		if watcher != nil && watcher.Quit() {
			break
		}
		rng := rand.New(rand.NewSource(seed + uint64(i)))

		b, err := board.NewLocalBoard(meta.BOARD_ROWS, meta.BOARD_COLS, game.NewStandardFleet(), powers, rng)
		if err != nil {
			log.Fatal().Msgf("failed to generate board: %v", err)
		}

		options := strategyOptions(estimator, rng)
		var engineOptions []engine.EngineOption
		if watcher != nil {
			options = append(options, strategy.WithSurfaceObserver(watcher.ObserveSurface))
			engineOptions = append(engineOptions, engine.WithObserver(watcher))
		}
		strat := strategy.New(meta.BOARD_ROWS, meta.BOARD_COLS, game.NewStandardFleet(), options...)

		result, err := engine.NewLocalEngine(strat, b, engineOptions...).Run()
		if err != nil {
			log.Fatal().Msgf("match failed: %v", err)
		}
		if watcher == nil {
			fmt.Printf("match %d of %d: %d shots, %d hits, %d sunk, won=%t\n",
				i+1, matches, result.Shots, result.Hits, result.Sunk, result.Won)
		}
	}
}

func runRemote(estimator string, seed uint64) {
	// .env is optional; the variable may come straight from the
	// environment.
	_ = godotenv.Load(".env")
	url := os.Getenv("SEABATTLE_SERVER_URL")
	if url == "" {
		log.Fatal().Msg("SEABATTLE_SERVER_URL is not set")
	}

	b, err := board.DialRemoteBoard(url)
	if err != nil {
		log.Fatal().Msgf("failed to reach server: %v", err)
	}
	defer b.Close()

	rng := rand.New(rand.NewSource(seed))
	strat := strategy.New(meta.BOARD_ROWS, meta.BOARD_COLS, game.NewStandardFleet(), strategyOptions(estimator, rng)...)

	result, err := engine.NewLocalEngine(strat, b).Run()
	if err != nil {
		log.Fatal().Msgf("remote match failed: %v", err)
	}
	fmt.Printf("remote match %s: %d shots, %d hits, won=%t\n", result.MatchID, result.Shots, result.Hits, result.Won)
}

func strategyOptions(estimator string, rng *rand.Rand) []strategy.Option {
	switch estimator {
	case experiments.EstimatorCounter:
		return nil
	case experiments.EstimatorRandom:
		return []strategy.Option{strategy.WithEstimator(strategy.NewRandomSurface(rng))}
	default:
		log.Fatal().Msgf("unknown estimator %q", estimator)
		return nil
	}
}
