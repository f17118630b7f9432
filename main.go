package main

import (
	"dobutsu/engine"
	"dobutsu/experiments"
	"dobutsu/experiments/metrics"
	"dobutsu/meta"
	"dobutsu/searcher/agent"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, tournament or depth")
	logLevel := flag.String("log-level", "info", "zerolog level")
	south := flag.String("south", "balanced", "South's strategy (evaluation name or random)")
	north := flag.String("north", "random", "North's strategy (evaluation name or random)")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth in plies")
	duration := flag.Duration("duration", 0, "Optional time budget per move, enables iterative deepening")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Tie-break seed")
	configPath := flag.String("config", "tournament.yaml", "Tournament config (tournament mode)")
	depths := flag.String("depths", "1,2,3,4", "Comma separated depths (depth mode)")
	games := flag.Int("games", meta.GAMES_PER_MATCHUP, "Games per depth (depth mode)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	switch *mode {
	case "play":
		err = play(
			metrics.AgentConfig{ID: 1, Strategy: *south, Depth: *depth, Seed: *seed, Duration: *duration},
			metrics.AgentConfig{ID: 2, Strategy: *north, Depth: *depth, Seed: *seed + 1, Duration: *duration},
		)
	case "tournament":
		err = tournament(*configPath)
	case "depth":
		err = depthExperiment(*south, *depths, *games)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(southConfig, northConfig metrics.AgentConfig) error {
	southAgent, err := agent.FromConfig(southConfig)
	if err != nil {
		return err
	}
	northAgent, err := agent.FromConfig(northConfig)
	if err != nil {
		return err
	}

	e := engine.NewLocalEngine(southAgent, northAgent)
	outcome, gameMetric, moveMetrics := e.Run()

	var moves []string
	for _, mm := range moveMetrics {
		moves = append(moves, mm.Move)
	}
	log.Info().Msgf("moves: %s", strings.Join(moves, " "))
	log.Info().Msgf("final position: %v", e.State)
	log.Info().Msgf("%v in %d moves (%v)", outcome, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func tournament(path string) error {
	config, err := experiments.LoadConfig(path)
	if err != nil {
		return err
	}
	result, err := experiments.RunTournament(config)
	if err != nil {
		return err
	}
	report(result)
	return nil
}

func depthExperiment(strategy, depthList string, games int) error {
	var depths []int
	for _, field := range strings.Split(depthList, ",") {
		depth, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("invalid depth %q: %w", field, err)
		}
		depths = append(depths, depth)
	}
	result, err := experiments.RunDepthExperiment(strategy, depths, games, meta.RESULTS_DIR)
	if err != nil {
		return err
	}
	report(result)
	return nil
}

func report(result *experiments.Result) {
	s := result.Summary
	log.Info().Msgf("%d games, %d draws, results in %s", s.Games, s.Draws, result.Dir)
	for _, score := range s.Scores {
		log.Info().Msgf("agent %d: %d wins, %d losses, %d draws, %.1f points", score.ID, score.Wins, score.Losses, score.Draws, score.Points)
	}
	log.Info().Msgf("game length: mean %.1f, stddev %.1f, median %.0f", s.GameLength.Mean, s.GameLength.StdDev, s.GameLength.Median)
	log.Info().Msgf("nodes per move: mean %.0f, stddev %.0f, total %.0f", s.Nodes.Mean, s.Nodes.StdDev, s.TotalNodes)
	log.Info().Msgf("time per move: mean %.2fms, median %.2fms", s.MoveTimeMs.Mean, s.MoveTimeMs.Median)
	for _, cost := range s.ByDepth {
		log.Info().Msgf("depth %d: %d moves, nodes mean %.0f, time mean %.2fms", cost.Depth, cost.Moves, cost.Nodes.Mean, cost.MoveTimeMs.Mean)
	}
}
