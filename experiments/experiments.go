package experiments

import (
	"dobutsu/engine"
	"dobutsu/experiments/metrics"
	"dobutsu/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Result holds everything a tournament produced.
type Result struct {
	Configs     []metrics.AgentConfig
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Summary     Summary
	Dir         string // Where the CSV files were written
}

// RunTournament plays every pair of configured agents against each other,
// alternating who plays South, then stores the records as CSV.
func RunTournament(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := range config.Agents {
		for j := i + 1; j < len(config.Agents); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{config.Agents[i], config.Agents[j]})
		}
	}
	return runExperiment(config, matchUps)
}

func runExperiment(config Config, matchUps [][]metrics.AgentConfig) (*Result, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < config.GamesPerMatchup; i++ {
			south, north := matchup[0], matchup[1]
			if i%2 == 1 {
				south, north = north, south
			}

			gameMetric, moveMetrics, err := runGame(south, north, config.MaxTurns)
			if err != nil {
				return nil, err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     south.ID,
				Agent2:     north.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, describe(gameMetric))
		}
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	result := &Result{
		Configs:     config.Agents,
		GameRecords: gameRecords,
		MoveRecords: moveRecords,
		Summary:     Summarize(config.Agents, gameRecords, moveRecords),
	}

	dir, err := store(config, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func store(config Config, result *Result) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(result.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(south, north metrics.AgentConfig, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	southAgent, err := agent.FromConfig(south)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	northAgent, err := agent.FromConfig(north)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(southAgent, northAgent)
	e.MaxTurns = maxTurns
	_, gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func describe(m metrics.GameMetric) string {
	if m.Winner == "" {
		return fmt.Sprintf("draw by %s after %d moves", m.Reason, m.TotalMoves)
	}
	return fmt.Sprintf("%s won by %s after %d moves", m.Winner, m.Reason, m.TotalMoves)
}
