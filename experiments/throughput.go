package experiments

import (
	"dobutsu/experiments/metrics"
	"dobutsu/meta"
	"fmt"
)

// RunDepthExperiment pairs each depth with itself using one evaluation
// strategy, so both players have the same strength and similar game
// length. Summary.ByDepth shows how search cost grows with depth. Each
// depth plays its own mirror under one ID, so the per-agent scores of this
// experiment only count draws meaningfully.
func RunDepthExperiment(strategy string, depths []int, games int, outputDir string) (*Result, error) {
	if len(depths) == 0 {
		return nil, fmt.Errorf("%w: no depths given", ErrInvalidConfig)
	}

	configs := make([]metrics.AgentConfig, 0, len(depths))
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Strategy: strategy, Depth: depth, Seed: uint64(i + 1)}
		if err := validateAgent(config); err != nil {
			return nil, err
		}
		configs = append(configs, config)
		// Same config for both players, with its own tie-break seed
		mirror := config
		mirror.Seed += 1000
		matchUps = append(matchUps, []metrics.AgentConfig{config, mirror})
	}

	return runExperiment(Config{
		Name:            fmt.Sprintf("depth-%s", strategy),
		GamesPerMatchup: games,
		MaxTurns:        meta.MAX_TURNS,
		OutputDir:       outputDir,
		Agents:          configs,
	}, matchUps)
}
