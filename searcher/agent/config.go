package agent

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/searcher"
	"fmt"
)

// FromConfig builds the agent an AgentConfig describes.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	if config.Strategy == metrics.RandomStrategy {
		return NewRandomAgent(config.Seed), nil
	}

	evaluate, err := game.EvaluationByName(config.Strategy)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	options := []searcher.Option{searcher.WithSeed(config.Seed), searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	return NewSearchAgent(searcher.NewSearcher(evaluate, options...)), nil
}
