package experiments

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/meta"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config is a tournament description, usually loaded from YAML:
//
//	name: depth-vs-eval
//	games_per_matchup: 10
//	agents:
//	  - {id: 1, strategy: material, depth: 3, seed: 1}
//	  - {id: 2, strategy: balanced, depth: 3, seed: 2, duration: 50ms}
//	  - {id: 3, strategy: random, seed: 3}
type Config struct {
	Name            string                `yaml:"name"`
	GamesPerMatchup int                   `yaml:"games_per_matchup"`
	MaxTurns        int                   `yaml:"max_turns"`
	OutputDir       string                `yaml:"output_dir"`
	Agents          []metrics.AgentConfig `yaml:"agents"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills in defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Name == "" {
		config.Name = "tournament"
	}
	if config.GamesPerMatchup <= 0 {
		config.GamesPerMatchup = meta.GAMES_PER_MATCHUP
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = meta.MAX_TURNS
	}
	if config.OutputDir == "" {
		config.OutputDir = meta.RESULTS_DIR
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if len(c.Agents) < 2 {
		return fmt.Errorf("%w: need at least two agents, got %d", ErrInvalidConfig, len(c.Agents))
	}
	seen := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if seen[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		seen[agent.ID] = true
		if err := validateAgent(agent); err != nil {
			return err
		}
	}
	return nil
}

func validateAgent(agent metrics.AgentConfig) error {
	if agent.Depth < 0 {
		return fmt.Errorf("%w: agent %d: negative depth %d", ErrInvalidConfig, agent.ID, agent.Depth)
	}
	if agent.Strategy == metrics.RandomStrategy {
		return nil
	}
	if _, err := game.EvaluationByName(agent.Strategy); err != nil {
		return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, agent.ID, err)
	}
	return nil
}
