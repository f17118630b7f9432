package metrics

import "time"

// RandomStrategy names the agent that plays uniformly random legal moves.
const RandomStrategy = "random"

// AgentConfig describes one tournament participant.
type AgentConfig struct {
	ID       int           `yaml:"id"`
	Strategy string        `yaml:"strategy"` // Evaluation name or RandomStrategy
	Depth    int           `yaml:"depth"`
	Seed     uint64        `yaml:"seed"`
	Duration time.Duration `yaml:"duration"` // Optional per-move budget, e.g. "50ms"
}
