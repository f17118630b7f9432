package engine

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
)

type Engine interface {
	// Run plays a game till it is decided, drawn or a max number of turns is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
