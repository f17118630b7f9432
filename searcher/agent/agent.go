package agent

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(p *game.Position) (game.Move, metrics.SearchMetric, error)
}
