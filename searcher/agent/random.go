package agent

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/searcher"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal
// moves, reproducible per seed.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(p *game.Position) (game.Move, metrics.SearchMetric, error) {
	moves := p.LegalMoves()
	if p.OutcomeWith(moves).IsOver() || len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}, nil
}
