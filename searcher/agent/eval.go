package agent

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the alpha-beta searcher's choice.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(p *game.Position) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.ChooseBestMove(p)
}
