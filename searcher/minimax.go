package searcher

import "dobutsu/game"

// Minimax is the unpruned reference search. It visits every node and
// returns the same value as AlphaBeta with a full window.
func (s *Searcher) Minimax(p *game.Position, depth int, maximizing bool) int {
	perspective := p.ToMove()
	if !maximizing {
		perspective = perspective.Opponent()
	}

	if depth <= 0 {
		if outcome := p.Outcome(); outcome.IsOver() {
			return terminalScore(outcome, perspective, 0)
		}
		return s.evaluate(p, perspective)
	}

	moves := p.LegalMoves()
	if outcome := p.OutcomeWith(moves); outcome.IsOver() {
		return terminalScore(outcome, perspective, depth)
	}

	if maximizing {
		value := -Infinity
		for _, m := range moves {
			value = max(value, s.Minimax(p.Play(m), depth-1, false))
		}
		return value
	}
	value := Infinity
	for _, m := range moves {
		value = min(value, s.Minimax(p.Play(m), depth-1, true))
	}
	return value
}
