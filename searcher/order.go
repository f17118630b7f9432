package searcher

import (
	"dobutsu/game"
	"sort"
)

const (
	rankDrop      = 0
	rankQuiet     = 1
	rankPromotion = 2
	rankCapture   = 3
)

type rankedMove struct {
	move  game.Move
	rank  int
	value int // Victim value for captures
}

// orderMoves puts captures first (most valuable victim first), then
// promotions, then quiet board moves, then drops. Ties keep generator order.
func orderMoves(p *game.Position, moves []game.Move) {
	ranked := make([]rankedMove, len(moves))
	for i, m := range moves {
		ranked[i] = rankMove(p, m)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank > ranked[j].rank
		}
		return ranked[i].value > ranked[j].value
	})
	for i := range ranked {
		moves[i] = ranked[i].move
	}
}

func rankMove(p *game.Position, m game.Move) rankedMove {
	switch {
	case m.IsDrop():
		return rankedMove{move: m, rank: rankDrop}
	case p.IsCapture(m):
		victim, _ := p.At(m.To)
		value := game.PieceValue(victim)
		if victim.Kind == game.Lion {
			value = WinScore
		}
		return rankedMove{move: m, rank: rankCapture, value: value}
	case p.IsPromotion(m):
		return rankedMove{move: m, rank: rankPromotion}
	default:
		return rankedMove{move: m, rank: rankQuiet}
	}
}
