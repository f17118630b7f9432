package game

import (
	"fmt"
	"sort"
)

var pieceValues = [numKinds]int{
	Chick:    10,
	Elephant: 30,
	Giraffe:  40,
}

const (
	henValue       = 45
	mobilityWeight = 2
	advanceWeight  = 4
	pressureWeight = 3
)

// EvaluateMaterial tallies board and stock material, scoring the difference from perspective's point of view
func EvaluateMaterial(p *Position, perspective Side) int {
	return p.materialScore(perspective)
}

// EvaluateMobility adds each side's number of one-step destinations to material
func EvaluateMobility(p *Position, perspective Side) int {
	return p.materialScore(perspective) + mobilityWeight*p.mobilityScore(perspective)
}

// EvaluateLionSafety adds Lion advancement toward the far row and the pressure each side puts on the squares around the enemy Lion to material
func EvaluateLionSafety(p *Position, perspective Side) int {
	return p.materialScore(perspective) + p.lionScore(perspective)
}

// EvaluateBalanced sums material, weighted mobility and the Lion advancement and pressure terms
func EvaluateBalanced(p *Position, perspective Side) int {
	return p.materialScore(perspective) + mobilityWeight*p.mobilityScore(perspective) + p.lionScore(perspective)
}

var evaluations = map[string]Evaluate{
	"material":    EvaluateMaterial,
	"mobility":    EvaluateMobility,
	"lion-safety": EvaluateLionSafety,
	"balanced":    EvaluateBalanced,
}

// EvaluationByName resolves a strategy name, as used in experiment configs.
func EvaluationByName(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q (known: %v)", name, EvaluationNames())
	}
	return evaluate, nil
}

func EvaluationNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PieceValue is the material value of piece used by every evaluation. A
// Lion is worth nothing since losing it ends the game.
func PieceValue(piece Piece) int {
	if piece.Promoted {
		return henValue
	}
	return pieceValues[piece.Kind]
}

func (p *Position) materialScore(perspective Side) int {
	score := 0
	for _, piece := range p.board.cells {
		if piece.IsEmpty() {
			continue
		}
		if piece.Owner == perspective {
			score += PieceValue(piece)
		} else {
			score -= PieceValue(piece)
		}
	}
	for _, piece := range p.stocks[perspective] {
		score += PieceValue(piece)
	}
	for _, piece := range p.stocks[perspective.Opponent()] {
		score -= PieceValue(piece)
	}
	return score
}

func (p *Position) mobilityScore(perspective Side) int {
	return p.mobility(perspective) - p.mobility(perspective.Opponent())
}

func (p *Position) lionScore(perspective Side) int {
	return p.lionTerms(perspective) - p.lionTerms(perspective.Opponent())
}

// lionTerms rewards side's Lion for rows advanced from home and side for
// attacked squares around the enemy Lion.
func (p *Position) lionTerms(side Side) int {
	score := 0
	if sq, ok := p.LionSquare(side); ok {
		advanced := sq.Row() - side.HomeRow()
		if advanced < 0 {
			advanced = -advanced
		}
		score += advanceWeight * advanced
	}
	if sq, ok := p.LionSquare(side.Opponent()); ok {
		score += pressureWeight * p.attackedAround(sq, side)
	}
	return score
}
