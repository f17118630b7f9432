package game

import "strings"

// Key canonically identifies a position for repetition purposes: board cells,
// both stocks in canonical order and the side to move. The ply count and the
// order in which pieces were captured do not affect it.
type Key string

func (p *Position) Key() Key {
	var b strings.Builder
	b.Grow(NumSquares + 2*len(p.stocks[South]) + 2*len(p.stocks[North]) + 4)
	for _, cell := range p.board.cells {
		b.WriteByte(cell.letter())
	}
	for _, side := range [NumSides]Side{South, North} {
		b.WriteByte('|')
		for _, piece := range p.stocks[side].canonical() {
			b.WriteByte(piece.letter())
		}
	}
	b.WriteByte('|')
	b.WriteByte('0' + byte(p.toMove))
	return Key(b.String())
}

// Tracker counts how often each position of one game has occurred. The
// caller owns its lifetime: one tracker per game, fed the initial position
// and then every position reached.
type Tracker struct {
	counts map[Key]int
	limit  int
}

func NewTracker() *Tracker {
	return &Tracker{counts: make(map[Key]int), limit: RepetitionLimit}
}

// Record notes one more occurrence of p and returns its total count.
func (t *Tracker) Record(p *Position) int {
	k := p.Key()
	t.counts[k]++
	return t.counts[k]
}

func (t *Tracker) Count(p *Position) int {
	return t.counts[p.Key()]
}

// Distinct returns the number of different positions recorded.
func (t *Tracker) Distinct() int {
	return len(t.counts)
}

// Outcome extends Position.Outcome with the repetition draw: once p has been
// recorded RepetitionLimit times the game is drawn. It is meant to be asked
// after every half-move, so the repeated position may have either side to
// move; there is no wait for the reply that would complete the full move.
func (t *Tracker) Outcome(p *Position) Outcome {
	if o := p.Outcome(); o.IsOver() {
		return o
	}
	if t.counts[p.Key()] >= t.limit {
		return Outcome{Status: Draw, Reason: ReasonRepetition}
	}
	return Outcome{}
}
