package game

import "fmt"

type Status int8

const (
	Ongoing Status = iota
	Win
	Draw
)

type Reason int8

const (
	ReasonNone       Reason = iota
	ReasonCapture           // The loser's Lion was taken
	ReasonTrial             // The winner's Lion stands unchecked on its far row
	ReasonCheckmate         // The side to move has no legal move and is in check
	ReasonStalemate         // The side to move has no legal move and is not in check
	ReasonRepetition        // The position occurred RepetitionLimit times
	ReasonMoveLimit         // The game loop gave up after its turn budget
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCapture:
		return "capture"
	case ReasonTrial:
		return "trial"
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonRepetition:
		return "repetition"
	case ReasonMoveLimit:
		return "move limit"
	default:
		return fmt.Sprintf("Reason(%d)", int8(r))
	}
}

// Outcome is the game result in some position. Winner is only meaningful
// when Status is Win.
type Outcome struct {
	Status Status
	Winner Side
	Reason Reason
}

func (o Outcome) IsOver() bool {
	return o.Status != Ongoing
}

// Decisive reports a win for either side.
func (o Outcome) Decisive() bool {
	return o.Status == Win
}

func (o Outcome) String() string {
	switch o.Status {
	case Ongoing:
		return "ongoing"
	case Win:
		return fmt.Sprintf("%v wins by %v", o.Winner, o.Reason)
	default:
		return fmt.Sprintf("draw by %v", o.Reason)
	}
}

func winFor(side Side, reason Reason) Outcome {
	return Outcome{Status: Win, Winner: side, Reason: reason}
}

// Outcome evaluates, in order: Lion capture, trial, and the side to move
// having no legal move (a loss whether or not it is in check). Repetition
// needs the game history and is handled by Tracker.Outcome.
func (p *Position) Outcome() Outcome {
	if o := p.boardOutcome(); o.IsOver() {
		return o
	}
	if !p.HasLegalMove() {
		return p.noMoveOutcome()
	}
	return Outcome{}
}

// OutcomeWith is Outcome for callers already holding p.LegalMoves().
func (p *Position) OutcomeWith(legal []Move) Outcome {
	if o := p.boardOutcome(); o.IsOver() {
		return o
	}
	if len(legal) == 0 {
		return p.noMoveOutcome()
	}
	return Outcome{}
}

// boardOutcome covers the conditions read straight off the board. The side
// that just moved is examined first.
func (p *Position) boardOutcome() Outcome {
	sides := [NumSides]Side{p.toMove.Opponent(), p.toMove}
	for _, side := range sides {
		if _, ok := p.LionSquare(side); !ok {
			return winFor(side.Opponent(), ReasonCapture)
		}
	}
	for _, side := range sides {
		if p.trialComplete(side) {
			return winFor(side, ReasonTrial)
		}
	}
	return Outcome{}
}

// trialComplete is re-evaluated every ply from the board alone: the Lion must
// stand on its far row and not be attacked right now.
func (p *Position) trialComplete(side Side) bool {
	sq, ok := p.LionSquare(side)
	if !ok || sq.Row() != side.FarRow() {
		return false
	}
	return !p.IsAttacked(sq, side.Opponent())
}

func (p *Position) noMoveOutcome() Outcome {
	reason := ReasonStalemate
	if p.InCheck(p.toMove) {
		reason = ReasonCheckmate
	}
	return winFor(p.toMove.Opponent(), reason)
}
