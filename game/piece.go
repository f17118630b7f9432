package game

import "fmt"

// Side identifies one of the two players.
type Side int8

const (
	South Side = iota // Moves first, home row is the bottom row
	North             // Home row is the top row
)

const NumSides = 2

func (s Side) Opponent() Side {
	if s == South {
		return North
	}
	return South
}

func (s Side) Valid() bool {
	return s == South || s == North
}

func (s Side) String() string {
	switch s {
	case South:
		return "South"
	case North:
		return "North"
	default:
		return fmt.Sprintf("Side(%d)", int8(s))
	}
}

// HomeRow is the row holding the side's back rank at the start of the game.
func (s Side) HomeRow() int {
	if s == South {
		return Rows - 1
	}
	return 0
}

// FarRow is the opponent's home row: where Chicks promote and where a Lion
// completes a trial.
func (s Side) FarRow() int {
	return s.Opponent().HomeRow()
}

// forward is the row delta of one step toward the far row.
func (s Side) forward() int {
	if s == South {
		return -1
	}
	return 1
}

// Kind is the closed set of piece kinds. NoKind marks an empty cell.
type Kind int8

const (
	NoKind Kind = iota
	Chick
	Elephant
	Giraffe
	Lion
)

const numKinds = 5

func (k Kind) Valid() bool {
	return k > NoKind && k < numKinds
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "None"
	case Chick:
		return "Chick"
	case Elephant:
		return "Elephant"
	case Giraffe:
		return "Giraffe"
	case Lion:
		return "Lion"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Piece is a value: two pieces with the same kind, owner and promotion are
// interchangeable. The zero Piece is an empty cell.
type Piece struct {
	Kind     Kind
	Owner    Side
	Promoted bool // Only ever set on a Chick
}

func NewPiece(kind Kind, owner Side) Piece {
	return Piece{Kind: kind, Owner: owner}
}

// Hen returns a promoted Chick.
func Hen(owner Side) Piece {
	return Piece{Kind: Chick, Owner: owner, Promoted: true}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Valid reports whether p is a real piece honouring the promotion invariant.
func (p Piece) Valid() bool {
	if !p.Kind.Valid() || !p.Owner.Valid() {
		return false
	}
	return !p.Promoted || p.Kind == Chick
}

func (p Piece) Demoted() Piece {
	p.Promoted = false
	return p
}

// capturedBy is the stock form of p after side takes it.
func (p Piece) capturedBy(side Side) Piece {
	return Piece{Kind: p.Kind, Owner: side}
}

// letter is a one-byte code unique per kind, promotion and owner
// (upper case for South). '.' is an empty cell.
func (p Piece) letter() byte {
	var c byte
	switch p.Kind {
	case Chick:
		c = 'c'
		if p.Promoted {
			c = 'h'
		}
	case Elephant:
		c = 'e'
	case Giraffe:
		c = 'g'
	case Lion:
		c = 'l'
	default:
		return '.'
	}
	if p.Owner == South {
		c -= 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	return string(p.letter())
}
