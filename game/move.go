package game

import "fmt"

type MoveKind int8

const (
	BoardMove MoveKind = iota // Step a piece from one square to another, possibly capturing
	DropMove                  // Place a stock piece on an empty square
)

// Move is comparable, so moves can be used as map keys and compared with ==.
// Only the fields of its kind are meaningful; the constructors zero the rest.
type Move struct {
	Kind       MoveKind
	From       Square
	StockIndex int
	To         Square
}

func NewBoardMove(from, to Square) Move {
	return Move{Kind: BoardMove, From: from, To: to}
}

func NewDropMove(stockIndex int, to Square) Move {
	return Move{Kind: DropMove, StockIndex: stockIndex, To: to}
}

func (m Move) IsDrop() bool {
	return m.Kind == DropMove
}

func (m Move) String() string {
	if m.Kind == DropMove {
		return fmt.Sprintf("*%d%s", m.StockIndex, m.To)
	}
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// Notation describes m as played from p, e.g. "Cb2xb3", "G*a2" or "Cb2-b1+"
// for a promotion. m must be legal in p.
func (p *Position) Notation(m Move) string {
	if m.Kind == DropMove {
		return fmt.Sprintf("%c*%s", p.stocks[p.toMove][m.StockIndex].letter(), m.To)
	}
	mover := p.board.cells[m.From]
	sep := "-"
	if !p.board.cells[m.To].IsEmpty() {
		sep = "x"
	}
	suffix := ""
	if promotes(mover, m.To) {
		suffix = "+"
	}
	return fmt.Sprintf("%c%s%s%s%s", mover.letter(), m.From, sep, m.To, suffix)
}

func promotes(p Piece, to Square) bool {
	return p.Kind == Chick && !p.Promoted && to.Row() == p.Owner.FarRow()
}

// IsCapture reports whether board move m takes an enemy piece in p.
func (p *Position) IsCapture(m Move) bool {
	return m.Kind == BoardMove && !p.board.cells[m.To].IsEmpty()
}

// IsPromotion reports whether m advances a Chick onto its far row.
func (p *Position) IsPromotion(m Move) bool {
	return m.Kind == BoardMove && promotes(p.board.cells[m.From], m.To)
}
