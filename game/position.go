package game

import (
	"errors"
	"fmt"
)

var ErrInvalidStock = errors.New("invalid stock entry")

// Position is the unit the searcher works on: board, both stocks, side to
// move and ply count. Positions are immutable; Play derives a new one.
type Position struct {
	board  Board
	stocks [NumSides]Stock
	toMove Side
	ply    int
}

// initialRows is the starting layout from row 0 (North's home row) down.
var initialRows = [Rows][Cols]Piece{
	{NewPiece(Giraffe, North), NewPiece(Lion, North), NewPiece(Elephant, North)},
	{{}, NewPiece(Chick, North), {}},
	{{}, NewPiece(Chick, South), {}},
	{NewPiece(Elephant, South), NewPiece(Lion, South), NewPiece(Giraffe, South)},
}

// InitialPosition returns the fixed starting position with South to move.
func InitialPosition() *Position {
	p := &Position{toMove: South}
	for row := range initialRows {
		for col, piece := range initialRows[row] {
			p.board.cells[row*Cols+col] = piece
		}
	}
	return p
}

// NewPosition builds an arbitrary position, e.g. for analysis or tests. Stock
// entries must be unpromoted and owned by the side holding them.
func NewPosition(board Board, south, north []Piece, toMove Side) (*Position, error) {
	if !toMove.Valid() {
		return nil, fmt.Errorf("invalid side to move: %v", toMove)
	}
	p := &Position{board: board, toMove: toMove}
	for side, entries := range [NumSides][]Piece{South: south, North: north} {
		for _, e := range entries {
			if !e.Valid() || e.Promoted || e.Owner != Side(side) {
				return nil, fmt.Errorf("%w: %+v in %v stock", ErrInvalidStock, e, Side(side))
			}
		}
		p.stocks[side] = append(Stock(nil), entries...)
	}
	return p, nil
}

func (p *Position) ToMove() Side { return p.toMove }
func (p *Position) Ply() int     { return p.ply }

// Board returns a copy of the board.
func (p *Position) Board() Board { return p.board }

func (p *Position) At(sq Square) (Piece, error) {
	return p.board.At(sq)
}

// Stock returns a copy of side's captured pieces.
func (p *Position) Stock(side Side) Stock {
	return append(Stock(nil), p.stocks[side]...)
}

// LionSquare locates side's Lion; false means it has been captured.
func (p *Position) LionSquare(side Side) (Square, bool) {
	return p.board.Find(NewPiece(Lion, side))
}

// ApplyMove is the functional form of Position.Play.
func ApplyMove(p *Position, m Move) *Position {
	return p.Play(m)
}

// Play returns the position after the side to move plays m. p is left
// untouched. m must come from p.LegalMoves(). A move no piece could make
// (wrong owner, unreachable or own-occupied destination, bad stock index,
// chick dropped on the far row) is a programming error and panics. Leaving
// one's own Lion attacked is not checked here.
func (p *Position) Play(m Move) *Position {
	mover := p.toMove
	next := &Position{
		board:  p.board,
		stocks: p.stocks, // Shared until one side's stock changes
		toMove: mover.Opponent(),
		ply:    p.ply + 1,
	}

	if !m.To.Valid() {
		panic(fmt.Sprintf("play %v: destination out of bounds", m))
	}

	switch m.Kind {
	case BoardMove:
		if !m.From.Valid() {
			panic(fmt.Sprintf("play %v: origin out of bounds", m))
		}
		piece := p.board.cells[m.From]
		if piece.IsEmpty() || piece.Owner != mover {
			panic(fmt.Sprintf("play %v: no %v piece on %v", m, mover, m.From))
		}
		if !reaches(&p.board, m.From, m.To) {
			panic(fmt.Sprintf("play %v: %v cannot reach %v", m, piece, m.To))
		}
		if target := p.board.cells[m.To]; !target.IsEmpty() {
			next.stocks[mover] = p.stocks[mover].with(target.capturedBy(mover))
		}
		if promotes(piece, m.To) {
			piece.Promoted = true
		}
		next.board.cells[m.From] = Piece{}
		next.board.cells[m.To] = piece

	case DropMove:
		stock := p.stocks[mover]
		if m.StockIndex < 0 || m.StockIndex >= len(stock) {
			panic(fmt.Sprintf("play %v: stock index out of range (stock size %d)", m, len(stock)))
		}
		if !p.board.cells[m.To].IsEmpty() {
			panic(fmt.Sprintf("play %v: drop target occupied", m))
		}
		if stock[m.StockIndex].Kind == Chick && m.To.Row() == mover.FarRow() {
			panic(fmt.Sprintf("play %v: chick dropped on the far row", m))
		}
		next.board.cells[m.To] = stock[m.StockIndex]
		next.stocks[mover] = stock.without(m.StockIndex)

	default:
		panic(fmt.Sprintf("play %v: unknown move kind %d", m, m.Kind))
	}

	return next
}

func reaches(b *Board, from, to Square) bool {
	var buf [8]Square
	for _, d := range appendDestinations(buf[:0], b, from) {
		if d == to {
			return true
		}
	}
	return false
}

func (p *Position) String() string {
	return fmt.Sprintf("%s %s|%s %v ply=%d", p.board.String(), stockString(p.stocks[South]), stockString(p.stocks[North]), p.toMove, p.ply)
}

func stockString(s Stock) string {
	b := make([]byte, len(s))
	for i, piece := range s {
		b[i] = piece.letter()
	}
	return string(b)
}
