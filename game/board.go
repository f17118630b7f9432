package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows       = 4
	Cols       = 3
	NumSquares = Rows * Cols
)

var (
	ErrOutOfBounds  = errors.New("square out of bounds")
	ErrInvalidPiece = errors.New("invalid piece")
)

// Square is a row-major cell index; row 0 is North's home row.
type Square int8

func NewSquare(row, col int) (Square, error) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, row, col)
	}
	return Square(row*Cols + col), nil
}

// MustSquare is NewSquare for coordinates known at compile time.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

func (s Square) Row() int { return int(s) / Cols }
func (s Square) Col() int { return int(s) % Cols }

// offset steps from s, reporting false when the step leaves the board.
func (s Square) offset(dRow, dCol int) (Square, bool) {
	row, col := s.Row()+dRow, s.Col()+dCol
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, false
	}
	return Square(row*Cols + col), true
}

// String names a square in file/rank notation: files a-c left to right,
// ranks 1-4 counted from South's home row.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Square(%d)", int8(s))
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), Rows-s.Row())
}

// Board is a fixed grid copied by value; a Position owns its board outright.
type Board struct {
	cells [NumSquares]Piece
}

func (b *Board) At(sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, fmt.Errorf("%w: %d", ErrOutOfBounds, sq)
	}
	return b.cells[sq], nil
}

// Set places p on sq; the zero Piece clears the cell.
func (b *Board) Set(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, sq)
	}
	if !p.IsEmpty() && !p.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidPiece, p)
	}
	b.cells[sq] = p
	return nil
}

// Find returns the first square holding p in scan order.
func (b *Board) Find(p Piece) (Square, bool) {
	for sq, cell := range b.cells {
		if cell == p {
			return Square(sq), true
		}
	}
	return 0, false
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			sb.WriteByte(b.cells[row*Cols+col].letter())
		}
		if row < Rows-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
