package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialPosition(t *testing.T) {
	p := InitialPosition()

	require.Equal(t, South, p.ToMove())
	require.Equal(t, 0, p.Ply())
	require.Empty(t, p.Stock(South))
	require.Empty(t, p.Stock(North))

	b := p.Board()
	require.Equal(t, "gle/.c./.C./ELG", b.String())

	lion, ok := p.LionSquare(South)
	require.True(t, ok)
	require.Equal(t, sq(3, 1), lion)
	lion, ok = p.LionSquare(North)
	require.True(t, ok)
	require.Equal(t, sq(0, 1), lion)
}

func TestNewPosition(t *testing.T) {
	cells := map[Square]Piece{
		sq(3, 1): NewPiece(Lion, South),
		sq(0, 1): NewPiece(Lion, North),
	}

	t.Run("rejects promoted stock entries", func(t *testing.T) {
		_, err := NewPosition(boardOf(t, cells), []Piece{Hen(South)}, nil, South)
		require.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("rejects stock entries owned by the other side", func(t *testing.T) {
		_, err := NewPosition(boardOf(t, cells), nil, []Piece{NewPiece(Giraffe, South)}, South)
		require.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("rejects an invalid side to move", func(t *testing.T) {
		_, err := NewPosition(boardOf(t, cells), nil, nil, Side(7))
		require.Error(t, err)
	})

	t.Run("does not alias the caller's stock", func(t *testing.T) {
		south := []Piece{NewPiece(Elephant, South)}
		p, err := NewPosition(boardOf(t, cells), south, nil, North)
		require.NoError(t, err)
		south[0] = NewPiece(Giraffe, South)
		require.Equal(t, Stock{NewPiece(Elephant, South)}, p.Stock(South))
	})
}

func TestPlay(t *testing.T) {
	t.Run("capture moves the demoted piece into the mover's stock", func(t *testing.T) {
		parent := InitialPosition()
		child := parent.Play(NewBoardMove(sq(2, 1), sq(1, 1)))

		require.Equal(t, North, child.ToMove())
		require.Equal(t, 1, child.Ply())
		require.Equal(t, Stock{NewPiece(Chick, South)}, child.Stock(South))

		got, err := child.At(sq(1, 1))
		require.NoError(t, err)
		require.Equal(t, NewPiece(Chick, South), got)
		got, err = child.At(sq(2, 1))
		require.NoError(t, err)
		require.True(t, got.IsEmpty())
	})

	t.Run("leaves the parent untouched", func(t *testing.T) {
		parent := InitialPosition()
		before := parent.Key()
		_ = parent.Play(NewBoardMove(sq(2, 1), sq(1, 1)))

		require.Equal(t, before, parent.Key())
		require.Empty(t, parent.Stock(South))
		require.Equal(t, 0, parent.Ply())
	})

	t.Run("promoted chick returns to the captor's stock as a plain chick", func(t *testing.T) {
		p := positionOf(t, map[Square]Piece{
			sq(1, 2): NewPiece(Chick, South),
			sq(0, 1): NewPiece(Lion, North),
			sq(3, 0): NewPiece(Lion, South),
		}, nil, nil, South)

		promote := NewBoardMove(sq(1, 2), sq(0, 2))
		require.True(t, p.IsLegal(promote))
		require.Equal(t, "Cc3-c4+", p.Notation(promote))

		p = p.Play(promote)
		got, err := p.At(sq(0, 2))
		require.NoError(t, err)
		require.Equal(t, Hen(South), got)
		require.True(t, p.InCheck(North))

		take := NewBoardMove(sq(0, 1), sq(0, 2))
		require.True(t, p.IsLegal(take))
		require.Equal(t, "lb4xc4", p.Notation(take))

		p = p.Play(take)
		require.Equal(t, Stock{NewPiece(Chick, North)}, p.Stock(North))
		require.Empty(t, p.Stock(South))
	})

	t.Run("drop places the stock entry and removes it", func(t *testing.T) {
		p := positionOf(t, map[Square]Piece{
			sq(3, 0): NewPiece(Lion, South),
			sq(0, 2): NewPiece(Lion, North),
		}, []Piece{NewPiece(Giraffe, South), NewPiece(Chick, South)}, []Piece{NewPiece(Elephant, North)}, South)

		drop := NewDropMove(1, sq(2, 1))
		require.Equal(t, "C*b2", p.Notation(drop))

		child := p.Play(drop)
		got, err := child.At(sq(2, 1))
		require.NoError(t, err)
		require.Equal(t, NewPiece(Chick, South), got)
		require.Equal(t, Stock{NewPiece(Giraffe, South)}, child.Stock(South))
		require.Equal(t, Stock{NewPiece(Elephant, North)}, child.Stock(North))

		require.Len(t, p.Stock(South), 2)
	})

	t.Run("contract violations panic", func(t *testing.T) {
		p := InitialPosition()
		require.Panics(t, func() { p.Play(NewBoardMove(sq(1, 0), sq(0, 0))) }, "empty origin")
		require.Panics(t, func() { p.Play(NewBoardMove(sq(1, 1), sq(2, 1))) }, "opponent's piece")
		require.Panics(t, func() { p.Play(NewBoardMove(sq(3, 1), sq(3, 0))) }, "own piece on destination")
		require.Panics(t, func() { p.Play(NewDropMove(0, sq(1, 0))) }, "empty stock")
		require.Panics(t, func() { p.Play(NewBoardMove(sq(3, 1), Square(NumSquares))) }, "off-board destination")
		require.Panics(t, func() { p.Play(NewBoardMove(sq(3, 1), sq(1, 0))) }, "lion jumping two rows")
		require.Panics(t, func() { p.Play(NewBoardMove(sq(3, 0), sq(2, 0))) }, "elephant moving straight ahead")

		withChick := positionOf(t, map[Square]Piece{
			sq(3, 0): NewPiece(Lion, South),
			sq(0, 2): NewPiece(Lion, North),
		}, []Piece{NewPiece(Chick, South)}, nil, South)
		require.Panics(t, func() { withChick.Play(NewDropMove(0, sq(0, 0))) }, "chick dropped on the far row")
		require.NotPanics(t, func() { withChick.Play(NewDropMove(0, sq(1, 0))) })
	})

	t.Run("ApplyMove is Play", func(t *testing.T) {
		p := InitialPosition()
		m := NewBoardMove(sq(3, 2), sq(2, 2))
		require.Equal(t, p.Play(m).Key(), ApplyMove(p, m).Key())
	})
}
