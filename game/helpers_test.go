package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// sq is MustSquare shortened for test tables.
func sq(row, col int) Square {
	return MustSquare(row, col)
}

func boardOf(t *testing.T, cells map[Square]Piece) Board {
	t.Helper()
	var b Board
	for square, piece := range cells {
		require.NoError(t, b.Set(square, piece))
	}
	return b
}

func positionOf(t *testing.T, cells map[Square]Piece, south, north []Piece, toMove Side) *Position {
	t.Helper()
	p, err := NewPosition(boardOf(t, cells), south, north, toMove)
	require.NoError(t, err)
	return p
}

// randomPositions collects every position visited by seeded random playouts
// from the initial position.
func randomPositions(seed uint64, games, maxPlies int) []*Position {
	rng := rand.New(rand.NewSource(seed))
	var out []*Position
	for g := 0; g < games; g++ {
		p := InitialPosition()
		for ply := 0; ply < maxPlies; ply++ {
			out = append(out, p)
			if p.Outcome().IsOver() {
				break
			}
			moves := p.LegalMoves()
			p = p.Play(moves[rng.Intn(len(moves))])
		}
	}
	return out
}
