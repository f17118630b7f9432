package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluationsAreZeroSum(t *testing.T) {
	positions := randomPositions(3, 20, 40)
	for _, name := range EvaluationNames() {
		evaluate, err := EvaluationByName(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			require.Zero(t, evaluate(InitialPosition(), South), "symmetric start")
			for _, p := range positions {
				require.Equal(t, -evaluate(p, North), evaluate(p, South), p.String())
			}
		})
	}
}

func TestEvaluateMaterial(t *testing.T) {
	p := InitialPosition().Play(NewBoardMove(sq(2, 1), sq(1, 1)))
	// South keeps its Chick on the board and holds North's in stock.
	require.Equal(t, 20, EvaluateMaterial(p, South))
	require.Equal(t, -20, EvaluateMaterial(p, North))

	hen := positionOf(t, map[Square]Piece{
		sq(0, 0): Hen(South),
		sq(3, 0): NewPiece(Lion, South),
		sq(0, 2): NewPiece(Lion, North),
	}, nil, []Piece{NewPiece(Chick, North)}, North)
	require.Equal(t, henValue-pieceValues[Chick], EvaluateMaterial(hen, South))
}

func TestEvaluationByName(t *testing.T) {
	require.Equal(t, []string{"balanced", "lion-safety", "material", "mobility"}, EvaluationNames())

	_, err := EvaluationByName("oracle")
	require.Error(t, err)
}
