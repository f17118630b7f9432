package gamemaster

import (
	"dobutsu/game"
	"dobutsu/searcher"
	"dobutsu/searcher/agent"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Run("creates sessions keyed by uuid", func(t *testing.T) {
		m := NewManager()
		s1 := m.NewGame()
		s2 := m.NewGame()

		_, err := uuid.Parse(s1.ID)
		require.NoError(t, err)
		require.NotEqual(t, s1.ID, s2.ID)
		require.ElementsMatch(t, []string{s1.ID, s2.ID}, m.IDs())

		got, err := m.Get(s1.ID)
		require.NoError(t, err)
		require.Same(t, s1, got)
	})

	t.Run("plays validated moves", func(t *testing.T) {
		m := NewManager()
		s := m.NewGame()

		position, outcome, err := m.Play(s.ID, game.NewBoardMove(sq(3, 2), sq(2, 2)))
		require.NoError(t, err)
		require.False(t, outcome.IsOver())
		require.Equal(t, 1, position.Ply())

		_, _, err = m.Play(s.ID, game.NewBoardMove(sq(0, 1), sq(3, 1)))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, 1, s.Position().Ply())

		move, updated := s.Next()
		require.NotNil(t, updated)
		require.Equal(t, game.NewBoardMove(sq(3, 2), sq(2, 2)), move)
	})

	t.Run("unknown and deleted games", func(t *testing.T) {
		m := NewManager()
		_, err := m.Get("missing")
		require.ErrorIs(t, err, ErrGameNotFound)
		_, _, err = m.Play("missing", game.Move{})
		require.ErrorIs(t, err, ErrGameNotFound)

		s := m.NewGame()
		require.NoError(t, m.Delete(s.ID))
		require.ErrorIs(t, m.Delete(s.ID), ErrGameNotFound)
		require.Empty(t, m.IDs())
	})

	t.Run("agent moves finish a won game", func(t *testing.T) {
		m := NewManager()
		s := m.NewGameFrom(trialPosition(t))
		a := agent.NewSearchAgent(searcher.NewSearcher(game.EvaluateMaterial, searcher.WithDepth(2)))

		move, outcome, err := m.PlayAgent(s.ID, a)
		require.NoError(t, err)
		require.Equal(t, sq(0, 0).Row(), move.To.Row(), "the Lion walks to the far row")
		require.Equal(t, game.Outcome{Status: game.Win, Winner: game.South, Reason: game.ReasonTrial}, outcome)

		_, _, err = m.PlayAgent(s.ID, a)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("concurrent games do not interfere", func(t *testing.T) {
		m := NewManager()
		ids := make([]string, 8)
		for i := range ids {
			ids[i] = m.NewGame().ID
		}

		errs := make([]error, len(ids))
		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				a := agent.NewRandomAgent(uint64(i))
				for ply := 0; ply < 4; ply++ {
					if _, _, err := m.PlayAgent(id, a); err != nil {
						errs[i] = err
						return
					}
				}
			}(i, id)
		}
		wg.Wait()

		for i, id := range ids {
			require.NoError(t, errs[i])
			s, err := m.Get(id)
			require.NoError(t, err)
			require.Equal(t, 4, s.Position().Ply())
		}
	})
}
