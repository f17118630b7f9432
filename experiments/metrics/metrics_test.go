package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("collector accumulates counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)
		for i := 0; i < 10; i++ {
			c.AddNode()
		}
		c.AddCutoff()
		c.CompleteDepth(3)
		c.SetResult(-25, 2)

		metric := c.Complete()
		require.Equal(t, 4, metric.Depth)
		require.Equal(t, 3, metric.CompletedDepth)
		require.Equal(t, 10, metric.Nodes)
		require.Equal(t, 1, metric.Cutoffs)
		require.Equal(t, -25, metric.Score)
		require.Equal(t, 2, metric.Candidates)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddNode()
		c.SetResult(1, 1)
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "round-robin")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Strategy: "material", Depth: 3, Seed: 7},
		{ID: 2, Strategy: RandomStrategy, Seed: 9, Duration: 50 * time.Millisecond},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: "South", Winner: "South", Reason: "capture", TotalMoves: 17}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "South", Move: "Cb2xb3", SearchMetric: SearchMetric{Depth: 3, Nodes: 120}}},
	}))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"2", "random", "0", "9", "50ms"}, rows[2])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "capture", rows[1][5])
	require.Equal(t, "17", rows[1][9])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "Cb2xb3", rows[1][3])
	require.Equal(t, "120", rows[1][7])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
