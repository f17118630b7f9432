package experiments

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Stat struct {
	Mean   float64
	StdDev float64
	Median float64
}

func describeSample(x []float64) Stat {
	if len(x) == 0 {
		return Stat{}
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return Stat{
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
}

type AgentScore struct {
	ID     int
	Wins   int
	Losses int
	Draws  int
	Points float64 // 1 per win, 0.5 per draw
}

// DepthCost describes the search cost of the moves searched at one depth.
type DepthCost struct {
	Depth      int
	Moves      int
	Nodes      Stat
	MoveTimeMs Stat
}

type Summary struct {
	Games      int
	Draws      int
	Scores     []AgentScore // In config order
	GameLength Stat         // Moves per game
	Nodes      Stat         // Nodes per searched move
	MoveTimeMs Stat         // Milliseconds per searched move
	TotalNodes float64
	ByDepth    []DepthCost // Ascending by configured depth
}

// Summarize tallies results per agent and describes game length and search
// cost. Moves without search metrics (random agents) are left out of the
// search statistics.
func Summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) Summary {
	index := make(map[int]int, len(configs))
	scores := make([]AgentScore, len(configs))
	for i, config := range configs {
		index[config.ID] = i
		scores[i].ID = config.ID
	}
	tally := func(id int, update func(s *AgentScore)) {
		if i, ok := index[id]; ok {
			update(&scores[i])
		}
	}

	summary := Summary{Games: len(games)}
	lengths := make([]float64, 0, len(games))
	for _, record := range games {
		lengths = append(lengths, float64(record.TotalMoves))
		switch record.Winner {
		case game.South.String():
			tally(record.Agent1, func(s *AgentScore) { s.Wins++; s.Points++ })
			tally(record.Agent2, func(s *AgentScore) { s.Losses++ })
		case game.North.String():
			tally(record.Agent2, func(s *AgentScore) { s.Wins++; s.Points++ })
			tally(record.Agent1, func(s *AgentScore) { s.Losses++ })
		default:
			summary.Draws++
			draw := func(s *AgentScore) { s.Draws++; s.Points += 0.5 }
			tally(record.Agent1, draw)
			if record.Agent2 != record.Agent1 {
				tally(record.Agent2, draw)
			}
		}
	}

	var nodes, times []float64
	depthNodes := make(map[int][]float64)
	depthTimes := make(map[int][]float64)
	for _, record := range moves {
		if record.Depth == 0 {
			continue
		}
		n := float64(record.Nodes)
		ms := float64(record.Duration.Microseconds()) / 1000
		nodes = append(nodes, n)
		times = append(times, ms)
		depthNodes[record.Depth] = append(depthNodes[record.Depth], n)
		depthTimes[record.Depth] = append(depthTimes[record.Depth], ms)
	}

	for depth, sample := range depthNodes {
		summary.ByDepth = append(summary.ByDepth, DepthCost{
			Depth:      depth,
			Moves:      len(sample),
			Nodes:      describeSample(sample),
			MoveTimeMs: describeSample(depthTimes[depth]),
		})
	}
	sort.Slice(summary.ByDepth, func(i, j int) bool { return summary.ByDepth[i].Depth < summary.ByDepth[j].Depth })

	summary.Scores = scores
	summary.GameLength = describeSample(lengths)
	summary.Nodes = describeSample(nodes)
	summary.MoveTimeMs = describeSample(times)
	summary.TotalNodes = floats.Sum(nodes)
	return summary
}
