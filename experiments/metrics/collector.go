package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth          int // Requested depth
	CompletedDepth int // Deepest iteration whose result was used
	Duration       time.Duration
	Nodes          int
	Cutoffs        int
	Candidates     int // Root moves sharing the best score
	Score          int
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	Move   string // Move notation
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Side name
	Winner         string // Side name, empty for a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	CompleteDepth(depth int)
	SetResult(score, candidates int)
	Complete() SearchMetric
}

type collector struct {
	depth          int
	startTime      time.Time
	nodes          atomic.Int64
	cutoffs        atomic.Int64
	completedDepth atomic.Int32
	score          int
	candidates     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.completedDepth.Store(int32(depth))
}

func (m *collector) SetResult(score, candidates int) {
	m.score = score
	m.candidates = candidates
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:          m.depth,
		CompletedDepth: int(m.completedDepth.Load()),
		Duration:       time.Since(m.startTime),
		Nodes:          int(m.nodes.Load()),
		Cutoffs:        int(m.cutoffs.Load()),
		Candidates:     m.candidates,
		Score:          m.score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) CompleteDepth(depth int)         {}
func (m *dummyCollector) SetResult(score, candidates int) {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
