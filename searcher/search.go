package searcher

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/meta"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// WinScore is the base score of a decided game. Terminal scores add the
	// remaining depth so that quicker wins and slower losses are preferred.
	WinScore = 1_000_000
	Infinity = 2 * WinScore
)

var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(s *Searcher)

type Searcher struct {
	depth    int
	duration time.Duration
	ordering bool
	seed     uint64
	evaluate game.Evaluate
	metrics  func() metrics.Collector

	mu  sync.Mutex // Guards rng
	rng *rand.Rand
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.seed = seed
	}
}

// WithOrdering toggles capture-first move ordering inside the tree. It only
// affects how much is pruned, never the result.
func WithOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}

// WithDuration turns on iterative deepening up to the configured depth. The
// depth-1 iteration always completes; deeper ones are abandoned at the deadline.
func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector
	}
}

func NewSearcher(evaluate game.Evaluate, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		ordering: true,
		seed:     meta.DEFAULT_SEED,
		evaluate: evaluate,
		metrics:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	if s.evaluate == nil {
		panic("Must specify an evaluation function")
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// ChooseBestMove scores every legal root move once and picks among the best
// with the searcher's seeded RNG. It fails with ErrNoLegalMoves when p is
// terminal.
func ChooseBestMove(p *game.Position, depth int, evaluate game.Evaluate, seed uint64) (game.Move, error) {
	s := NewSearcher(evaluate, WithDepth(depth), WithSeed(seed))
	move, _, err := s.ChooseBestMove(p)
	return move, err
}

func (s *Searcher) ChooseBestMove(p *game.Position) (game.Move, metrics.SearchMetric, error) {
	moves := p.LegalMoves()
	if p.OutcomeWith(moves).IsOver() || len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	r := s.newRun()
	r.collect.Start(s.depth)

	var best []game.Move
	var bestScore int
	if s.duration <= 0 {
		best, bestScore = r.scoreRoot(p, moves, s.depth)
		r.collect.CompleteDepth(s.depth)
	} else {
		deadline := time.Now().Add(s.duration)
		for depth := 1; depth <= s.depth; depth++ {
			if depth > 1 {
				r.deadline = deadline
			}
			candidates, score := r.scoreRoot(p, moves, depth)
			if r.aborted {
				log.Debug().Msgf("search deadline hit during depth %d, keeping depth %d", depth, depth-1)
				break
			}
			best, bestScore = candidates, score
			r.collect.CompleteDepth(depth)
			if time.Now().After(deadline) {
				break
			}
		}
	}

	r.collect.SetResult(bestScore, len(best))
	return s.pick(best), r.collect.Complete(), nil
}

// AlphaBeta returns the value of p searched to depth plies. The score is from
// the point of view of the side to move when maximizing, of its opponent
// otherwise.
func (s *Searcher) AlphaBeta(p *game.Position, depth, alpha, beta int, maximizing bool) int {
	return s.newRun().alphaBeta(p, depth, alpha, beta, maximizing)
}

func (s *Searcher) pick(candidates []game.Move) game.Move {
	if len(candidates) == 1 {
		return candidates[0]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}

// run holds the state of a single search call so that concurrent callers of
// one Searcher never share counters.
type run struct {
	evaluate game.Evaluate
	ordering bool
	collect  metrics.Collector
	deadline time.Time // Zero means no deadline
	visited  int
	aborted  bool
}

func (s *Searcher) newRun() *run {
	return &run{
		evaluate: s.evaluate,
		ordering: s.ordering,
		collect:  s.metrics(),
	}
}

// scoreRoot searches every root move in generator order with a full window
// and returns the moves sharing the best score.
func (r *run) scoreRoot(p *game.Position, moves []game.Move, depth int) ([]game.Move, int) {
	bestScore := -Infinity
	var best []game.Move
	for _, m := range moves {
		score := r.alphaBeta(p.Play(m), depth-1, -Infinity, Infinity, false)
		if r.aborted {
			return nil, 0
		}
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], m)
		case score == bestScore:
			best = append(best, m)
		}
	}
	return best, bestScore
}

func (r *run) alphaBeta(p *game.Position, depth, alpha, beta int, maximizing bool) int {
	r.collect.AddNode()
	perspective := p.ToMove()
	if !maximizing {
		perspective = perspective.Opponent()
	}

	if depth <= 0 {
		if outcome := p.Outcome(); outcome.IsOver() {
			return terminalScore(outcome, perspective, 0)
		}
		return r.evaluate(p, perspective)
	}

	moves := p.LegalMoves()
	if outcome := p.OutcomeWith(moves); outcome.IsOver() {
		return terminalScore(outcome, perspective, depth)
	}
	if r.expired() {
		r.aborted = true
		return 0
	}
	if r.ordering {
		orderMoves(p, moves)
	}

	if maximizing {
		value := -Infinity
		for _, m := range moves {
			value = max(value, r.alphaBeta(p.Play(m), depth-1, alpha, beta, false))
			if r.aborted {
				return 0
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				r.collect.AddCutoff()
				break
			}
		}
		return value
	}

	value := Infinity
	for _, m := range moves {
		value = min(value, r.alphaBeta(p.Play(m), depth-1, alpha, beta, true))
		if r.aborted {
			return 0
		}
		beta = min(beta, value)
		if alpha >= beta {
			r.collect.AddCutoff()
			break
		}
	}
	return value
}

// expired polls the clock every few hundred interior nodes.
func (r *run) expired() bool {
	if r.deadline.IsZero() {
		return false
	}
	r.visited++
	if r.visited%256 != 0 {
		return false
	}
	return time.Now().After(r.deadline)
}

// terminalScore scores a decided game for perspective, biased by the depth
// still remaining when it was reached.
func terminalScore(outcome game.Outcome, perspective game.Side, depth int) int {
	if !outcome.Decisive() {
		return 0
	}
	if outcome.Winner == perspective {
		return WinScore + depth
	}
	return -(WinScore + depth)
}
