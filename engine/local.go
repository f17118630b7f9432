package engine

import (
	"dobutsu/experiments/metrics"
	"dobutsu/game"
	"dobutsu/meta"
	"dobutsu/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State    *game.Position
	Agents   [game.NumSides]agent.Agent // Indexed by game.Side
	MaxTurns int
	History  []Update
}

type Update struct {
	Move     game.Move
	Position *game.Position
	Hash     game.StateHash
}

// NewLocalEngine pits south against north from the initial position.
func NewLocalEngine(south, north agent.Agent) *LocalEngine {
	if south == nil || north == nil {
		panic("need an agent for each side")
	}
	return &LocalEngine{
		State:    game.InitialPosition(),
		Agents:   [game.NumSides]agent.Agent{game.South: south, game.North: north},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game is over or MaxTurns plies were played.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	tracker := game.NewTracker()
	tracker.Record(e.State)

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ToMove().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.State.ToMove())

	outcome := tracker.Outcome(e.State)
	turn := 1
	for !outcome.IsOver() && turn <= e.MaxTurns {
		mover := e.State.ToMove()
		move, searchMetric := e.findMove(mover)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       mover.String(),
			Move:         e.State.Notation(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %v plays %s", turn, mover, e.State.Notation(move))

		e.State = e.State.Play(move)
		tracker.Record(e.State)
		e.History = append(e.History, Update{
			Move:     move,
			Position: e.State,
			Hash:     e.State.Hash(),
		})

		outcome = tracker.Outcome(e.State)
		turn++
	}

	if !outcome.IsOver() {
		log.Info().Msgf("stopped after %d turns without a result", e.MaxTurns)
		outcome = game.Outcome{Status: game.Draw, Reason: game.ReasonMoveLimit}
	}
	log.Info().Msgf("game over after %d turns: %v", len(e.History), outcome)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)
	gameMetric.Reason = outcome.Reason.String()
	if outcome.Decisive() {
		gameMetric.Winner = outcome.Winner.String()
	}
	return outcome, gameMetric, moveMetrics
}

// findMove asks mover's agent for a move, falling back to the first legal
// move when the agent fails or answers with an illegal one.
func (e *LocalEngine) findMove(mover game.Side) (game.Move, metrics.SearchMetric) {
	candidate, searchMetric, err := e.Agents[mover].FindMove(e.State)
	if err == nil && e.State.IsLegal(candidate) {
		return candidate, searchMetric
	}

	if err != nil {
		log.Warn().Err(err).Msgf("%v agent failed to find a move, forcing first legal move", mover)
	} else {
		log.Warn().Msgf("%v agent returned illegal move %v, forcing first legal move", mover, candidate)
	}
	fallback := e.State.LegalMoves()
	if len(fallback) == 0 {
		panic("No legal moves at all!")
	}
	return fallback[0], searchMetric
}
