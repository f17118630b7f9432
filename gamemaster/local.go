package gamemaster

import (
	"dobutsu/game"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter pops the oldest unread update. The returned position is nil
// when there is none.
type UpdateGetter func() (game.Move, *game.Position)

type Engine interface {
	Init() (*game.Position, UpdateGetter)
	Play(game.Move) error
	Outcome() game.Outcome
}

type update struct {
	move     game.Move
	position *game.Position
}

// localEngine referees one game between untrusted callers: moves are checked
// against the legal move list before they reach Position.Play.
type localEngine struct {
	mu       sync.Mutex
	position *game.Position
	tracker  *game.Tracker
	outcome  game.Outcome
	updates  []update
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

func (e *localEngine) Init() (*game.Position, UpdateGetter) {
	return e.InitFrom(game.InitialPosition())
}

// InitFrom starts the game from an arbitrary position, e.g. a composed puzzle.
func (e *localEngine) InitFrom(start *game.Position) (*game.Position, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.position = start
	e.tracker = game.NewTracker()
	e.tracker.Record(start)
	e.outcome = e.tracker.Outcome(start)
	e.updates = nil

	return e.position, func() (game.Move, *game.Position) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if len(e.updates) == 0 {
			return game.Move{}, nil
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return u.move, u.position
	}
}

func (e *localEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.position == nil {
		return fmt.Errorf("game not initialized")
	}
	if e.outcome.IsOver() {
		return fmt.Errorf("%w (%v)", ErrGameOver, e.outcome)
	}
	if !e.position.IsLegal(move) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	e.position = e.position.Play(move)
	e.tracker.Record(e.position)
	e.outcome = e.tracker.Outcome(e.position)
	e.updates = append(e.updates, update{move: move, position: e.position})
	return nil
}

func (e *localEngine) Position() *game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

func (e *localEngine) Outcome() game.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome
}
