package gamemaster

import (
	"dobutsu/game"
	"dobutsu/searcher/agent"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameNotFound = errors.New("game not found")

// Session is one refereed game.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	engine    *localEngine
	updates   UpdateGetter
}

func (s *Session) Position() *game.Position { return s.engine.Position() }
func (s *Session) Outcome() game.Outcome    { return s.engine.Outcome() }

// Next returns the oldest update not yet read from this session.
func (s *Session) Next() (game.Move, *game.Position) { return s.updates() }

// Manager keeps the sessions of concurrently running games.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

func (m *Manager) NewGame() *Session {
	return m.NewGameFrom(game.InitialPosition())
}

func (m *Manager) NewGameFrom(start *game.Position) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	engine := NewLocalEngine()
	_, updates := engine.InitFrom(start)
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		engine:    engine,
		updates:   updates,
	}
	m.games[s.ID] = s
	log.Debug().Msgf("created game %s", s.ID)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

// Play validates and applies move in game id.
func (m *Manager) Play(id string, move game.Move) (*game.Position, game.Outcome, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, game.Outcome{}, err
	}
	if err := s.engine.Play(move); err != nil {
		return s.Position(), s.Outcome(), fmt.Errorf("game %s: %w", id, err)
	}

	m.mu.Lock()
	s.UpdatedAt = time.Now()
	m.mu.Unlock()
	return s.Position(), s.Outcome(), nil
}

// PlayAgent asks a for a move on behalf of the side to move in game id and plays it.
func (m *Manager) PlayAgent(id string, a agent.Agent) (game.Move, game.Outcome, error) {
	s, err := m.Get(id)
	if err != nil {
		return game.Move{}, game.Outcome{}, err
	}
	if outcome := s.Outcome(); outcome.IsOver() {
		return game.Move{}, outcome, fmt.Errorf("game %s: %w (%v)", id, ErrGameOver, outcome)
	}
	move, _, err := a.FindMove(s.Position())
	if err != nil {
		return game.Move{}, s.Outcome(), fmt.Errorf("game %s: failed to find move: %w", id, err)
	}
	_, outcome, err := m.Play(id, move)
	return move, outcome, err
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// IDs lists the running games, oldest first.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sessions := make([]*Session, 0, len(m.games))
	for _, s := range m.games {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}
