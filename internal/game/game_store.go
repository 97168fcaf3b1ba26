// internal/game/game_store.go
package game

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/models"
	"github.com/sirupsen/logrus"
)

// GameStore keeps the running matches by game id.
type GameStore struct {
	mu      sync.Mutex
	matches map[uuid.UUID]*Match

	Rules    HouseRules
	Recorder Recorder
	Logger   *logrus.Logger
}

func NewGameStore(rules HouseRules, recorder Recorder, logger *logrus.Logger) *GameStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GameStore{
		matches:  make(map[uuid.UUID]*Match),
		Rules:    rules,
		Recorder: recorder,
		Logger:   logger,
	}
}

// NewGame deals a game for playerCount players under the store's rules and
// registers it.
func (s *GameStore) NewGame(playerCount int) (*Match, error) {
	state, err := Deal(playerCount, s.Rules, nil)
	if err != nil {
		return nil, err
	}
	m := NewMatch(state, s.Recorder, s.Logger)
	s.AddGame(m)
	s.Logger.WithFields(logrus.Fields{
		"game_id": state.ID,
		"players": playerCount,
	}).Info("game created")
	return m, nil
}

func (s *GameStore) AddGame(m *Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID()] = m
}

func (s *GameStore) GetGame(id uuid.UUID) (*Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.matches[id]
	return m, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}

// List returns the ids of every registered game.
func (s *GameStore) List() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	return ids
}

// Play routes move to the game with the given id.
func (s *GameStore) Play(ctx context.Context, id uuid.UUID, move models.Move) (GameState, error) {
	m, ok := s.GetGame(id)
	if !ok {
		return GameState{}, ErrGameNotFound
	}
	return m.Play(ctx, move)
}
