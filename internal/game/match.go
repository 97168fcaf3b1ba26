// internal/game/match.go
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/cache"
	"github.com/jason-s-yu/qwirkle/internal/models"
	"github.com/sirupsen/logrus"
)

// recordTimeout caps how long an accepted move may hold the match lock
// while it is being recorded.
const recordTimeout = 2 * time.Second

// Recorder receives every move a Match accepts, in order.
type Recorder interface {
	PublishMove(ctx context.Context, record cache.MoveRecord) error
}

// Match owns the authoritative GameState of one game and applies moves to
// it one at a time. It does not decide whose turn it is.
type Match struct {
	mu       sync.Mutex
	state    GameState
	version  int
	recorder Recorder
	logger   logrus.FieldLogger
}

// NewMatch wraps a dealt state at version 0. recorder may be nil; a nil
// logger logs to the logrus standard logger.
func NewMatch(state GameState, recorder Recorder, logger logrus.FieldLogger) *Match {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Match{
		state:    state.Clone(),
		recorder: recorder,
		logger:   logger.WithField("game_id", state.ID),
	}
}

// ID returns the game id.
func (m *Match) ID() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ID
}

// State returns a copy of the current state and its version.
func (m *Match) State() (GameState, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone(), m.version
}

// View returns the current state as seen by playerID.
func (m *Match) View(playerID int) PlayerView {
	m.mu.Lock()
	defer m.mu.Unlock()
	view := ViewFor(m.state, playerID)
	view.Version = m.version
	return view
}

// Play applies move if it was made against the current version and passes
// ApplyLine. On success the version advances by one and the move is handed
// to the recorder; a recorder failure is logged and does not undo the move.
func (m *Match) Play(ctx context.Context, move models.Move) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.logger.WithFields(logrus.Fields{
		"player_id": move.PlayerID,
		"line_len":  len(move.Line),
		"version":   m.version,
	})

	if move.Version != m.version {
		log.WithField("move_version", move.Version).Warn("rejected stale move")
		return GameState{}, fmt.Errorf("move for version %d, game is at %d: %w", move.Version, m.version, ErrStaleVersion)
	}

	next, err := ApplyLine(m.state, move.PlayerID, move.Line)
	if err != nil {
		if IsRejection(err) {
			log.WithField("reason", err).Info("rejected move")
		} else {
			log.WithError(err).Warn("could not apply move")
		}
		return GameState{}, err
	}

	m.state = next
	m.version++
	log.WithField("deck_size", len(next.Deck)).Info("accepted move")

	if m.recorder != nil {
		record := cache.MoveRecord{
			GameID:    next.ID,
			Version:   m.version,
			PlayerID:  move.PlayerID,
			Line:      append([]models.Placement(nil), move.Line...),
			DeckSize:  len(next.Deck),
			Timestamp: time.Now().UnixMilli(),
		}
		pubCtx, cancel := context.WithTimeout(ctx, recordTimeout)
		err := m.recorder.PublishMove(pubCtx, record)
		cancel()
		if err != nil {
			log.WithError(err).Error("failed to record move")
		}
	}

	return next.Clone(), nil
}

// IsRejection reports whether err is a move the rules turned down, as opposed
// to a lookup or versioning failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrLineLength, ErrNotColinear, ErrDuplicateCell, ErrLineGap,
		ErrAttributeMismatch, ErrCellOccupied, ErrNotConnected,
		ErrNotTouchingBoard, ErrCardNotInHand,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
