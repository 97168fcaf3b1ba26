// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list (queue) name for accepted moves.
const DefaultQueueName = "qwirkle_moves"

// MoveRecord is one accepted move, in the order the game applied it.
type MoveRecord struct {
	GameID    uuid.UUID          `json:"game_id"`
	Version   int                `json:"version"` // state version produced by this move
	PlayerID  int                `json:"player_id"`
	Line      []models.Placement `json:"line"`
	DeckSize  int                `json:"deck_size"`
	Timestamp int64              `json:"timestamp"`
}

// Options selects the Redis server and queue.
type Options struct {
	Addr  string
	DB    int
	Queue string
}

// Publisher pushes move records onto a Redis list.
type Publisher struct {
	Client *redis.Client
	Queue  string
}

// Connect opens a client for opts and pings it with a 5 second timeout.
func Connect(ctx context.Context, opts Options) (*Publisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	queue := opts.Queue
	if queue == "" {
		queue = DefaultQueueName
	}
	return &Publisher{Client: rdb, Queue: queue}, nil
}

// PublishMove serializes the record to JSON and pushes it onto the queue.
func (p *Publisher) PublishMove(ctx context.Context, record MoveRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal MoveRecord: %w", err)
	}
	if err := p.Client.RPush(ctx, p.Queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.Queue, err)
	}
	return nil
}

// ReadMoves returns every record currently on the queue, oldest first.
func (p *Publisher) ReadMoves(ctx context.Context) ([]MoveRecord, error) {
	raw, err := p.Client.LRange(ctx, p.Queue, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to LRange Redis list '%s': %w", p.Queue, err)
	}
	records := make([]MoveRecord, 0, len(raw))
	for _, item := range raw {
		var rec MoveRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal MoveRecord: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases the Redis client.
func (p *Publisher) Close() error {
	return p.Client.Close()
}
