// internal/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/jason-s-yu/qwirkle/internal/cache"
	"github.com/jason-s-yu/qwirkle/internal/game"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is everything read from the environment.
type Config struct {
	Rules    game.HouseRules
	Redis    cache.Options
	LogLevel logrus.Level
}

// Load reads the optional env files (".env" when none are given) into the
// process environment, then builds a Config from it. Variables already set
// in the environment win over the files. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	rules := game.DefaultHouseRules()
	handSize, err := getEnvInt("QWIRKLE_HAND_SIZE", rules.HandSize)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("QWIRKLE_SHUFFLE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	rules.HandSize = handSize
	rules.ShuffleSeed = int64(seed)
	if rules.HandSize < 1 {
		return Config{}, fmt.Errorf("QWIRKLE_HAND_SIZE must be at least 1, got %d", rules.HandSize)
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		Rules: rules,
		Redis: cache.Options{
			Addr:  getEnv("REDIS_ADDR", "localhost:6379"),
			DB:    redisDB,
			Queue: getEnv("HISTORIAN_QUEUE_NAME", cache.DefaultQueueName),
		},
		LogLevel: level,
	}, nil
}

// NewLogger returns a logrus logger at the configured level.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	return logger
}

// NewGameStore builds a game store with the configured rules. Accepted moves
// are published to Redis when it answers; otherwise the store runs without a
// move log. The returned func releases the Redis client.
func (c Config) NewGameStore(ctx context.Context, logger *logrus.Logger) (*game.GameStore, func()) {
	pub, err := cache.Connect(ctx, c.Redis)
	if err != nil {
		logger.WithError(err).Warn("move log disabled")
		return game.NewGameStore(c.Rules, nil, logger), func() {}
	}
	logger.WithField("queue", pub.Queue).Info("publishing moves to Redis")
	return game.NewGameStore(c.Rules, pub, logger), func() { pub.Close() }
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt parses an environment variable as an integer, or returns def when it is unset.
func getEnvInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, s)
	}
	return v, nil
}
