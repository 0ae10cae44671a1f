// Package store persists the running score between drill sessions.
package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/mdftrainer/internal/score"
)

// Store loads and saves the running score.
type Store interface {
	LoadScore(ctx context.Context) (score.RunningScore, error)
	SaveScore(ctx context.Context, s score.RunningScore) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	// Dir holds score.json for the file backend.
	Dir string

	// RedisURL and KeyPrefix configure the redis backend.
	RedisURL  string
	KeyPrefix string
}

// Open returns the store described by opts.
func Open(ctx context.Context, opts Options, logger *log.Logger) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		path := filepath.Join(opts.Dir, ScoreFileName)
		logger.Debug("Using file score store", "path", path)
		return NewFileStore(path), nil
	case BackendRedis:
		logger.Debug("Using redis score store", "prefix", opts.KeyPrefix)
		return NewRedisStore(ctx, opts.RedisURL, opts.KeyPrefix)
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}
