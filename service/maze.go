package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxSize    = 200
	artifactKeyFmt    = "%s:%s:%s"
	defaultKeyPrefix  = "maze"
	defaultRenderWait = 5 * time.Second
)

var (
	ErrInvalidSize       = errors.New("maze size out of range")
	ErrMissingRepo       = errors.New("maze repository is required")
	ErrMissingLogger     = errors.New("logger is required")
	ErrUnsupportedFormat = errors.New("unsupported render format")
)

// Options tune a MazeService.
type Options struct {
	MaxSize    int           // Largest accepted side length
	KeyPrefix  string        // Prefix of artifact cache keys
	RenderWait time.Duration // Upper bound on waiting for a render lock
	Seeder     func() int64  // Picks seeds when callers do not supply one
}

// Config wires a MazeService to its collaborators.
type Config struct {
	Repo   i.MazeRepo
	Cache  i.ArtifactCache // Optional
	Logger i.Logger
	Opts   *Options
}

// MazeService generates mazes, stores their records and renders them on demand.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.ArtifactCache
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService, filling unset options with defaults.
func NewMazeService(cfg *Config) (*MazeService, error) {
	if cfg.Repo == nil {
		return nil, ErrMissingRepo
	}
	if cfg.Logger == nil {
		return nil, ErrMissingLogger
	}

	opts := cfg.Opts
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = defaultMaxSize
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = defaultKeyPrefix
	}
	if opts.RenderWait <= 0 {
		opts.RenderWait = defaultRenderWait
	}
	if opts.Seeder == nil {
		opts.Seeder = rand.Int63
	}

	return &MazeService{
		repo:   cfg.Repo,
		cache:  cfg.Cache,
		logger: cfg.Logger,
		opts:   opts,
	}, nil
}

// Generate carves a maze and stores its record.
func (s *MazeService) Generate(ctx context.Context, size int, seed *int64) (*dmn.MazeRecord, error) {
	if size < 0 || size > s.opts.MaxSize {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidSize, size, s.opts.MaxSize)
	}

	var chosen int64
	if seed != nil {
		chosen = *seed
	} else {
		chosen = s.opts.Seeder()
	}

	start := time.Now()
	m, err := maze.New(size, maze.WithSeed(chosen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	s.logger.Debug("maze carved", "size", size, "seed", chosen, "samples", m.Samples(), "took", time.Since(start).Round(time.Microsecond))

	record := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:         uuid.New(),
		Size:       size,
		Seed:       chosen,
		PathLength: m.PathLength(),
	})

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("saving maze record", "id", record.ID, "err", err)
		return nil, err
	}

	s.logger.Info("maze generated", "id", record.ID, "size", size, "path", record.PathLength)
	return record, nil
}

// Get returns the record of a stored maze.
func (s *MazeService) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Build rebuilds the maze described by a stored record.
func (s *MazeService) Build(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return maze.New(record.Size, maze.WithSeed(record.Seed))
}

// Render draws a stored maze, serving and filling the artifact cache when one is configured.
func (s *MazeService) Render(ctx context.Context, id uuid.UUID, format render.Format) ([]byte, error) {
	if _, err := render.ParseFormat(string(format)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	key := s.artifactKey(id, format)
	if data, ok := s.cached(ctx, key); ok {
		return data, nil
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		lockCtx, cancel := context.WithTimeout(ctx, s.opts.RenderWait)
		defer cancel()
		unlock, err := s.cache.Lock(lockCtx, key)
		if err != nil {
			s.logger.Warn("render lock unavailable, rendering without it", "key", key, "err", err)
		} else {
			defer unlock()
			// Another holder may have filled the cache while we waited.
			if data, ok := s.cached(ctx, key); ok {
				return data, nil
			}
		}
	}

	m, err := maze.New(record.Size, maze.WithSeed(record.Seed))
	if err != nil {
		return nil, err
	}

	data, err := render.Render(m, format)
	if err != nil {
		s.logger.Error("rendering maze", "id", id, "format", format, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			s.logger.Warn("caching rendered maze", "key", key, "err", err)
		}
	}

	s.logger.Info("maze rendered", "id", id, "format", format, "bytes", len(data))
	return data, nil
}

// cached looks key up in the artifact cache. Cache failures count as misses.
func (s *MazeService) cached(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("reading artifact cache", "key", key, "err", err)
		return nil, false
	}
	if hit {
		s.logger.Debug("artifact cache hit", "key", key)
	}
	return data, hit
}

func (s *MazeService) artifactKey(id uuid.UUID, format render.Format) string {
	return fmt.Sprintf(artifactKeyFmt, s.opts.KeyPrefix, id, format)
}
