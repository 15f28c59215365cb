package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]dmn.MazeRecord
	saveErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: map[uuid.UUID]dmn.MazeRecord{}}
}

func (r *memoryRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return &record, nil
}

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	sets    int
	locks   int
	getErr  error
	lockErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	data, ok := c.data[key]
	return data, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memoryCache) Lock(_ context.Context, _ string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {}, nil
}

func newTestService(t *testing.T, repo *memoryRepo, cache *memoryCache) *MazeService {
	t.Helper()
	cfg := &Config{
		Repo:   repo,
		Logger: charmlog.New(io.Discard),
		Opts:   &Options{MaxSize: 30, Seeder: func() int64 { return 1234 }},
	}
	if cache != nil {
		cfg.Cache = cache
	}
	svc, err := NewMazeService(cfg)
	require.NoError(t, err)
	return svc
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(&Config{Logger: charmlog.New(io.Discard)})
	assert.ErrorIs(t, err, ErrMissingRepo)

	_, err = NewMazeService(&Config{Repo: newMemoryRepo()})
	assert.ErrorIs(t, err, ErrMissingLogger)

	svc, err := NewMazeService(&Config{Repo: newMemoryRepo(), Logger: charmlog.New(io.Discard)})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxSize, svc.opts.MaxSize)
	assert.Equal(t, defaultKeyPrefix, svc.opts.KeyPrefix)
	assert.NotNil(t, svc.opts.Seeder)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores record with chosen seed", func(t *testing.T) {
		repo := newMemoryRepo()
		svc := newTestService(t, repo, nil)

		record, err := svc.Generate(ctx, 6, nil)
		require.NoError(t, err)
		assert.Equal(t, 6, record.Size)
		assert.Equal(t, int64(1234), record.Seed)

		m, err := maze.New(6, maze.WithSeed(1234))
		require.NoError(t, err)
		assert.Equal(t, m.PathLength(), record.PathLength)

		stored, err := svc.Get(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, stored.ID)
	})

	t.Run("uses caller seed", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), nil)
		seed := int64(77)
		record, err := svc.Generate(ctx, 3, &seed)
		require.NoError(t, err)
		assert.Equal(t, seed, record.Seed)
	})

	t.Run("empty maze is allowed", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), nil)
		record, err := svc.Generate(ctx, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, record.PathLength)
	})

	t.Run("rejects out of range sizes", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), nil)
		_, err := svc.Generate(ctx, -1, nil)
		assert.ErrorIs(t, err, ErrInvalidSize)
		_, err = svc.Generate(ctx, 31, nil)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("surfaces repository errors", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.saveErr = errors.New("disk full")
		svc := newTestService(t, repo, nil)
		_, err := svc.Generate(ctx, 2, nil)
		assert.EqualError(t, err, "disk full")
	})
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo(), nil)

	record, err := svc.Generate(ctx, 9, nil)
	require.NoError(t, err)

	m, err := svc.Build(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.PathLength, m.PathLength())

	_, err = svc.Build(ctx, uuid.New())
	assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
}

func TestRender(t *testing.T) {
	ctx := context.Background()

	t.Run("renders without cache", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), nil)
		record, err := svc.Generate(ctx, 4, nil)
		require.NoError(t, err)

		data, err := svc.Render(ctx, record.ID, render.FormatASCII)
		require.NoError(t, err)

		m, err := maze.New(4, maze.WithSeed(record.Seed))
		require.NoError(t, err)
		assert.Equal(t, m.String(), string(data))
	})

	t.Run("fills then serves cache", func(t *testing.T) {
		cache := newMemoryCache()
		svc := newTestService(t, newMemoryRepo(), cache)
		record, err := svc.Generate(ctx, 4, nil)
		require.NoError(t, err)

		first, err := svc.Render(ctx, record.ID, render.FormatSVG)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 1, cache.locks)

		second, err := svc.Render(ctx, record.ID, render.FormatSVG)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 1, cache.locks)
		assert.Contains(t, cache.data, "maze:"+record.ID.String()+":svg")
	})

	t.Run("cache failures fall back to rendering", func(t *testing.T) {
		cache := newMemoryCache()
		cache.getErr = errors.New("redis down")
		cache.lockErr = errors.New("redis down")
		svc := newTestService(t, newMemoryRepo(), cache)
		record, err := svc.Generate(ctx, 3, nil)
		require.NoError(t, err)

		data, err := svc.Render(ctx, record.ID, render.FormatDOT)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("unknown maze", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), newMemoryCache())
		_, err := svc.Render(ctx, uuid.New(), render.FormatASCII)
		assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
	})

	t.Run("unsupported format", func(t *testing.T) {
		svc := newTestService(t, newMemoryRepo(), nil)
		_, err := svc.Render(ctx, uuid.New(), render.Format("gif"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
