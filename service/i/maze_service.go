package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/google/uuid"
)

// MazeService generates mazes and serves their renderings.
type MazeService interface {
	// Generate carves a maze of the given size. A nil seed picks one at random.
	Generate(ctx context.Context, size int, seed *int64) (*dmn.MazeRecord, error)

	// Get returns the record of a generated maze.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Build rebuilds a generated maze from its record.
	Build(ctx context.Context, id uuid.UUID) (*maze.Maze, error)

	// Render draws a generated maze in the given format.
	Render(ctx context.Context, id uuid.UUID, format render.Format) ([]byte, error)
}
