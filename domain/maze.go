// Package domain holds the records persisted by the maze service.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
)

// MazeRecord describes a generated maze. A maze is fully determined by its
// size and seed, so the record is enough to rebuild it.
type MazeRecord struct {
	ID         uuid.UUID // Unique identifier of the maze
	Size       int       // Side length in cells
	Seed       int64     // Seed the maze was carved with
	PathLength int       // Number of cells on the entrance-exit path
	CreatedAt  time.Time // Generation time (UTC)
}

// MazeRecordConfig holds parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	ID         uuid.UUID
	Size       int
	Seed       int64
	PathLength int
}

// NewMazeRecord creates a MazeRecord stamped with the current time.
func NewMazeRecord(config MazeRecordConfig) *MazeRecord {
	return &MazeRecord{
		ID:         config.ID,
		Size:       config.Size,
		Seed:       config.Seed,
		PathLength: config.PathLength,
		CreatedAt:  time.Now().UTC(),
	}
}
