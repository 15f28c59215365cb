// Package mazeapi provides the request and response shapes of the maze API.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// CreateMazeRequest asks for a new maze.
type CreateMazeRequest struct {
	Size *int   `json:"size" binding:"required,min=0"`
	Seed *int64 `json:"seed"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Seed       int64     `json:"seed"`
	PathLength int       `json:"path_length"`
	CreatedAt  time.Time `json:"created_at"`
}

// CellPosition is a cell's row and column.
type CellPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PathResponse lists the solution cells from entrance to exit.
type PathResponse struct {
	ID    string         `json:"id"`
	Cells []int          `json:"cells"`
	Steps []CellPosition `json:"steps"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:         r.ID.String(),
		Size:       r.Size,
		Seed:       r.Seed,
		PathLength: r.PathLength,
		CreatedAt:  r.CreatedAt,
	}
}
