/*
Package maze generates perfect square mazes and solves them.

A maze of side N is a grid of N*N cells laid out row-major. Walls are removed
with a randomized Kruskal variant backed by a DisjointSet until the open
passages form a spanning tree, so exactly one path joins any two cells. The
path from the top-left cell (the entrance) to the bottom-right cell (the exit)
is then recovered with an iterative depth-first traversal, and the outer walls
west of the entrance and east of the exit are opened.

A Maze is immutable once New returns and is safe for concurrent reads.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidSize      = errors.New("invalid maze size")
	ErrIndexOutOfRange  = errors.New("cell index out of range")
	ErrMissingRandomSrc = errors.New("random source is nil")
)

// Option configures maze construction.
type Option func(*options)

type options struct {
	rng    RandomSource
	custom bool
	seed   int64
	seeded bool
}

// WithSeed makes construction deterministic: equal seeds and sizes give equal mazes.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.rng = nil
		o.custom = false
	}
}

// WithRandSource carves with r instead of a freshly seeded generator.
func WithRandSource(r RandomSource) Option {
	return func(o *options) {
		o.rng = r
		o.custom = true
		o.seeded = false
	}
}

// Maze is a carved and solved maze.
type Maze struct {
	grid    *Grid
	onPath  []bool
	path    []int
	seed    int64
	seeded  bool
	samples int
}

// New carves and solves a maze with the given side length.
// A side of 0 yields an empty maze; a negative side is rejected.
func New(side int, opts ...Option) (*Maze, error) {
	if side < 0 {
		return nil, ErrInvalidSize
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.custom && o.rng == nil {
		return nil, ErrMissingRandomSrc
	}
	if !o.custom {
		if !o.seeded {
			o.seed = time.Now().UnixNano()
			o.seeded = true
		}
		o.rng = rand.New(rand.NewSource(o.seed))
	}

	grid := NewGrid(side)
	carver := NewCarver(grid, o.rng)
	carver.Carve()

	onPath := NewPathFinder(grid).Solve()

	m := &Maze{
		grid:    grid,
		onPath:  onPath,
		seed:    o.seed,
		seeded:  o.seeded,
		samples: carver.Samples(),
	}
	m.path = m.collectPath()

	if grid.Len() > 0 {
		_ = grid.OpenBorder(0, West)
		_ = grid.OpenBorder(grid.Len()-1, East)
	}

	return m, nil
}

// collectPath lists the on-path cells in order from the entrance to the exit.
func (m *Maze) collectPath() []int {
	n := m.grid.Len()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	path := []int{n - 1}
	for current := m.grid.Cell(n - 1).VisitedBy; current != Unvisited; current = m.grid.Cell(current).VisitedBy {
		path = append(path, current)
		if current == 0 {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// SideLength returns the number of cells along one side.
func (m *Maze) SideLength() int {
	return m.grid.Side()
}

// CellCount returns SideLength squared.
func (m *Maze) CellCount() int {
	return m.grid.Len()
}

// Entrance returns the index of the entrance cell.
func (m *Maze) Entrance() int {
	return 0
}

// Exit returns the index of the exit cell, or -1 for an empty maze.
func (m *Maze) Exit() int {
	return m.grid.Len() - 1
}

// IsWallOpen reports whether side d of the given cell is passable.
func (m *Maze) IsWallOpen(cell int, d Direction) (bool, error) {
	if !m.grid.InBound(cell) {
		return false, ErrIndexOutOfRange
	}
	if !d.Valid() {
		return false, ErrInvalidDirection
	}
	return m.grid.Cell(cell).IsOpen(d), nil
}

// IsOnPath reports whether the given cell lies on the entrance-exit path.
func (m *Maze) IsOnPath(cell int) (bool, error) {
	if !m.grid.InBound(cell) {
		return false, ErrIndexOutOfRange
	}
	return m.onPath[cell], nil
}

// Path returns the solution cells in order from entrance to exit.
func (m *Maze) Path() []int {
	return append([]int(nil), m.path...)
}

// PathLength returns the number of cells on the solution path.
func (m *Maze) PathLength() int {
	return len(m.path)
}

// Index converts a row and column into a cell index.
func (m *Maze) Index(row, col int) (int, error) {
	side := m.grid.Side()
	if row < 0 || row >= side || col < 0 || col >= side {
		return 0, ErrIndexOutOfRange
	}
	return m.grid.Index(row, col), nil
}

// Position converts a cell index into its row and column.
func (m *Maze) Position(cell int) (row, col int, err error) {
	if !m.grid.InBound(cell) {
		return 0, 0, ErrIndexOutOfRange
	}
	row, col = m.grid.Position(cell)
	return row, col, nil
}

// Seed returns the seed the maze was carved with, if it is known.
func (m *Maze) Seed() (int64, bool) {
	return m.seed, m.seeded
}

// Samples returns how many wall samples carving drew.
func (m *Maze) Samples() int {
	return m.samples
}

// Draw renders the maze as ASCII art, printing mark in every path cell.
func (m *Maze) Draw(mark string) string {
	var sb strings.Builder
	side := m.grid.Side()

	// Top boundary
	sb.WriteString("+")
	for col := 0; col < side; col++ {
		if m.grid.Cell(col).IsOpen(North) {
			sb.WriteString("   +")
		} else {
			sb.WriteString("---+")
		}
	}
	sb.WriteString("\n")

	for row := 0; row < side; row++ {
		// Cell row
		if m.grid.Cell(m.grid.Index(row, 0)).IsOpen(West) {
			sb.WriteString(" ")
		} else {
			sb.WriteString("|")
		}
		for col := 0; col < side; col++ {
			i := m.grid.Index(row, col)
			if m.onPath[i] {
				sb.WriteString(" " + mark + " ")
			} else {
				sb.WriteString("   ")
			}

			if m.grid.Cell(i).IsOpen(East) {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		// Wall row
		sb.WriteString("+")
		for col := 0; col < side; col++ {
			if m.grid.Cell(m.grid.Index(row, col)).IsOpen(South) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Draw("*")
}
