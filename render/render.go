package render

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	CellWidth = 20 // Size of a maze square in pixels.
	Margin    = 50 // Space between the canvas edge and the maze.
	DotSize   = 10 // Diameter of a path dot.
	DotMargin = 5  // Space between a wall and a path dot.
)

// Format names an output format.
type Format string

const (
	FormatASCII Format = "ascii"
	FormatSVG   Format = "svg"
	FormatPNG   Format = "png"
	FormatDOT   Format = "dot"
	FormatTree  Format = "tree"
)

// Formats lists every supported format.
var Formats = []Format{FormatASCII, FormatSVG, FormatPNG, FormatDOT, FormatTree}

var ErrUnknownFormat = errors.New("unknown render format")

// Maze is the query surface renderers draw from.
type Maze interface {
	SideLength() int
	CellCount() int
	IsWallOpen(cell int, d maze.Direction) (bool, error)
	IsOnPath(cell int) (bool, error)
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of a rendered format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG, FormatTree:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render draws m in the given format.
func Render(m Maze, f Format) ([]byte, error) {
	switch f {
	case FormatASCII:
		return []byte(ASCII(m)), nil
	case FormatSVG:
		return SVG(m), nil
	case FormatPNG:
		return PNG(m)
	case FormatDOT:
		return []byte(ToDOT(m)), nil
	case FormatTree:
		return TreeSVG(m)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// CanvasSize returns the width and height in pixels needed to draw a maze of the given side.
func CanvasSize(side int) (width, height int) {
	size := side*CellWidth + 2*Margin
	return size, size
}

// open reports whether a side is passable. Renderers only ask about
// cells in [0, CellCount), so errors are treated as closed walls.
func open(m Maze, cell int, d maze.Direction) bool {
	ok, err := m.IsWallOpen(cell, d)
	return err == nil && ok
}

func onPath(m Maze, cell int) bool {
	ok, err := m.IsOnPath(cell)
	return err == nil && ok
}
