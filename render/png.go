package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	colorWall       = color.RGBA{A: 0xff}
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDot        = color.RGBA{R: 0xff, A: 0xff}
)

// Picture is a maze drawn as an image.Image. Pixels are computed on demand.
type Picture struct {
	m    Maze
	side int
	size int
}

// NewPicture wraps m as an image.
func NewPicture(m Maze) *Picture {
	size, _ := CanvasSize(m.SideLength())
	return &Picture{m: m, side: m.SideLength(), size: size}
}

func (p *Picture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.size, p.size)
}

func (p *Picture) At(x, y int) color.Color {
	if p.side == 0 {
		return colorBackground
	}

	span := p.side * CellWidth
	lx, ly := x-Margin, y-Margin
	if lx < 0 || ly < 0 || lx > span || ly > span {
		return colorBackground
	}

	col, row := lx/CellWidth, ly/CellWidth
	ox, oy := lx%CellWidth, ly%CellWidth

	switch {
	case ox == 0 && oy == 0:
		// Corner post.
		return colorWall
	case ox == 0:
		if col < p.side {
			return p.wall(p.index(row, col), maze.West)
		}
		return p.wall(p.index(row, p.side-1), maze.East)
	case oy == 0:
		if row < p.side {
			return p.wall(p.index(row, col), maze.North)
		}
		return p.wall(p.index(p.side-1, col), maze.South)
	}

	if onPath(p.m, p.index(row, col)) {
		r := DotSize / 2
		cx, cy := ox-(DotMargin+r), oy-(DotMargin+r)
		if cx*cx+cy*cy <= r*r {
			return colorDot
		}
	}
	return colorBackground
}

func (p *Picture) index(row, col int) int {
	return row*p.side + col
}

func (p *Picture) wall(cell int, d maze.Direction) color.Color {
	if open(p.m, cell, d) {
		return colorBackground
	}
	return colorWall
}

// PNG encodes the maze picture as PNG.
func PNG(m Maze) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, NewPicture(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
