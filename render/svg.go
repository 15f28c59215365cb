package render

import (
	"bytes"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	wallColor = "black"
	dotColor  = "red"
)

// SVG draws every standing wall as a line and every path cell as a dot.
// Both sides of an inner wall are drawn; they overlap exactly.
func SVG(m Maze) []byte {
	var buf bytes.Buffer
	side := m.SideLength()
	width, height := CanvasSize(side)

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="white"/>`+"\n", width, height)

	buf.WriteString(`  <g class="walls" stroke="` + wallColor + `" stroke-width="1" stroke-linecap="square">` + "\n")
	for cell := 0; cell < m.CellCount(); cell++ {
		for _, w := range cellWalls(m, cell) {
			fmt.Fprintf(&buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", w.x1, w.y1, w.x2, w.y2)
		}
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="path" fill="` + dotColor + `">` + "\n")
	r := DotSize / 2
	for cell := 0; cell < m.CellCount(); cell++ {
		if !onPath(m, cell) {
			continue
		}
		x, y := cellOrigin(side, cell)
		fmt.Fprintf(&buf, `    <circle cx="%d" cy="%d" r="%d"/>`+"\n", x+DotMargin+r, y+DotMargin+r, r)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// segment is a wall line in canvas coordinates.
type segment struct {
	x1, y1, x2, y2 int
}

// cellOrigin returns the canvas coordinates of a cell's top-left corner.
func cellOrigin(side, cell int) (x, y int) {
	row, col := cell/side, cell%side
	return col*CellWidth + Margin, row*CellWidth + Margin
}

// cellWalls returns the standing walls of a cell.
func cellWalls(m Maze, cell int) []segment {
	x, y := cellOrigin(m.SideLength(), cell)
	var walls []segment
	if !open(m, cell, maze.North) {
		walls = append(walls, segment{x, y, x + CellWidth, y})
	}
	if !open(m, cell, maze.South) {
		walls = append(walls, segment{x, y + CellWidth, x + CellWidth, y + CellWidth})
	}
	if !open(m, cell, maze.East) {
		walls = append(walls, segment{x + CellWidth, y, x + CellWidth, y + CellWidth})
	}
	if !open(m, cell, maze.West) {
		walls = append(walls, segment{x, y, x, y + CellWidth})
	}
	return walls
}
