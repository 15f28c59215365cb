package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const pathMark = "*"

var (
	colorRed = lipgloss.Color("167")

	stylePath = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// ASCII draws m as plain text.
func ASCII(m Maze) string {
	return drawASCII(m, pathMark)
}

// ColorASCII draws m as text with the path highlighted for terminals.
func ColorASCII(m Maze) string {
	return drawASCII(m, stylePath.Render(pathMark))
}

func drawASCII(m Maze, mark string) string {
	var sb strings.Builder
	side := m.SideLength()
	index := func(row, col int) int { return row*side + col }

	// Top boundary
	sb.WriteString("+")
	for col := 0; col < side; col++ {
		sb.WriteString(horizontal(open(m, index(0, col), maze.North)))
	}
	sb.WriteString("\n")

	for row := 0; row < side; row++ {
		if open(m, index(row, 0), maze.West) {
			sb.WriteString(" ")
		} else {
			sb.WriteString("|")
		}

		for col := 0; col < side; col++ {
			i := index(row, col)
			if onPath(m, i) {
				sb.WriteString(" " + mark + " ")
			} else {
				sb.WriteString("   ")
			}

			if open(m, i, maze.East) {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for col := 0; col < side; col++ {
			sb.WriteString(horizontal(open(m, index(row, col), maze.South)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func horizontal(isOpen bool) string {
	if isOpen {
		return "   +"
	}
	return "---+"
}
