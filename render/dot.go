package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// ToDOT converts the open passages of a maze to an undirected Graphviz graph.
// Cells are pinned to their grid position and path cells are filled red.
func ToDOT(m Maze) string {
	var buf bytes.Buffer
	side := m.SideLength()

	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, width=0.3, fixedsize=true, fontsize=8, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for cell := 0; cell < m.CellCount(); cell++ {
		row, col := cell/side, cell%side
		attrs := fmt.Sprintf("pos=\"%d,%d!\"", col, -row)
		if onPath(m, cell) {
			attrs += ", fillcolor=red, fontcolor=white"
		}
		fmt.Fprintf(&buf, "  c%d [label=\"%d\", %s];\n", cell, cell, attrs)
	}

	buf.WriteString("\n")
	for cell := 0; cell < m.CellCount(); cell++ {
		col := cell % side
		if col+1 < side && open(m, cell, maze.East) {
			fmt.Fprintf(&buf, "  c%d -- c%d;\n", cell, cell+1)
		}
		if cell+side < m.CellCount() && open(m, cell, maze.South) {
			fmt.Fprintf(&buf, "  c%d -- c%d;\n", cell, cell+side)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// TreeSVG lays out the DOT graph of m with Graphviz and returns SVG.
func TreeSVG(m Maze) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(m)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
