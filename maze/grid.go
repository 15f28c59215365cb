package maze

import "errors"

var (
	ErrNoNeighbor       = errors.New("no neighbor in that direction")
	ErrNotBorder        = errors.New("edge is not on the grid border")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Grid is a flat, row-major store of side*side cells.
type Grid struct {
	side  int
	cells []Cell
}

// NewGrid builds a side x side grid with every inner wall standing and
// the outer ring marked as Border.
func NewGrid(side int) *Grid {
	g := &Grid{
		side:  side,
		cells: make([]Cell, side*side),
	}

	for i := range g.cells {
		row, col := g.Position(i)
		c := &g.cells[i]
		c.VisitedBy = Unvisited
		c.Edges[North] = g.edgeTo(row-1, col)
		c.Edges[South] = g.edgeTo(row+1, col)
		c.Edges[East] = g.edgeTo(row, col+1)
		c.Edges[West] = g.edgeTo(row, col-1)
	}

	return g
}

func (g *Grid) edgeTo(row, col int) Edge {
	if row < 0 || row >= g.side || col < 0 || col >= g.side {
		return Edge{Kind: Border, Neighbor: -1}
	}
	return Edge{Kind: Blocked, Neighbor: g.Index(row, col)}
}

// Side returns the number of cells along one side.
func (g *Grid) Side() int {
	return g.side
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBound reports whether i is a valid cell index.
func (g *Grid) InBound(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// Index converts a row and column into a flat cell index.
func (g *Grid) Index(row, col int) int {
	return row*g.side + col
}

// Position converts a flat cell index into its row and column.
func (g *Grid) Position(i int) (row, col int) {
	return i / g.side, i % g.side
}

// Cell returns the cell stored at index i.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// Edge returns the state of side d of cell i.
func (g *Grid) Edge(i int, d Direction) Edge {
	return g.cells[i].Edges[d]
}

// OpenEdge removes the wall on side d of cell i together with the
// mirrored wall on the neighbor.
func (g *Grid) OpenEdge(i int, d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}

	edge := g.cells[i].Edges[d]
	if edge.Kind == Border || edge.Neighbor < 0 {
		return ErrNoNeighbor
	}

	g.cells[i].Edges[d].Kind = Open
	g.cells[edge.Neighbor].Edges[d.Opposite()].Kind = Open
	return nil
}

// OpenBorder turns the Border side d of cell i into an opening to the
// outside of the grid.
func (g *Grid) OpenBorder(i int, d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}

	if g.cells[i].Edges[d].Kind != Border {
		return ErrNotBorder
	}

	g.cells[i].Edges[d].Kind = Open
	return nil
}

// OpenEdges counts the open walls shared by two cells of the grid.
// Outer openings are not counted.
func (g *Grid) OpenEdges() int {
	count := 0
	for i := range g.cells {
		for _, d := range [2]Direction{South, East} {
			e := g.cells[i].Edges[d]
			if e.Kind == Open && e.Neighbor >= 0 {
				count++
			}
		}
	}
	return count
}
