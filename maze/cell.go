package maze

import "fmt"

// Direction names one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in slot order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// EdgeKind tells what sits on one side of a cell.
type EdgeKind uint8

const (
	// Blocked is a wall between the cell and an existing neighbor.
	Blocked EdgeKind = iota
	// Open is a passable side. Outer openings are Open too.
	Open
	// Border is the edge of the grid; there is no neighbor.
	Border
)

func (k EdgeKind) String() string {
	switch k {
	case Blocked:
		return "blocked"
	case Open:
		return "open"
	case Border:
		return "border"
	}
	return fmt.Sprintf("EdgeKind(%d)", uint8(k))
}

// Edge is the state of one side of a cell.
type Edge struct {
	Kind     EdgeKind // Kind of the side.
	Neighbor int      // Index of the adjacent cell; -1 on the grid border.
}

// Unvisited marks a cell not yet reached by a traversal.
const Unvisited = -1

// Cell holds the four sides of a grid cell and its traversal parent.
type Cell struct {
	Edges     [4]Edge // Edges indexed by Direction.
	VisitedBy int     // Index of the cell that discovered this one, or Unvisited.
}

// IsOpen reports whether the side facing d is passable.
func (c *Cell) IsOpen(d Direction) bool {
	return c.Edges[d].Kind == Open
}
