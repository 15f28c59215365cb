package maze

// PathFinder recovers the unique path between the entrance and the exit
// of a carved grid.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder creates a PathFinder over a grid that has already been carved.
func NewPathFinder(g *Grid) *PathFinder {
	return &PathFinder{grid: g}
}

// Traverse walks the open edges depth first from start, recording in
// each cell the index of the cell that discovered it.
func (pf *PathFinder) Traverse(start int) {
	stack := []int{start}
	pf.grid.Cell(start).VisitedBy = start

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, d := range Directions {
			edge := pf.grid.Edge(cell, d)
			if edge.Kind != Open || edge.Neighbor < 0 {
				continue
			}

			next := pf.grid.Cell(edge.Neighbor)
			if next.VisitedBy != Unvisited {
				continue
			}
			next.VisitedBy = cell
			stack = append(stack, edge.Neighbor)
		}
	}
}

// Solve marks the cells on the path from cell 0 to the last cell and
// returns the marks indexed by cell.
func (pf *PathFinder) Solve() []bool {
	n := pf.grid.Len()
	marks := make([]bool, n)
	if n == 0 {
		return marks
	}

	entrance, exit := 0, n-1
	marks[entrance] = true
	marks[exit] = true
	if n == 1 {
		return marks
	}

	pf.Traverse(entrance)

	for current := pf.grid.Cell(exit).VisitedBy; current != entrance; current = pf.grid.Cell(current).VisitedBy {
		if current == Unvisited {
			// The grid was not carved into a spanning tree.
			break
		}
		marks[current] = true
	}

	return marks
}

// pop removes and returns the last element of a stack of cell indices.
func pop(s *[]int) int {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
