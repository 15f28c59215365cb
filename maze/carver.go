package maze

// RandomSource supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Carver knocks down walls of a grid until its cells form a single
// spanning tree. It is a randomized Kruskal that samples walls instead
// of walking a shuffled edge list.
type Carver struct {
	grid *Grid
	sets *DisjointSet
	rng  RandomSource

	samples int
}

// NewCarver binds a carver to g, tracking components with a fresh DisjointSet.
func NewCarver(g *Grid, rng RandomSource) *Carver {
	return &Carver{
		grid: g,
		sets: NewDisjointSet(g.Len()),
		rng:  rng,
	}
}

// Carve runs until every cell belongs to the same component.
// Rejected samples mutate nothing and are simply drawn again.
func (c *Carver) Carve() {
	if c.grid.Len() <= 1 {
		return
	}

	for !c.sets.AllConnected() {
		c.samples++
		cell := c.rng.Intn(c.grid.Len())
		dir := Directions[c.rng.Intn(len(Directions))]
		c.tryRemove(cell, dir)
	}
}

// tryRemove opens the wall on side dir of cell when that joins two
// separate components, and reports whether it did.
func (c *Carver) tryRemove(cell int, dir Direction) bool {
	edge := c.grid.Edge(cell, dir)
	if edge.Kind != Blocked {
		return false
	}

	a := c.sets.Find(cell)
	b := c.sets.Find(edge.Neighbor)
	if a == b {
		return false
	}

	if err := c.grid.OpenEdge(cell, dir); err != nil {
		return false
	}
	c.sets.Union(a, b)
	return true
}

// Samples returns how many (cell, direction) pairs were drawn.
func (c *Carver) Samples() int {
	return c.samples
}

// Components returns the number of components still disconnected.
func (c *Carver) Components() int {
	return c.sets.ComponentCount()
}
