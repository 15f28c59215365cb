package maze

// DisjointSet is a union-find over the elements [0, size).
// It uses union by rank and path compression.
type DisjointSet struct {
	parent     []int
	rank       []int
	components int
}

// NewDisjointSet creates size singleton sets, each element its own representative.
func NewDisjointSet(size int) *DisjointSet {
	ds := &DisjointSet{
		parent:     make([]int, size),
		rank:       make([]int, size),
		components: size,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// Find returns the representative of the set containing x.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// Point every element on the walked chain straight at the root.
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets represented by a and b.
// Both arguments must be representatives, as returned by Find.
func (ds *DisjointSet) Union(a, b int) {
	if a == b {
		return
	}

	switch {
	case ds.rank[a] < ds.rank[b]:
		ds.parent[a] = b
	case ds.rank[a] > ds.rank[b]:
		ds.parent[b] = a
	default:
		ds.parent[b] = a
		ds.rank[a]++
	}
	ds.components--
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// ComponentCount returns the number of disjoint sets left.
func (ds *DisjointSet) ComponentCount() int {
	return ds.components
}

// AllConnected reports whether exactly one set remains.
func (ds *DisjointSet) AllConnected() bool {
	return ds.components == 1
}

// Size returns the number of elements tracked.
func (ds *DisjointSet) Size() int {
	return len(ds.parent)
}
