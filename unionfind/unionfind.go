// Package unionfind implements a disjoint-set (union-find) structure with
// full path compression and union by rank, giving near-constant amortized
// Find and Union (O(α(n)), inverse Ackermann).
//
// The element type is any comparable T, so the structure works directly on
// the string vertex IDs of core.Graph as well as on integer handles. A
// DisjointSet is cheap transient state: algorithms construct one per
// invocation and discard it afterwards.
//
// A DisjointSet is not safe for concurrent use.
package unionfind

// DisjointSet tracks a partition of elements into disjoint components.
// The zero value is not usable; call New.
type DisjointSet[T comparable] struct {
	parent map[T]T   // element → parent; roots point to themselves
	rank   map[T]int // root → tree height upper bound
	count  int       // number of components
}

// New creates a DisjointSet containing the given items, each in its own
// singleton component. Complexity: O(len(items)).
func New[T comparable](items ...T) *DisjointSet[T] {
	d := &DisjointSet[T]{
		parent: make(map[T]T, len(items)),
		rank:   make(map[T]int, len(items)),
	}
	for _, it := range items {
		d.MakeSet(it)
	}

	return d
}

// MakeSet registers v as its own singleton component with rank 0.
// Registering a known element is a no-op. Complexity: O(1).
func (d *DisjointSet[T]) MakeSet(v T) {
	if _, ok := d.parent[v]; ok {
		return
	}
	d.parent[v] = v
	d.rank[v] = 0
	d.count++
}

// Find returns the canonical representative of v's component, registering v
// first if it was never seen. Every element visited on the walk to the root
// is re-pointed directly at the root (full path compression), so repeated
// calls approach O(1). Iterative on purpose: no recursion, no stack growth.
func (d *DisjointSet[T]) Find(v T) T {
	if _, ok := d.parent[v]; !ok {
		d.MakeSet(v)

		return v
	}

	// First pass: locate the root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: re-point the whole path at the root.
	for d.parent[v] != root {
		v, d.parent[v] = d.parent[v], root
	}

	return root
}

// Union merges the components of u and v using union by rank: the root of
// smaller rank is attached under the root of larger rank, and on a tie the
// surviving root's rank grows by one.
//
// It reports whether a merge happened — false means u and v were already in
// the same component. That return value is the cycle-detection signal
// Kruskal's algorithm relies on: Union(v, v) is always false.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) Union(u, v T) bool {
	rootU, rootV := d.Find(u), d.Find(v)
	if rootU == rootV {
		return false
	}

	if d.rank[rootU] < d.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	d.parent[rootV] = rootU
	if d.rank[rootU] == d.rank[rootV] {
		d.rank[rootU]++
	}
	d.count--

	return true
}

// Same reports whether u and v currently belong to one component.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) Same(u, v T) bool {
	return d.Find(u) == d.Find(v)
}

// Count returns the current number of components. Complexity: O(1).
func (d *DisjointSet[T]) Count() int { return d.count }

// Len returns the number of registered elements. Complexity: O(1).
func (d *DisjointSet[T]) Len() int { return len(d.parent) }
