package mst

import (
	"container/heap"
	"fmt"

	"github.com/ostankov/graphion/core"
)

// Prim computes a minimum spanning tree of an undirected graph by growing
// outward from a root vertex, extracting the cheapest frontier edge from a
// min-heap at every step.
//
// The root comes from WithRoot; when unset, the first-added vertex is used.
// Frontier ties on weight break by push order into the heap, so the
// selection is deterministic for a fixed graph.
//
// Disconnected graphs: Prim only ever reaches the component containing the
// root. That is the algorithm's documented limitation — unlike Kruskal it
// does not produce a forest — and it is surfaced through the result, not an
// error: len(Result.Edges) < |V|-1 (check Result.Spans) means vertices
// outside the root's component were never reached.
//
// Errors:
//   - ErrGraphNil         — g is nil.
//   - ErrNotUndirected    — g is directed.
//   - ErrEmptyGraph       — g has no vertices.
//   - core.ErrUnknownVertex — the requested root is absent.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrNotUndirected
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrEmptyGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	root := o.Root
	if root == "" {
		root = verts[0]
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("mst: root %q: %w", root, core.ErrUnknownVertex)
	}

	visited := make(map[string]bool, len(verts))
	res := &Result{Edges: make([]core.Edge, 0, len(verts)-1)}

	pq := &frontier{}
	seq := 0 // global push counter; equal-weight edges pop in push order
	grow := func(from string) {
		nbs, _ := g.Neighbors(from) // from is always a known vertex here
		for _, e := range nbs {
			if !visited[e.To] {
				heap.Push(pq, frontierEdge{edge: e, seq: seq})
				seq++
			}
		}
	}

	visited[root] = true
	grow(root)

	for pq.Len() > 0 {
		fe := heap.Pop(pq).(frontierEdge)
		v := fe.edge.To
		if visited[v] {
			continue // both endpoints already in the tree: stale frontier entry
		}
		visited[v] = true
		res.Edges = append(res.Edges, fe.edge)
		res.Weight += fe.edge.Weight
		grow(v)
	}

	return res, nil
}

// frontierEdge is a heap entry: a candidate edge plus the sequence number
// it was pushed with, used as the deterministic tie-break.
type frontierEdge struct {
	edge core.Edge
	seq  int
}

// frontier is a min-heap of frontierEdge ordered by (Weight, seq).
type frontier []frontierEdge

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].edge.Weight != f[j].edge.Weight {
		return f[i].edge.Weight < f[j].edge.Weight
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierEdge)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	fe := old[n-1]
	*f = old[:n-1]

	return fe
}
