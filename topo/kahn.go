package topo

import (
	"github.com/ostankov/graphion/core"
)

// SortKahn computes a topological order of the directed graph g with
// Kahn's algorithm: repeatedly emit a vertex whose remaining in-degree is
// zero and decrement its successors. If vertices remain when the queue
// drains, they all sit on cycles and ErrCycle is reported.
//
// The zero in-degree queue is seeded and served in vertex insertion order
// (FIFO), so the output is deterministic.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycle, context errors.
// Complexity: O(V + E) time, O(V) memory.
func SortKahn(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	inDegree := make(map[string]int, len(verts))
	for _, v := range verts {
		inDegree[v] = 0
	}
	for _, e := range g.Edges() {
		inDegree[e.To]++ // self-loops count too and pin their vertex in place
	}

	queue := make([]string, 0, len(verts))
	for _, v := range verts {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(verts))
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, err // unreachable for vertices taken from the graph
		}
		for _, e := range nbs {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) != len(verts) {
		return nil, ErrCycle // leftovers never reached in-degree zero
	}

	return order, nil
}
