package bfs

import (
	"fmt"

	"github.com/ostankov/graphion/core"
)

// BFS runs breadth-first search on g from start, visiting vertices in
// increasing hop distance and, within one depth, in edge insertion order.
//
// Works on directed and undirected graphs, weighted or not — edge weights
// are ignored, every edge counts as one hop. Self-loops and parallel edges
// are harmless: the far endpoint is already visited when they are examined.
//
// Errors: ErrGraphNil, core.ErrUnknownVertex for an absent start vertex,
// context errors under cancellation, and any error returned by OnVisit.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %q: %w", start, core.ErrUnknownVertex)
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	type item struct {
		id    string
		depth int
	}
	queue := make([]item, 0, n)
	queue = append(queue, item{id: start})
	res.Depth[start] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, cur.id)
		if err := o.OnVisit(cur.id, cur.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit at %q: %w", cur.id, err)
		}

		if o.MaxDepth > 0 && cur.depth == o.MaxDepth {
			continue // frontier edge of the depth limit
		}
		nbs, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, err // unreachable: cur.id came from the graph
		}
		for _, e := range nbs {
			if !o.FilterNeighbor(cur.id, e.To) {
				continue
			}
			if _, seen := res.Depth[e.To]; seen {
				continue
			}
			res.Depth[e.To] = cur.depth + 1
			res.Parent[e.To] = cur.id
			queue = append(queue, item{id: e.To, depth: cur.depth + 1})
		}
	}

	return res, nil
}

// ShortestPath returns the fewest-hop path from start to dest, both ends
// inclusive. It is a convenience wrapper over BFS plus Result.PathTo.
func ShortestPath(g *core.Graph, start, dest string) ([]string, error) {
	if g != nil && !g.HasVertex(dest) {
		return nil, fmt.Errorf("bfs: destination %q: %w", dest, core.ErrUnknownVertex)
	}
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dest)
}
