package topo

import (
	"github.com/ostankov/graphion/core"
)

// LongestPath finds the critical path of a directed acyclic graph: the
// path maximizing the summed edge weight (hop count on unweighted graphs,
// where every edge weighs core.DefaultWeight).
//
// The classic DP over a topological order: distance[v] is the best
// distance ending at v, relaxed from each predecessor as the order is
// scanned, with predecessor pointers kept for reconstruction. Sources
// start at distance 0, so on an edgeless graph the result is a single
// vertex with distance 0. Ties on the maximum resolve to the vertex
// earliest in the topological order.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrEmptyGraph, ErrCycle (via the
// underlying Kahn sort).
// Complexity: O(V + E) time, O(V) memory.
func LongestPath(g *core.Graph, opts ...Option) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	order, err := SortKahn(g, opts...)
	if err != nil {
		return nil, err
	}

	distance := make(map[string]int64, len(order))
	predecessor := make(map[string]string, len(order))

	for _, u := range order {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, err // unreachable for vertices taken from the order
		}
		for _, e := range nbs {
			if d := distance[u] + e.Weight; d > distance[e.To] {
				distance[e.To] = d
				predecessor[e.To] = u
			}
		}
	}

	// Pick the farthest vertex; scanning the topological order keeps the
	// choice deterministic on ties.
	sink := order[0]
	for _, v := range order[1:] {
		if distance[v] > distance[sink] {
			sink = v
		}
	}

	// Walk predecessor pointers back to the path's source.
	path := []string{sink}
	for cur := sink; ; {
		prev, ok := predecessor[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &PathResult{Distance: distance[sink], Path: path}, nil
}
