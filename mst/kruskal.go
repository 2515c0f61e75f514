package mst

import (
	"sort"

	"github.com/ostankov/graphion/core"
	"github.com/ostankov/graphion/unionfind"
)

// Kruskal computes a minimum spanning tree of an undirected graph, or a
// minimum spanning forest (one tree per connected component) when the graph
// is disconnected. A disconnected input is a documented outcome, not an
// error: Result.Weight sums over all trees and Result.Trees reports how
// many there are.
//
// Steps:
//  1. Sort all edges by ascending weight with a stable sort, so equal
//     weights keep their insertion order and the selection is deterministic.
//  2. Start a disjoint-set over all vertices.
//  3. Scan the sorted edges; accept an edge iff Union merges two components.
//     Self-loops fall out naturally (Union(v, v) is always false), and
//     parallel edges compete independently — the lightest wins, the rest
//     close cycles and are rejected.
//  4. Stop early once |V|-1 edges are accepted; that count is reachable
//     only when the graph is connected, so on a disconnected graph the scan
//     simply runs through every edge and yields the full forest.
//
// Errors: ErrGraphNil, ErrNotUndirected. A graph with zero or one vertex
// yields an empty result with weight 0.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrNotUndirected
	}

	res := &Result{}
	verts := g.Vertices()
	if len(verts) <= 1 {
		return res, nil // nothing to span
	}

	// Sort a copy: the graph is never mutated.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	dsu := unionfind.New(verts...)
	limit := len(verts) - 1
	for _, e := range edges {
		if !dsu.Union(e.From, e.To) {
			continue // same component already: would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
		if len(res.Edges) == limit {
			break
		}
	}

	return res, nil
}
