package bfs

import (
	"github.com/ostankov/graphion/core"
)

// ConnectedComponents partitions an undirected graph into its connected
// components, each component listed in BFS visit order and components
// ordered by their earliest-added vertex. Isolated vertices form singleton
// components.
//
// Errors: ErrGraphNil for a nil graph, ErrDirectedGraph for a directed one
// (connectivity of directed graphs is a different notion and out of scope).
//
// Complexity: O(V + E) time, O(V) memory.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	seen := make(map[string]bool, g.VertexCount())
	var components [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		components = append(components, res.Order)
	}

	return components, nil
}
