// Package graphion is a compact, in-memory graph algorithm library built
// for teaching: every subpackage implements one textbook algorithm family
// on top of a single adjacency-list Graph.
//
// What is inside?
//
//	core/      — the Graph and Edge primitives (directed/undirected, weighted/unweighted)
//	unionfind/ — generic disjoint-set with path compression and union by rank
//	mst/       — minimum spanning trees and forests: Kruskal and Prim
//	bfs/       — breadth-first traversal, shortest hop paths, connected components
//	dfs/       — iterative depth-first traversal and cycle detection
//	topo/      — topological sort (DFS-based and Kahn) and DAG longest paths
//
// Rules the whole module follows:
//
//   - Determinism first: vertices and edges keep insertion order and ties
//     break by that order, so every algorithm reproduces its output exactly.
//   - Algorithms never mutate the Graph they are given; each invocation owns
//     its transient state (disjoint-set, frontier heap, visited set) and
//     discards it on return.
//   - No recursion: traversals run on explicit stacks, so input size is
//     bounded by memory, not by call-stack depth.
//   - Errors are sentinel values (core.ErrUnknownVertex, topo.ErrCycle, ...)
//     reported synchronously and testable with errors.Is.
//
// Quick ASCII example:
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	C──1──D
//
// The minimum spanning tree of this square keeps A─B(1), C─D(1) and B─D(2)
// for a total weight of 4; see package mst for the full walkthrough.
//
//	go get github.com/ostankov/graphion
package graphion
