// Package mst provides the two classical minimum spanning tree algorithms
// over an undirected *core.Graph: Kruskal and Prim.
//
// What is an MST?
//
// Given an undirected weighted graph G = (V, E), a spanning tree is an
// acyclic subset T ⊆ E that connects all of V with exactly |V|-1 edges; a
// minimum spanning tree additionally minimizes the total weight of T. The
// minimum total weight is unique even when several edge selections achieve
// it, which is why the test suite can compare Kruskal against Prim weight
// for weight.
//
// Algorithms
//
//   - Kruskal(g): sort every edge once, then accept edges smallest-first
//     whenever union-find reports their endpoints in different components.
//     O(E log E). On a disconnected graph it keeps scanning and returns a
//     minimum spanning forest, one tree per component.
//
//   - Prim(g, WithRoot("A")): grow a single tree from a root, always taking
//     the cheapest edge leaving the tree, tracked in a min-heap.
//     O(E log E). On a disconnected graph it covers only the root's
//     component; Result.Spans tells the two cases apart.
//
// Determinism
//
// Both algorithms break weight ties by insertion order — Kruskal through a
// stable sort over the insertion-ordered edge list, Prim through a push
// sequence number in its heap — so repeated runs over the same graph select
// the same edges in the same order.
//
// Self-loops are never selected (a loop closes a cycle by definition) and
// parallel edges are independent candidates: the lightest one wins.
//
// Use Compute(g, WithAlgorithm(...), WithRoot(...)) when the algorithm is
// picked at runtime; call Kruskal or Prim directly otherwise.
package mst
