package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ostankov/graphion/core"
	"github.com/ostankov/graphion/mst"
)

// benchGraph builds a connected weighted graph with n vertices and roughly
// 4n edges, deterministic across runs.
func benchGraph(n int) *core.Graph {
	g := core.New(core.WithWeighted())
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+int64(r.Intn(50)))
	}
	for i := 0; i < 3*n; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+int64(r.Intn(500)))
	}

	return g
}

func BenchmarkKruskal(b *testing.B) {
	for _, n := range []int{100, 1000} {
		g := benchGraph(n)
		b.Run(fmt.Sprintf("V%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := mst.Kruskal(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPrim(b *testing.B) {
	for _, n := range []int{100, 1000} {
		g := benchGraph(n)
		b.Run(fmt.Sprintf("V%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := mst.Prim(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
