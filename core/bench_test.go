package core_test

import (
	"testing"

	"github.com/kingsene19/graph-coloration/core"
)

// benchGraph builds a complete graph on n vertices.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatalf("NewGraph(%d): %v", n, err)
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				b.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchGraph(b, 64)
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := benchGraph(b, 256)
	b.ReportAllocs()
	b.ResetTimer()

	var total int
	for i := 0; i < b.N; i++ {
		for v := 1; v <= g.VertexCount(); v++ {
			total += len(g.Neighbors(v))
		}
	}
	_ = total
}

func BenchmarkHasEdge(b *testing.B) {
	g := benchGraph(b, 256)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(1, 256)
	}
}
