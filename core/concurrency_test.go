// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ifgnet/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all edges appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	errs := make(chan error, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0, core.WithID(fmt.Sprintf("X,V%d", id)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndClone runs Neighbors and Clone while a writer toggles an edge.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 0.5, core.WithID("ab"))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0.5, core.WithID("bc"))
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = g.RemoveEdge("ab")
			_, _ = g.AddEdge("A", "B", 0.5, core.WithID("ab"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = g.Neighbors("B")
			_ = g.Clone()
		}
	}()
	wg.Wait()

	require.True(t, g.HasEdgeID("ab"))
	require.Len(t, g.Edges(), 2)
}
