// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows a rooted tree per connected component using a min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/ifgnet/core"
)

// Prim computes the minimum spanning forest of an undirected, weighted graph
// by growing outwards from a root with a min-heap.
//
// The first tree starts at root, or at the smallest vertex ID when root is
// empty. Whenever the heap runs dry while vertices remain unvisited, a new
// tree is started at the smallest unvisited vertex, so a disconnected graph
// yields one root Branch per component instead of an error.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil or not weighted.
//   - ErrEmptyGraph         : graph has no vertices.
//   - core.ErrVertexNotFound: root is non-empty and not in the graph.
//
// Ties on weight are broken by Edge.ID, then by the endpoint ID, so the
// result depends only on the current vertex and edge sets.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Forest, error) {
	// 1. Validate the graph and the optional root.
	if graph == nil || !graph.Weighted() {
		return Forest{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Forest{}, ErrEmptyGraph
	}
	if root != "" && !graph.HasVertex(root) {
		return Forest{}, core.ErrVertexNotFound
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	branches := make([]Branch, 0, n)
	pq := &edgePQ{}

	// push enqueues every edge from u to a vertex outside the tree.
	push := func(u string) error {
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			if v := e.Other(u); !visited[v] {
				heap.Push(pq, candidate{edge: e, from: u, to: v})
			}
		}

		return nil
	}

	// grow builds one tree from start until no crossing edge is left.
	grow := func(start string) error {
		visited[start] = true
		branches = append(branches, Branch{Vertex: start})
		if err := push(start); err != nil {
			return err
		}
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			branches = append(branches, Branch{
				Vertex: c.to,
				Parent: c.from,
				EdgeID: c.edge.ID,
				Weight: c.edge.Weight,
			})
			if err := push(c.to); err != nil {
				return err
			}
		}

		return nil
	}

	// 2. Grow the requested root first, then one tree per remaining component.
	if root != "" {
		if err := grow(root); err != nil {
			return Forest{}, err
		}
	}
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		if err := grow(v); err != nil {
			return Forest{}, err
		}
	}

	sortBranches(branches)

	return Forest{Branches: branches}, nil
}

// candidate is a heap entry: an edge leaving the tree at from towards to.
type candidate struct {
	edge *core.Edge
	from string
	to   string
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// (Weight, Edge.ID, to).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	if a.edge.ID != b.edge.ID {
		return a.edge.ID < b.edge.ID
	}

	return a.to < b.to
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
