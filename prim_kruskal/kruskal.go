// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It selects forest edges with a disjoint-set and then roots every component
// at its smallest vertex so the result matches Prim's rooted Forest.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/ifgnet/bfs"
	"github.com/katalvlaran/ifgnet/core"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil or not weighted.
//   - ErrEmptyGraph  : graph has no vertices.
//
// Steps:
//  1. Validate and retrieve sorted vertex IDs.
//  2. Collect edges (sorted by ID), skip self-loops, stable-sort by weight.
//  3. Union-find with path compression and union by rank selects forest edges.
//  4. Root each component of the selected edges at its smallest vertex
//     (bfs.Components) and record parent branches.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Forest, error) {
	// 1. Validate.
	if graph == nil || !graph.Weighted() {
		return Forest{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Forest{}, ErrEmptyGraph
	}

	// 2. Collect candidate edges in (weight, ID) order.
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set over vertex IDs.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	forest := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		if err := forest.AddVertex(v); err != nil {
			return Forest{}, err
		}
	}
	chosen := 0
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		if _, err := forest.AddEdge(e.From, e.To, e.Weight, core.WithID(e.ID)); err != nil {
			return Forest{}, err
		}
		if chosen++; chosen == len(vertices)-1 {
			break
		}
	}

	// 4. Orient each component from its smallest vertex.
	comps, err := bfs.Components(forest)
	if err != nil {
		return Forest{}, err
	}
	branches := make([]Branch, 0, len(vertices))
	for _, c := range comps {
		for _, v := range c.Order {
			e, ok := c.Via[v]
			if !ok {
				branches = append(branches, Branch{Vertex: v})
				continue
			}
			branches = append(branches, Branch{Vertex: v, Parent: c.Parent[v], EdgeID: e.ID, Weight: e.Weight})
		}
	}

	sortBranches(branches)

	return Forest{Branches: branches}, nil
}
