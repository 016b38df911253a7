// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdgeID/Edges.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Every edge carries the caller's WithID identifier; none are generated.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
)

// AddEdge creates a new undirected edge named by WithID and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops and options.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge and ID constraints.
//  4. Store the edge and mirror it in the adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyEdgeID, ErrBadWeight, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrDuplicateEdgeID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		return "", ErrEmptyEdgeID
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := cfg.id
	if _, taken := g.edges[eid]; taken {
		return "", ErrDuplicateEdgeID
	}

	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound: the edge is not in the catalog.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdgeID reports whether an edge with the given ID is in the catalog.
// Complexity: O(1).
func (g *Graph) HasEdgeID(eid string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[eid]

	return ok
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
