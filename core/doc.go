// Package core provides a thread-safe, in-memory undirected Graph used to
// model interferogram networks: vertices are acquisition epochs and edges are
// interferograms joining two epochs.
//
// Features:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges between the same epochs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Mandatory edge identifiers (WithID), so an edge can be toggled
//     in and out by a stable name such as "2006-01-02,2006-03-05"
//   - Constant-time edge operations via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted by ID, Edges() and Neighbors() by Edge.ID. Algorithms
//	built on top (prim_kruskal) inherit this ordering for tie-breaking.
//
// Core Methods:
//
//	AddVertex(id string) error                                          // O(1)
//	HasVertex(id string) bool                                           // O(1)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                                     // O(1)
//	HasEdgeID(edgeID string) bool                                       // O(1)
//	Neighbors(id string) ([]*Edge, error)                               // O(d log d)
//	Edges() []*Edge                                                     // O(E log E)
//	Clone() *Graph                                                      // O(V+E)
package core
