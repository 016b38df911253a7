// Package prim_kruskal provides two algorithms for computing the Minimum
// Spanning Tree (MST) of an undirected, weighted *core.Graph: Prim's algorithm
// and Kruskal's algorithm.
//
// What & Why
//
//   - In an interferogram network the vertices are acquisition epochs and the
//     edges are interferograms weighted by their missing-data fraction. The MST
//     is the least-redundant set of interferograms that still ties every epoch
//     together, preferring interferograms with the least missing data.
//
// Result Model
//
//   - Both algorithms return a Forest: one Branch per vertex, sorted by vertex
//     ID. A Branch names the vertex, its parent and the edge leading there.
//     Every connected component has exactly one root Branch (empty Parent).
//   - Forest.Tree() removes the root branches. This is the form handed to
//     consumers and retained per pixel: roots carry no edge, so keeping them
//     only costs memory.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, root string) (Forest, error)
//     Grow a tree from root with a min-heap of crossing edges; restart at the
//     smallest unvisited vertex for each further component.
//     Time O(E log E), space O(V + E).
//
//   - Kruskal(g *core.Graph) (Forest, error)
//     Sort edges by weight (stable over ID order), merge with union-find, then
//     root every component at its smallest vertex.
//     Time O(E log E + α(V)·E), space O(V + E).
//
// Determinism
//
//   - Ties on weight break by Edge.ID. With Prim rooted at the smallest
//     vertex (the default), Prim and Kruskal return identical Forests.
//
// Error Conditions
//
//   - ErrInvalidGraph     : graph is nil or not weighted.
//   - ErrEmptyGraph       : graph has no vertices.
//   - core.ErrVertexNotFound (Prim only): root not in the graph.
//   - ErrUnknownMethod    : Compute was given an unknown method name.
package prim_kruskal
