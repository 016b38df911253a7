// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, depths, parent links and the edge that reached each vertex.
//
// Edge weights are ignored: depth counts edges. Neighbors are expanded in
// Edge.ID order (core.Neighbors), so the traversal and its parent links are
// reproducible for a given graph.
//
// Components walks every connected component in turn, each rooted at its
// smallest unvisited vertex. Spanning-forest builders use it to orient a
// selected edge set into parent branches.
//
// Complexity: O(V + E log d) time, O(V) memory.
package bfs
