package prim_kruskal

import "sort"

// Branch links a vertex to its parent in a rooted spanning tree.
//
// A root branch has an empty Parent and EdgeID and zero Weight: it records
// that the vertex starts a tree, not that an edge leads to it.
type Branch struct {
	Vertex string
	Parent string
	EdgeID string
	Weight float64
}

// IsRoot reports whether b marks a tree root rather than a parent edge.
func (b Branch) IsRoot() bool { return b.Parent == "" }

// Forest is the raw result of an MST run: one Branch per vertex, sorted by
// Vertex. Each connected component contributes exactly one root branch.
type Forest struct {
	Branches []Branch
}

// Roots returns the root vertices in ascending order.
func (f Forest) Roots() []string {
	var roots []string
	for _, b := range f.Branches {
		if b.IsRoot() {
			roots = append(roots, b.Vertex)
		}
	}

	return roots
}

// Connected reports whether the forest is a single spanning tree.
func (f Forest) Connected() bool { return len(f.Roots()) == 1 }

// Tree drops every root branch and keeps all parent edges unchanged.
// The result is what downstream consumers see: a tree of len(vertices)-roots
// edges with no sentinel entries.
func (f Forest) Tree() Tree {
	t := Tree{Branches: make([]Branch, 0, len(f.Branches))}
	for _, b := range f.Branches {
		if b.IsRoot() {
			continue
		}
		t.Branches = append(t.Branches, b)
		t.Weight += b.Weight
	}

	return t
}

// Tree is a minimum spanning tree (or forest) with root sentinels removed.
// Branches are sorted by Vertex; Weight is the sum of branch weights.
type Tree struct {
	Branches []Branch
	Weight   float64
}

// Len returns the number of tree edges.
func (t Tree) Len() int { return len(t.Branches) }

// Parent returns the branch leading from vertex to its parent.
// ok is false for roots and for vertices not in the tree.
func (t Tree) Parent(vertex string) (Branch, bool) {
	i := sort.Search(len(t.Branches), func(i int) bool { return t.Branches[i].Vertex >= vertex })
	if i < len(t.Branches) && t.Branches[i].Vertex == vertex {
		return t.Branches[i], true
	}

	return Branch{}, false
}

// EdgeIDs returns the identifiers of the tree edges, sorted ascending.
func (t Tree) EdgeIDs() []string {
	ids := make([]string, len(t.Branches))
	for i, b := range t.Branches {
		ids[i] = b.EdgeID
	}
	sort.Strings(ids)

	return ids
}

// sortBranches orders branches by vertex ID.
func sortBranches(bs []Branch) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].Vertex < bs[j].Vertex })
}
