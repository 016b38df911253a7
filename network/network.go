// Package network implements the interferogram network: a weighted,
// undirected graph whose vertices are acquisition epochs and whose edges are
// interferograms weighted by their missing-data fraction.
//
// A Network remembers every edge it has ever been given (its catalog), so an
// edge removed for one pixel can be re-inserted for the next by ID alone.
// Its vertex set is fixed once edges start flowing: AddEdge never creates
// vertices.
//
// A degenerate interferogram whose two dates coincide is kept as a self-loop.
// It never joins two epochs, so no spanning tree ever selects it.
//
// A Network is not safe for concurrent mutation. Parallel callers give each
// goroutine its own Clone.
package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ifgnet/core"
	"github.com/katalvlaran/ifgnet/epoch"
	"github.com/katalvlaran/ifgnet/ifg"
	"github.com/katalvlaran/ifgnet/prim_kruskal"
)

var (
	// ErrUnknownNode indicates an edge endpoint that was never added with AddNode.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrUnknownEdge indicates an edge ID that is not in the catalog.
	ErrUnknownEdge = errors.New("network: unknown edge")
)

// Link is a catalogued interferogram edge.
type Link struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// Option configures a Network.
type Option func(*Network)

// WithMethod selects the MST algorithm (prim_kruskal.MethodPrim or MethodKruskal).
func WithMethod(method string) Option {
	return func(n *Network) { n.mst.Method = method }
}

// Network is an epoch graph with toggleable interferogram edges.
type Network struct {
	g       *core.Graph
	mst     prim_kruskal.MSTOptions
	links   []Link         // catalog in insertion order
	linkIdx map[string]int // edge ID → index into links
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		g:       core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		mst:     prim_kruskal.DefaultOptions(),
		linkIdx: make(map[string]int),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// FromStack builds the fully connected network of a stack: one node per
// epoch and one edge per interferogram, weighted by its NaN fraction.
func FromStack(ifgs []*ifg.Interferogram, epochs epoch.List, opts ...Option) (*Network, error) {
	n := New(opts...)
	for _, id := range epochs.IDs() {
		if err := n.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, i := range ifgs {
		if err := n.AddEdge(i.EdgeID(), i.MasterID(), i.SlaveID(), i.NaNFraction); err != nil {
			return nil, fmt.Errorf("adding %s: %w", i.EdgeID(), err)
		}
	}

	return n, nil
}

// AddNode adds an epoch vertex. Adding an existing node is a no-op.
func (n *Network) AddNode(id string) error {
	return n.g.AddVertex(id)
}

// AddEdge inserts the interferogram edge id between two existing nodes and
// records it in the catalog.
//
// Errors:
//   - ErrUnknownNode: an endpoint was never added.
//   - core.ErrDuplicateEdgeID: id is already present in the graph.
//   - core.ErrBadWeight: weight is not finite.
func (n *Network) AddEdge(id, from, to string, weight float64) error {
	if !n.g.HasVertex(from) {
		return fmt.Errorf("%q: %w", from, ErrUnknownNode)
	}
	if !n.g.HasVertex(to) {
		return fmt.Errorf("%q: %w", to, ErrUnknownNode)
	}
	if _, err := n.g.AddEdge(from, to, weight, core.WithID(id)); err != nil {
		return err
	}
	link := Link{ID: id, From: from, To: to, Weight: weight}
	if k, ok := n.linkIdx[id]; ok {
		n.links[k] = link
		return nil
	}
	n.linkIdx[id] = len(n.links)
	n.links = append(n.links, link)

	return nil
}

// HasEdge reports whether edge id is currently present.
func (n *Network) HasEdge(id string) bool { return n.g.HasEdgeID(id) }

// RemoveEdge takes edge id out of the graph. It stays in the catalog.
func (n *Network) RemoveEdge(id string) error {
	if err := n.g.RemoveEdge(id); err != nil {
		return fmt.Errorf("%q: %w", id, err)
	}

	return nil
}

// Restore re-inserts a catalogued edge that is currently absent.
func (n *Network) Restore(id string) error {
	k, ok := n.linkIdx[id]
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrUnknownEdge)
	}
	l := n.links[k]
	_, err := n.g.AddEdge(l.From, l.To, l.Weight, core.WithID(l.ID))

	return err
}

// Sync makes the present edge set equal {catalogued edges e : active(e.ID)}.
// Edges already in the wanted state are left untouched, so the result
// depends only on active, never on earlier calls.
func (n *Network) Sync(active func(id string) bool) error {
	for _, l := range n.links {
		want, have := active(l.ID), n.g.HasEdgeID(l.ID)
		switch {
		case want && !have:
			if err := n.Restore(l.ID); err != nil {
				return err
			}
		case !want && have:
			if err := n.RemoveEdge(l.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

// Forest computes the raw rooted spanning forest over the present edges,
// root branches included.
func (n *Network) Forest() (prim_kruskal.Forest, error) {
	return prim_kruskal.Compute(n.g, n.mst)
}

// MinimumSpanningTree computes the minimum spanning tree over the present
// edges with the root sentinels removed.
func (n *Network) MinimumSpanningTree() (prim_kruskal.Tree, error) {
	f, err := n.Forest()
	if err != nil {
		return prim_kruskal.Tree{}, err
	}

	return f.Tree(), nil
}

// Clone returns an independent copy sharing no mutable state with n.
func (n *Network) Clone() *Network {
	c := &Network{
		g:       n.g.Clone(),
		mst:     n.mst,
		links:   make([]Link, len(n.links)),
		linkIdx: make(map[string]int, len(n.linkIdx)),
	}
	copy(c.links, n.links)
	for id, k := range n.linkIdx {
		c.linkIdx[id] = k
	}

	return c
}

// Nodes returns the epoch vertex IDs, sorted ascending.
func (n *Network) Nodes() []string { return n.g.Vertices() }

// Links returns a copy of the catalog in insertion order.
func (n *Network) Links() []Link {
	out := make([]Link, len(n.links))
	copy(out, n.links)

	return out
}

// EdgeIDs returns the IDs of the currently present edges, sorted ascending.
func (n *Network) EdgeIDs() []string {
	edges := n.g.Edges()
	ids := make([]string, len(edges))
	for k, e := range edges {
		ids[k] = e.ID
	}

	return ids
}
