package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ifgnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Options holds parameters and callbacks of a traversal.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge skips edges for which it returns false.
	FilterEdge func(e *core.Edge) bool

	// OnVisit is called when visiting a vertex. A non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	err error
}

// Option configures a traversal.
type Option func(*Options)

// DefaultOptions returns no depth limit, no filtering and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		FilterEdge: func(*core.Edge) bool { return true },
		OnVisit:    func(string, int) error { return nil },
	}
}

// WithMaxDepth stops the search beyond depth d. 0 means no limit; d < 0 is
// rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithOnVisit registers a visit callback; returning an error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of one traversal.
//   - Order: vertices in visit sequence, start first.
//   - Depth: edges from the start.
//   - Parent: predecessor in the BFS tree; absent for the start.
//   - Via: the edge leading from Parent to the vertex; absent for the start.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]*core.Edge
}

// PathTo reconstructs the vertex path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// BFS runs breadth-first search on g from start.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a
// wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return walk(g, start, o, make(map[string]bool))
}

// Components runs one traversal per connected component of g. Each is
// rooted at the smallest vertex not reached by an earlier traversal, so
// results come in ascending root order.
func Components(g *core.Graph, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))
	var out []*Result
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		res, err := walk(g, v, o, visited)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

type queueItem struct {
	id    string
	depth int
}

// walk traverses from start, skipping and marking vertices in visited.
func walk(g *core.Graph, start string, o Options, visited map[string]bool) (*Result, error) {
	res := &Result{
		Start:  start,
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
		Via:    make(map[string]*core.Edge),
	}
	visited[start] = true
	queue := []queueItem{{id: start}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		edges, err := g.Neighbors(item.id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			nbr := e.Other(item.id)
			if visited[nbr] || !o.FilterEdge(e) {
				continue
			}
			visited[nbr] = true
			res.Depth[nbr] = next
			res.Parent[nbr] = item.id
			res.Via[nbr] = e
			queue = append(queue, queueItem{id: nbr, depth: next})
		}
	}

	return res, nil
}
