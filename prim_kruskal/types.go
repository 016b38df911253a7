// Package prim_kruskal defines configuration options, sentinel errors and the
// rooted spanning-forest result shared by Prim and Kruskal.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/ifgnet/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil, weighted graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a weighted graph")

// ErrEmptyGraph indicates that the graph has no vertices, so there is nothing to span.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: first root for Prim; "" means the smallest vertex ID. Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the first root for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at the smallest vertex ID.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute selects and runs the MST algorithm based on opts.Method.
func Compute(graph *core.Graph, opts MSTOptions) (Forest, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return Forest{}, ErrUnknownMethod
	}
}
