// File: selector.go
// Role: per-pixel minimum spanning tree selection over an interferogram stack.
// Determinism:
//   - The tree of a pixel depends only on which interferograms are valid there;
//     edge toggling is idempotent and MST ties break on edge ID.
//   - Results are identical for any worker count and with or without the cache.
// Concurrency:
//   - Compute splits rows across workers; each worker owns a Network clone.
//   - A Selector may run Compute from one goroutine at a time.

package mstselect

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ifgnet/epoch"
	"github.com/katalvlaran/ifgnet/ifg"
	"github.com/katalvlaran/ifgnet/network"
	"github.com/katalvlaran/ifgnet/prim_kruskal"
)

// Kind tags a grid Cell.
type Kind uint8

const (
	// KindUndefined marks a pixel that is missing in every interferogram.
	KindUndefined Kind = iota
	// KindTree marks a pixel with a spanning tree.
	KindTree
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindTree {
		return "tree"
	}

	return "undefined"
}

// Cell is the result of one pixel. Tree is nil unless Kind is KindTree.
type Cell struct {
	Kind Kind
	Tree *prim_kruskal.Tree
}

// Grid holds one Cell per pixel, row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at row y, column x.
func (g *Grid) At(y, x int) Cell { return g.Cells[y*g.Width+x] }

// Options tunes a Selector.
type Options struct {
	// Workers bounds the goroutines of Compute; <=0 means GOMAXPROCS.
	Workers int
	// CacheSize is the number of mask→tree entries kept per run; 0 disables.
	CacheSize int
	// Method is the MST algorithm (prim_kruskal.MethodPrim or MethodKruskal).
	Method string
	// Logger receives run summaries.
	Logger *slog.Logger
	// Registerer, when set, receives the pixel counters.
	Registerer prometheus.Registerer
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the goroutines of Compute.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithCacheSize sets the mask cache capacity; 0 disables it.
func WithCacheSize(n int) Option { return func(o *Options) { o.CacheSize = n } }

// WithMethod selects the MST algorithm.
func WithMethod(m string) Option { return func(o *Options) { o.Method = m } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithRegisterer exports pixel counters to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}

// Selector computes per-pixel spanning trees for one stack.
type Selector struct {
	ifgs     []*ifg.Interferogram
	width    int
	height   int
	template *network.Network
	edgeIdx  map[string]int // edge ID → interferogram index
	def      *prim_kruskal.Tree
	opts     Options
	metrics  *metrics
	stats    Stats
}

// New builds the full network of the stack and its default tree.
//
// Errors:
//   - ifg.ErrEmptyStack, ifg.ErrShapeMismatch: malformed stack.
//   - network.ErrUnknownNode: an interferogram date is absent from epochs.
//   - core.ErrDuplicateEdgeID: two interferograms share a date pair.
//   - prim_kruskal.ErrUnknownMethod: bad WithMethod value.
func New(ifgs []*ifg.Interferogram, epochs epoch.List, opts ...Option) (*Selector, error) {
	o := Options{
		Method: prim_kruskal.MethodPrim,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	width, height, err := ifg.CheckStack(ifgs)
	if err != nil {
		return nil, err
	}
	tmpl, err := network.FromStack(ifgs, epochs, network.WithMethod(o.Method))
	if err != nil {
		return nil, fmt.Errorf("building network: %w", err)
	}
	def, err := tmpl.MinimumSpanningTree()
	if err != nil {
		return nil, fmt.Errorf("default tree: %w", err)
	}
	m, err := newMetrics(o.Registerer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	idx := make(map[string]int, len(ifgs))
	for k, i := range ifgs {
		idx[i.EdgeID()] = k
	}

	return &Selector{
		ifgs:     ifgs,
		width:    width,
		height:   height,
		template: tmpl,
		edgeIdx:  idx,
		def:      &def,
		opts:     o,
		metrics:  m,
	}, nil
}

// Default returns the tree over every interferogram.
func (s *Selector) Default() *prim_kruskal.Tree { return s.def }

// Stats returns the tallies of the last Compute.
func (s *Selector) Stats() Stats { return s.stats }

// Compute resolves every pixel:
//   - valid in every interferogram: the shared default tree;
//   - missing in every interferogram: KindUndefined;
//   - otherwise: the tree over the interferograms valid at that pixel.
//
// Complexity: O(W·H·(N + MST)) without cache hits, for N interferograms.
func (s *Selector) Compute() (*Grid, error) {
	start := time.Now()
	cache, err := newTreeCache(s.opts.CacheSize)
	if err != nil {
		return nil, err
	}
	defer cache.close()

	grid := &Grid{
		Width:  s.width,
		Height: s.height,
		Cells:  make([]Cell, s.width*s.height),
	}
	var tally counters

	workers := min(s.opts.Workers, s.height)
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			pw := s.newPixelWorker(cache, &tally)
			for y := w; y < s.height; y += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := pw.row(y, grid.Cells[y*s.width:(y+1)*s.width]); err != nil {
					return fmt.Errorf("row %d: %w", y, err)
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	s.stats = tally.snapshot()
	s.metrics.add(s.stats)
	s.opts.Logger.Debug("per-pixel trees computed",
		slog.Int("width", s.width),
		slog.Int("height", s.height),
		slog.Int64("default", s.stats.Default),
		slog.Int64("undefined", s.stats.Undefined),
		slog.Int64("solved", s.stats.Solved),
		slog.Int64("cache_hits", s.stats.CacheHits),
		slog.Duration("elapsed", time.Since(start)))

	return grid, nil
}

// pixelWorker owns the mutable state of one Compute goroutine.
type pixelWorker struct {
	s     *Selector
	net   *network.Network
	cache *treeCache
	tally *counters
	valid []bool
	buf   []byte
}

func (s *Selector) newPixelWorker(cache *treeCache, tally *counters) *pixelWorker {
	return &pixelWorker{
		s:     s,
		net:   s.template.Clone(),
		cache: cache,
		tally: tally,
		valid: make([]bool, len(s.ifgs)),
		buf:   make([]byte, (len(s.ifgs)+7)/8),
	}
}

func (pw *pixelWorker) row(y int, out []Cell) error {
	for x := range out {
		c, err := pw.pixel(y, x)
		if err != nil {
			return fmt.Errorf("pixel (%d,%d): %w", y, x, err)
		}
		out[x] = c
	}

	return nil
}

func (pw *pixelWorker) pixel(y, x int) (Cell, error) {
	missing := 0
	for k, i := range pw.s.ifgs {
		pw.valid[k] = !math.IsNaN(i.Phase[y][x])
		if !pw.valid[k] {
			missing++
		}
	}

	switch missing {
	case 0:
		pw.tally.def.Add(1)
		return Cell{Kind: KindTree, Tree: pw.s.def}, nil
	case len(pw.valid):
		pw.tally.undefined.Add(1)
		return Cell{Kind: KindUndefined}, nil
	}

	pw.tally.solved.Add(1)
	key := maskKey(pw.valid, pw.buf)
	if t, ok := pw.cache.get(key); ok {
		pw.tally.hits.Add(1)
		return Cell{Kind: KindTree, Tree: t}, nil
	}

	if err := pw.net.Sync(pw.active); err != nil {
		return Cell{}, err
	}
	t, err := pw.net.MinimumSpanningTree()
	if err != nil {
		return Cell{}, err
	}
	pw.cache.set(key, &t)

	return Cell{Kind: KindTree, Tree: &t}, nil
}

func (pw *pixelWorker) active(edgeID string) bool {
	return pw.valid[pw.s.edgeIdx[edgeID]]
}

// ComputePerPixelTrees builds a Selector for ifgs and runs Compute once.
func ComputePerPixelTrees(ifgs []*ifg.Interferogram, epochs epoch.List, opts ...Option) (*Grid, error) {
	s, err := New(ifgs, epochs, opts...)
	if err != nil {
		return nil, err
	}

	return s.Compute()
}
