// Package refpixel selects the reference pixel of an interferogram stack:
// the grid position whose surrounding chip is well populated in every
// interferogram and has the lowest mean phase standard deviation.
//
// A pinned position in the configuration short-circuits the search. Otherwise
// a regular lattice of refnx × refny candidate centres is scored and the
// strictly lowest score wins, ties going to the candidate met first in
// row-major scan order.
package refpixel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ifgnet/config"
	"github.com/katalvlaran/ifgnet/ifg"
)

var (
	// ErrInvalidParam indicates a reference-pixel option outside its valid range.
	ErrInvalidParam = errors.New("refpixel: invalid parameter")

	// ErrNotFound indicates that no candidate chip passed the coverage test.
	ErrNotFound = errors.New("refpixel: could not find a reference pixel")
)

// Pixel is a grid position.
type Pixel struct {
	Row int
	Col int
}

// String implements fmt.Stringer.
func (p Pixel) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Options tunes the search.
type Options struct {
	// Workers bounds the goroutines scoring candidate rows; <=0 means GOMAXPROCS.
	Workers int
	// Logger receives a debug summary of the search.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the number of scoring goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Find returns the reference pixel of ifgs.
//
// Errors:
//   - ifg.ErrEmptyStack, ifg.ErrShapeMismatch: malformed stack.
//   - ErrInvalidParam: pinned coordinates or search options out of range.
//   - config.ErrMissingKey: a search option is absent.
//   - ErrNotFound: every candidate failed the coverage test.
//
// Complexity: O(refnx·refny·N·chip²) for N interferograms.
func Find(params config.RefPixel, ifgs []*ifg.Interferogram, opts ...Option) (Pixel, error) {
	o := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	width, height, err := ifg.CheckStack(ifgs)
	if err != nil {
		return Pixel{}, err
	}

	if params.RefX != 0 || params.RefY != 0 {
		if params.RefX < 1 || params.RefX > width-1 {
			return Pixel{}, fmt.Errorf("reference pixel X coordinate %d not in [1,%d]: %w", params.RefX, width-1, ErrInvalidParam)
		}
		if params.RefY < 1 || params.RefY > height-1 {
			return Pixel{}, fmt.Errorf("reference pixel Y coordinate %d not in [1,%d]: %w", params.RefY, height-1, ErrInvalidParam)
		}

		return Pixel{Row: params.RefY, Col: params.RefX}, nil
	}

	if err = Validate(params, width, height); err != nil {
		return Pixel{}, err
	}

	chip := *params.ChipSize
	radius := chip / 2
	s := search{
		ifgs:   ifgs,
		radius: radius,
		thresh: *params.MinFrac * float64(chip*chip),
		ys:     Steps(height, *params.RefNY, radius),
		xs:     Steps(width, *params.RefNX, radius),
	}

	best, ok := s.run(o.Workers)
	if !ok {
		return Pixel{}, fmt.Errorf("%d candidates, chip %d, min_frac %g: %w",
			len(s.ys)*len(s.xs), chip, *params.MinFrac, ErrNotFound)
	}
	o.Logger.Debug("reference pixel selected",
		slog.Int("row", best.pixel.Row),
		slog.Int("col", best.pixel.Col),
		slog.Float64("mean_sd", best.score),
		slog.Int("candidates", len(s.ys)*len(s.xs)))

	return best.pixel, nil
}

// Validate checks the search options against a width × height grid in a
// fixed order: chip size, minimum fraction, refnx, refny. The first failure
// is returned.
func Validate(params config.RefPixel, width, height int) error {
	if params.ChipSize == nil {
		return config.Missing(config.KeyRefChipSize)
	}
	chip := *params.ChipSize
	if chip < 3 || chip > width || chip%2 == 0 {
		return fmt.Errorf("chip size %d must be odd, >=3 and <= grid width %d: %w", chip, width, ErrInvalidParam)
	}

	if params.MinFrac == nil {
		return config.Missing(config.KeyRefMinFrac)
	}
	if f := *params.MinFrac; math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("minimum fraction %g not in [0,1]: %w", f, ErrInvalidParam)
	}

	if params.RefNX == nil {
		return config.Missing(config.KeyRefNX)
	}
	if hi := width - (chip - 1); *params.RefNX < 1 || *params.RefNX > hi {
		return fmt.Errorf("refnx %d not in [1,%d]: %w", *params.RefNX, hi, ErrInvalidParam)
	}

	if params.RefNY == nil {
		return config.Missing(config.KeyRefNY)
	}
	if hi := height - (chip - 1); *params.RefNY < 1 || *params.RefNY > hi {
		return fmt.Errorf("refny %d not in [1,%d]: %w", *params.RefNY, hi, ErrInvalidParam)
	}

	return nil
}

// Steps returns count candidate centres along an axis of length dim.
//
//   - count 1: the midpoint dim/2.
//   - count 2: radius and dim-radius-1.
//   - otherwise: radius + i*step for i in [0,count), step = (dim-2·radius)/(count-1).
//
// Count must be positive.
func Steps(dim, count, radius int) []int {
	switch count {
	case 1:
		return []int{dim / 2}
	case 2:
		return []int{radius, dim - radius - 1}
	}
	step := (dim - 2*radius) / (count - 1)
	out := make([]int, count)
	for i := range out {
		out[i] = radius + i*step
	}

	return out
}

type search struct {
	ifgs   []*ifg.Interferogram
	radius int
	thresh float64
	ys, xs []int
}

type candidate struct {
	pixel Pixel
	score float64
	ok    bool
}

// run scores each lattice row in its own goroutine and reduces the per-row
// winners in row order, which reproduces the sequential scan.
func (s *search) run(workers int) (candidate, bool) {
	rows := make([]candidate, len(s.ys))
	var g errgroup.Group
	g.SetLimit(workers)
	for r, y := range s.ys {
		g.Go(func() error {
			rows[r] = s.row(y)
			return nil
		})
	}
	_ = g.Wait() // row scoring never fails

	var best candidate
	for _, c := range rows {
		if c.ok && (!best.ok || c.score < best.score) {
			best = c
		}
	}

	return best, best.ok
}

func (s *search) row(y int) candidate {
	var best candidate
	for _, x := range s.xs {
		score, ok := s.score(y, x)
		if ok && (!best.ok || score < best.score) {
			best = candidate{pixel: Pixel{Row: y, Col: x}, score: score, ok: true}
		}
	}

	return best
}

// score returns the mean over interferograms of the population standard
// deviation of valid cells in the chip centred at (y, x), clipped to the
// grid. ok is false when any interferogram has no more than thresh valid
// cells in the chip.
func (s *search) score(y, x int) (float64, bool) {
	y0, y1 := clip(y-s.radius, y+s.radius+1, s.ifgs[0].Height())
	x0, x1 := clip(x-s.radius, x+s.radius+1, s.ifgs[0].Width())

	vals := make([]float64, 0, (y1-y0)*(x1-x0))
	sds := make([]float64, len(s.ifgs))
	for k, i := range s.ifgs {
		vals = vals[:0]
		for yy := y0; yy < y1; yy++ {
			for _, v := range i.Phase[yy][x0:x1] {
				if !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}
		}
		if float64(len(vals)) <= s.thresh {
			return 0, false
		}
		sds[k] = math.Sqrt(stat.PopVariance(vals, nil))
	}

	return stat.Mean(sds, nil), true
}

// clip intersects [lo, hi) with [0, dim).
func clip(lo, hi, dim int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > dim {
		hi = dim
	}

	return lo, hi
}
