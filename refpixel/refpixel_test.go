package refpixel_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ifgnet/config"
	"github.com/katalvlaran/ifgnet/ifg"
	"github.com/katalvlaran/ifgnet/refpixel"
)

var nan = math.NaN()

var base = time.Date(2006, 6, 19, 0, 0, 0, 0, time.UTC)

// grid returns an h×w grid filled by f.
func grid(h, w int, f func(y, x int) float64) [][]float64 {
	g := make([][]float64, h)
	for y := range g {
		g[y] = make([]float64, w)
		for x := range g[y] {
			g[y][x] = f(y, x)
		}
	}

	return g
}

func stackOf(t *testing.T, grids ...[][]float64) []*ifg.Interferogram {
	t.Helper()
	out := make([]*ifg.Interferogram, len(grids))
	for k, g := range grids {
		i, err := ifg.New(base, base.AddDate(0, 0, 35*(k+1)), g)
		require.NoError(t, err)
		out[k] = i
	}

	return out
}

func search(nx, ny, chip int, frac float64) config.RefPixel {
	return config.RefPixel{
		RefNX:    config.Int(nx),
		RefNY:    config.Int(ny),
		ChipSize: config.Int(chip),
		MinFrac:  config.Float(frac),
	}
}

func constant(v float64) func(y, x int) float64 {
	return func(int, int) float64 { return v }
}

type ValidateSuite struct {
	suite.Suite
	ifgs []*ifg.Interferogram // 5 wide, 4 high
}

func (s *ValidateSuite) SetupTest() {
	s.ifgs = stackOf(s.T(), grid(4, 5, constant(1)))
}

func (s *ValidateSuite) TestPinned() {
	p, err := refpixel.Find(config.RefPixel{RefX: 2, RefY: 3}, s.ifgs)
	s.Require().NoError(err)
	s.Equal(refpixel.Pixel{Row: 3, Col: 2}, p)

	// Search options are ignored when pinned, even if missing.
	p, err = refpixel.Find(config.RefPixel{RefX: 4, RefY: 1}, s.ifgs)
	s.Require().NoError(err)
	s.Equal(refpixel.Pixel{Row: 1, Col: 4}, p)
}

func (s *ValidateSuite) TestPinnedOutOfRange() {
	for _, p := range []config.RefPixel{
		{RefX: 5, RefY: 1},
		{RefX: -1, RefY: 1},
		{RefX: 0, RefY: 4},
		{RefX: 1, RefY: -2},
	} {
		_, err := refpixel.Find(p, s.ifgs)
		s.ErrorIs(err, refpixel.ErrInvalidParam, "%+v", p)
	}
}

func (s *ValidateSuite) TestMissingKeys() {
	p := search(1, 1, 3, 0.5)
	p.ChipSize = nil
	_, err := refpixel.Find(p, s.ifgs)
	s.ErrorIs(err, config.ErrMissingKey)
	s.Contains(err.Error(), "missing 'ref_chip_size' in configuration options")

	p = search(1, 1, 3, 0.5)
	p.MinFrac = nil
	_, err = refpixel.Find(p, s.ifgs)
	s.ErrorIs(err, config.ErrMissingKey)
	s.Contains(err.Error(), "'ref_min_frac'")

	p = search(1, 1, 3, 0.5)
	p.RefNX = nil
	_, err = refpixel.Find(p, s.ifgs)
	s.ErrorIs(err, config.ErrMissingKey)

	p = search(1, 1, 3, 0.5)
	p.RefNY = nil
	_, err = refpixel.Find(p, s.ifgs)
	s.ErrorIs(err, config.ErrMissingKey)
}

func (s *ValidateSuite) TestInvalidParams() {
	for name, p := range map[string]config.RefPixel{
		"even chip":       search(1, 1, 4, 0.5),
		"tiny chip":       search(1, 1, 1, 0.5),
		"chip over width": search(1, 1, 7, 0.5),
		"negative frac":   search(1, 1, 3, -0.1),
		"frac over one":   search(1, 1, 3, 1.5),
		"refnx zero":      search(0, 1, 3, 0.5),
		"refnx too large": search(4, 1, 3, 0.5),
		"refny zero":      search(1, 0, 3, 0.5),
		"refny too large": search(1, 3, 3, 0.5),
	} {
		_, err := refpixel.Find(p, s.ifgs)
		s.ErrorIs(err, refpixel.ErrInvalidParam, name)
		s.NotErrorIs(err, refpixel.ErrNotFound, name)
	}
}

func (s *ValidateSuite) TestValidationOrder() {
	// Chip size is checked before the fraction, which is checked before refnx.
	p := search(0, 0, 4, 2)
	s.ErrorContains(refpixel.Validate(p, 5, 4), "chip size")

	p = search(0, 0, 3, 2)
	s.ErrorContains(refpixel.Validate(p, 5, 4), "minimum fraction")

	p = search(0, 0, 3, 0.5)
	s.ErrorContains(refpixel.Validate(p, 5, 4), "refnx")
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []int{5}, refpixel.Steps(10, 1, 1))
	assert.Equal(t, []int{1, 8}, refpixel.Steps(10, 2, 1))
	assert.Equal(t, []int{2, 5, 8}, refpixel.Steps(11, 3, 2))
	assert.Equal(t, []int{1, 2, 3}, refpixel.Steps(5, 3, 1))
	assert.Equal(t, []int{1, 3, 5}, refpixel.Steps(6, 3, 1))
	assert.Len(t, refpixel.Steps(100, 7, 3), 7)
}

func TestFind_LowestMeanStd(t *testing.T) {
	// Variance grows with distance from (3,3), so that centre scores lowest.
	bowl := grid(5, 5, func(y, x int) float64 {
		dy, dx := float64(y-3), float64(x-3)
		return dy*dy + dx*dx
	})
	ifgs := stackOf(t, bowl, bowl)

	p, err := refpixel.Find(search(3, 3, 3, 0.5), ifgs)
	require.NoError(t, err)
	assert.Equal(t, refpixel.Pixel{Row: 3, Col: 3}, p)
}

func TestFind_FirstFoundWinsTies(t *testing.T) {
	ifgs := stackOf(t, grid(5, 5, constant(1)), grid(5, 5, constant(1)))

	p, err := refpixel.Find(search(3, 3, 3, 0.5), ifgs)
	require.NoError(t, err)
	assert.Equal(t, refpixel.Pixel{Row: 1, Col: 1}, p)
}

func TestFind_CoverageInEveryInterferogram(t *testing.T) {
	// Chip 3, min_frac 0.5: a chip needs more than 4.5 valid cells.
	// The second interferogram blanks rows 0-1, cols 0-2, leaving only 3
	// valid cells around (1,1) and 5 around (1,2).
	holes := grid(5, 5, func(y, x int) float64 {
		if y <= 1 && x <= 2 {
			return nan
		}
		return 1
	})
	ifgs := stackOf(t, grid(5, 5, constant(1)), holes)

	p, err := refpixel.Find(search(3, 3, 3, 0.5), ifgs)
	require.NoError(t, err)
	assert.Equal(t, refpixel.Pixel{Row: 1, Col: 2}, p)
}

func TestFind_NotFound(t *testing.T) {
	ifgs := stackOf(t, grid(5, 5, constant(1)))

	// Full coverage requires more than 9 valid cells of 9.
	_, err := refpixel.Find(search(3, 3, 3, 1.0), ifgs)
	assert.ErrorIs(t, err, refpixel.ErrNotFound)
	assert.NotErrorIs(t, err, refpixel.ErrInvalidParam)

	empty := stackOf(t, grid(5, 5, func(int, int) float64 { return nan }))
	_, err = refpixel.Find(search(3, 3, 3, 0), empty)
	assert.ErrorIs(t, err, refpixel.ErrNotFound)
}

func TestFind_ClippedWindowsAtEdge(t *testing.T) {
	// Steps(6,3,1) puts a centre on the last column; its chip is clipped.
	ifgs := stackOf(t, grid(6, 6, func(y, x int) float64 { return float64(x) }))

	p, err := refpixel.Find(search(3, 3, 3, 0.5), ifgs)
	require.NoError(t, err)
	// The clipped chip at column 5 holds only columns 4-5 and scores lowest.
	assert.Equal(t, refpixel.Pixel{Row: 1, Col: 5}, p)
}

func TestFind_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grids := make([][][]float64, 4)
	for k := range grids {
		grids[k] = grid(40, 50, func(int, int) float64 {
			if rng.Float64() < 0.15 {
				return nan
			}
			return rng.NormFloat64()
		})
	}
	ifgs := stackOf(t, grids...)
	params := search(9, 7, 5, 0.7)

	want, err := refpixel.Find(params, ifgs, refpixel.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 0} {
		got, err := refpixel.Find(params, ifgs, refpixel.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

func TestFind_StackErrors(t *testing.T) {
	_, err := refpixel.Find(search(1, 1, 3, 0.5), nil)
	assert.ErrorIs(t, err, ifg.ErrEmptyStack)

	a := stackOf(t, grid(4, 5, constant(1)))[0]
	b := stackOf(t, grid(5, 5, constant(1)))[0]
	_, err = refpixel.Find(search(1, 1, 3, 0.5), []*ifg.Interferogram{a, b})
	assert.ErrorIs(t, err, ifg.ErrShapeMismatch)
}

func TestFind_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ifgs := stackOf(t, grid(5, 5, constant(1)))

	_, err := refpixel.Find(search(1, 1, 3, 0.5), ifgs, refpixel.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reference pixel selected")
	assert.Contains(t, buf.String(), "row=2")
}
