// Package ifg models an interferogram: a grid of phase measurements derived
// from a pair of acquisitions (master, slave), with NaN marking missing cells.
//
// Interferograms are read-only once constructed. Every interferogram in a
// stack must share the same grid dimensions; CheckStack asserts this before
// any stack-wide computation.
package ifg

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the textual form of acquisition dates used in identifiers.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyGrid indicates a phase grid with no rows or no columns.
	ErrEmptyGrid = errors.New("ifg: phase grid is empty")

	// ErrNonRectangular indicates rows of differing length.
	ErrNonRectangular = errors.New("ifg: phase grid is not rectangular")

	// ErrEmptyStack indicates an operation that needs at least one interferogram.
	ErrEmptyStack = errors.New("ifg: interferogram stack is empty")

	// ErrShapeMismatch indicates interferograms in a stack with different grid dimensions.
	ErrShapeMismatch = errors.New("ifg: interferograms do not share grid dimensions")
)

// Interferogram is one phase grid and the acquisition dates it was formed from.
type Interferogram struct {
	// Master and Slave are the acquisition dates (UTC midnight).
	Master time.Time
	Slave  time.Time

	// Phase holds Phase[y][x]; NaN marks a missing value.
	Phase [][]float64

	// NaNFraction is the share of missing cells over the whole grid, in [0,1].
	NaNFraction float64
}

// New builds an Interferogram from a deep copy of phase and computes its NaN fraction.
// Dates are truncated to calendar days in UTC.
func New(master, slave time.Time, phase [][]float64) (*Interferogram, error) {
	if len(phase) == 0 || len(phase[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(phase[0])
	cells := make([][]float64, len(phase))
	missing := 0
	for y, row := range phase {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		cells[y] = make([]float64, w)
		copy(cells[y], row)
		for _, v := range row {
			if math.IsNaN(v) {
				missing++
			}
		}
	}

	return &Interferogram{
		Master:      Day(master),
		Slave:       Day(slave),
		Phase:       cells,
		NaNFraction: float64(missing) / float64(len(phase)*w),
	}, nil
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Width returns the number of columns.
func (i *Interferogram) Width() int {
	if len(i.Phase) == 0 {
		return 0
	}

	return len(i.Phase[0])
}

// Height returns the number of rows.
func (i *Interferogram) Height() int { return len(i.Phase) }

// At returns the phase at row y, column x.
func (i *Interferogram) At(y, x int) float64 { return i.Phase[y][x] }

// IsValid reports whether the cell at (y, x) holds a measurement.
func (i *Interferogram) IsValid(y, x int) bool { return !math.IsNaN(i.Phase[y][x]) }

// MasterID returns the master date in DateLayout form.
func (i *Interferogram) MasterID() string { return i.Master.Format(DateLayout) }

// SlaveID returns the slave date in DateLayout form.
func (i *Interferogram) SlaveID() string { return i.Slave.Format(DateLayout) }

// EdgeID is the combined identifier of the date pair, "<master>,<slave>".
func (i *Interferogram) EdgeID() string { return i.MasterID() + "," + i.SlaveID() }

// String implements fmt.Stringer.
func (i *Interferogram) String() string {
	return fmt.Sprintf("ifg(%s %dx%d nan=%.3f)", i.EdgeID(), i.Width(), i.Height(), i.NaNFraction)
}

// CheckStack verifies the stack is non-empty and that every interferogram
// shares the first one's grid dimensions. It returns the shared width and height.
func CheckStack(ifgs []*Interferogram) (width, height int, err error) {
	if len(ifgs) == 0 {
		return 0, 0, ErrEmptyStack
	}
	width, height = ifgs[0].Width(), ifgs[0].Height()
	for k, i := range ifgs[1:] {
		if i.Width() != width || i.Height() != height {
			return 0, 0, fmt.Errorf("%s is %dx%d, want %dx%d (index %d): %w",
				i.EdgeID(), i.Width(), i.Height(), width, height, k+1, ErrShapeMismatch)
		}
	}

	return width, height, nil
}
