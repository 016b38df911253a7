// Package epoch derives the acquisition epochs referenced by an interferogram
// stack: the distinct dates, how many interferograms touch each one, and each
// date's offset in years from the first acquisition.
package epoch

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/ifgnet/ifg"
)

// DaysPerYear converts elapsed days into fractional years.
const DaysPerYear = 365.25

// List is the ordered set of epochs of a stack.
//
// Dates are ascending and distinct. Repeat[i] counts the interferograms
// whose master or slave is Dates[i]; Span[i] is the elapsed time in years
// from Dates[0]. All three slices have the same length.
type List struct {
	Dates  []time.Time
	Repeat []int
	Span   []float64
}

// Derive builds the epoch List for ifgs.
//
// Repeat counts come from a single frequency count over all master and slave
// dates, so sum(Repeat) == 2*len(ifgs). Span uses whole elapsed days.
//
// Errors:
//   - ifg.ErrEmptyStack: ifgs is empty.
//
// Complexity: O(N log N) for N interferograms.
func Derive(ifgs []*ifg.Interferogram) (List, error) {
	if len(ifgs) == 0 {
		return List{}, fmt.Errorf("deriving epochs: %w", ifg.ErrEmptyStack)
	}

	counts := make(map[time.Time]int, 2*len(ifgs))
	for _, i := range ifgs {
		counts[ifg.Day(i.Master)]++
		counts[ifg.Day(i.Slave)]++
	}

	dates := make([]time.Time, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	l := List{
		Dates:  dates,
		Repeat: make([]int, len(dates)),
		Span:   make([]float64, len(dates)),
	}
	first := dates[0]
	for k, d := range dates {
		l.Repeat[k] = counts[d]
		l.Span[k] = float64(elapsedDays(first, d)) / DaysPerYear
	}

	return l, nil
}

// elapsedDays returns the number of whole days from a to b.
func elapsedDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Len returns the number of epochs.
func (l List) Len() int { return len(l.Dates) }

// IDs returns the epoch dates in ifg.DateLayout form, in List order.
// These are the vertex identifiers of an interferogram network.
func (l List) IDs() []string {
	ids := make([]string, len(l.Dates))
	for k, d := range l.Dates {
		ids[k] = d.Format(ifg.DateLayout)
	}

	return ids
}

// Index returns the position of date in the list.
func (l List) Index(date time.Time) (int, bool) {
	d := ifg.Day(date)
	k := sort.Search(len(l.Dates), func(k int) bool { return !l.Dates[k].Before(d) })
	if k < len(l.Dates) && l.Dates[k].Equal(d) {
		return k, true
	}

	return 0, false
}
