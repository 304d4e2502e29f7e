// Package fittext shrinks a text box's font size until its content no longer
// overflows its visible area, using a binary search over integer pixel sizes.
//
// The search is written against two narrow ports (set a font size, read the
// resulting geometry) so it can run against the in-memory dom, a terminal
// renderer, or a test fake interchangeably.
package fittext

// TolerancePx absorbs sub-pixel rounding when comparing content to visible
// extents. One device pixel of slack per axis.
const TolerancePx = 1

// Default bounds applied when an element carries no data-fit-min/max
// overrides.
const (
	DefaultMinPx = 12
	DefaultMaxPx = 28
)

// Metrics is one measurement of a box: the content (scrollable) extent and
// the visible (client) extent, per axis, in pixels.
type Metrics struct {
	ContentWidth  int
	ContentHeight int
	VisibleWidth  int
	VisibleHeight int
}

// Overflows reports whether content exceeds the visible box in either axis,
// beyond the sub-pixel tolerance.
func (m Metrics) Overflows() bool {
	return m.ContentHeight-m.VisibleHeight > TolerancePx ||
		m.ContentWidth-m.VisibleWidth > TolerancePx
}

// Box is the measurement/mutation surface the search runs against.
// SetFontSize applies an integer pixel font size; Metrics must reflect the
// box's geometry after the most recent SetFontSize (a forced layout read).
type Box interface {
	SetFontSize(px int)
	Metrics() Metrics
}

// Bounds is the inclusive integer pixel range the search operates in.
// Min <= Max is assumed, not validated; if violated the search degenerates
// to returning Min.
type Bounds struct {
	Min int
	Max int
}

// Fit finds the largest font size in bounds at which the box does not
// overflow, applies it, and returns it. If the box fits at Max no search
// runs (exactly one measurement). If no size in bounds fits, Min is applied.
//
// Correctness assumes overflow is monotonic non-decreasing in font size;
// under pathological styling where it is not, the result is an approximation
// rather than a global optimum. Measurement cost is O(log(Max-Min)).
func Fit(box Box, b Bounds) int {
	box.SetFontSize(b.Max)
	if !box.Metrics().Overflows() {
		return b.Max
	}

	// Max is known to overflow; the remaining candidates are below it.
	lo, hi, best := b.Min, b.Max-1, b.Min
	for lo <= hi {
		mid := (lo + hi) / 2
		box.SetFontSize(mid)
		if box.Metrics().Overflows() {
			hi = mid - 1
		} else {
			best = mid
			lo = mid + 1
		}
	}
	box.SetFontSize(best)
	return best
}
