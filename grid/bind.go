package grid

import (
	"fmt"

	"cardwall/dom"
	"cardwall/log"
)

// DefaultSelector identifies grid containers.
const DefaultSelector = "[data-card-grid]"

// Options configures Activate.
type Options struct {
	// Selector identifies grid containers, queried once at activation.
	Selector string
}

// Activate applies the step policy to every container currently matching
// the selector: the --card-min property is written immediately from the
// container's current width and rewritten on every resize notification.
// The returned dispose stops all observation; calling it twice is safe.
func Activate(doc *dom.Document, opts Options) (dispose func()) {
	if opts.Selector == "" {
		opts.Selector = DefaultSelector
	}

	var stops []func()
	for _, el := range doc.QuerySelectorAll(opts.Selector) {
		el := el
		apply(el)
		stops = append(stops, doc.ObserveResize(el, func(contentWidth int) {
			apply(el)
		}))
	}
	log.LayoutTrace("grid: activated %d container(s) for %q", len(stops), opts.Selector)

	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

func apply(el *dom.Element) {
	w, _ := el.ClientSize()
	min := MinCardWidth(w)
	el.SetStyleProperty(VarName, fmt.Sprintf("%dpx", min))
	log.LayoutTrace("grid: %s width=%d -> %s=%dpx", el, w, VarName, min)
}
