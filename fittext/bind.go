package fittext

import (
	"fmt"
	"strconv"

	"cardwall/dom"
	"cardwall/log"
)

// Attribute names read once per element at activation.
const (
	AttrMin = "data-fit-min"
	AttrMax = "data-fit-max"
)

// DefaultSelector identifies opted-in elements.
const DefaultSelector = `[data-fit-text="on"]`

// Options configures Activate. Zero values fall back to the package
// defaults.
type Options struct {
	// Selector identifies target elements, queried once at activation.
	Selector string
	// MinPx/MaxPx are the bounds used when an element has no valid
	// data-fit-min/data-fit-max attributes.
	MinPx int
	MaxPx int
}

func (o Options) withDefaults() Options {
	if o.Selector == "" {
		o.Selector = DefaultSelector
	}
	if o.MinPx == 0 {
		o.MinPx = DefaultMinPx
	}
	if o.MaxPx == 0 {
		o.MaxPx = DefaultMaxPx
	}
	return o
}

// Activate binds the fit-to-box policy to every element currently matching
// the selector. For each element it runs an initial fit on the document's
// next microtask flush, then re-fits on element resize notifications and
// once when fonts finish loading. Elements added to the document later are
// not picked up.
//
// The returned function disposes every binding; calling it twice is safe.
func Activate(doc *dom.Document, opts Options) (dispose func()) {
	opts = opts.withDefaults()

	els := doc.QuerySelectorAll(opts.Selector)
	bindings := make([]*binding, 0, len(els))
	for _, el := range els {
		bindings = append(bindings, bind(doc, el, opts))
	}
	log.LayoutTrace("fittext: activated %d element(s) for %q", len(bindings), opts.Selector)

	return func() {
		for _, b := range bindings {
			b.dispose()
		}
	}
}

// binding ties one element to the reactive trigger policy.
type binding struct {
	el     *dom.Element
	bounds Bounds

	stopResize func()
	stopFonts  func()
	disposed   bool
}

func bind(doc *dom.Document, el *dom.Element, opts Options) *binding {
	b := &binding{
		el:     el,
		bounds: elementBounds(el, opts),
	}

	// Initial fit is deferred so activation during document construction
	// measures settled geometry.
	doc.QueueMicrotask(b.refit)

	b.stopResize = doc.ObserveResize(el, func(int) { b.refit() })
	if fonts := doc.Fonts(); fonts != nil {
		// Fonts loading after first paint change text metrics; re-fit once
		// when they settle. A missing collaborator is a silent no-op.
		b.stopFonts = fonts.OnReady(b.refit)
	}
	return b
}

// refit re-runs the search against current geometry. Triggers never coalesce;
// the operation is idempotent and logarithmic, so redundant runs are fine.
func (b *binding) refit() {
	if b.disposed {
		return
	}
	size := Fit(&elementBox{el: b.el}, b.bounds)
	log.LayoutTrace("fittext: %s -> %dpx", b.el, size)
}

func (b *binding) dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.stopResize != nil {
		b.stopResize()
	}
	if b.stopFonts != nil {
		b.stopFonts()
	}
}

// elementBounds reads the per-element overrides, falling back to the
// configured defaults on missing or non-numeric values.
func elementBounds(el *dom.Element, opts Options) Bounds {
	return Bounds{
		Min: intAttr(el, AttrMin, opts.MinPx),
		Max: intAttr(el, AttrMax, opts.MaxPx),
	}
}

func intAttr(el *dom.Element, name string, fallback int) int {
	v, ok := el.Attr(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// elementBox adapts a dom element to the search ports. The only style it
// writes is the inline font-size, in pixel units.
type elementBox struct {
	el *dom.Element
}

func (b *elementBox) SetFontSize(px int) {
	b.el.SetStyleProperty("font-size", fmt.Sprintf("%dpx", px))
}

func (b *elementBox) Metrics() Metrics {
	cw, ch := b.el.ScrollSize()
	vw, vh := b.el.ClientSize()
	return Metrics{
		ContentWidth:  cw,
		ContentHeight: ch,
		VisibleWidth:  vw,
		VisibleHeight: vh,
	}
}
