package dom

// Document owns an element tree, a microtask queue, resize observation, and
// the font-readiness signal.
type Document struct {
	root   *Element
	fonts  *FontSet
	tasks  []func()
	nextID int

	resizeSubs map[*Element]map[int]func(contentWidth int)
	nextResize int
}

// NewDocument creates an empty document with a "root" element.
func NewDocument() *Document {
	d := &Document{
		fonts:      &FontSet{subs: make(map[int]func())},
		resizeSubs: make(map[*Element]map[int]func(int)),
	}
	d.root = d.CreateElement("root")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	d.nextID++
	return &Element{
		doc:   d,
		tag:   tag,
		id:    d.nextID,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// QuerySelectorAll returns all elements in the document matching the
// selector, in document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return d.root.QuerySelectorAll(selector)
}

// QueueMicrotask schedules fn to run on the next Flush. This is the
// document's stand-in for deferring work past the current synchronous phase.
func (d *Document) QueueMicrotask(fn func()) {
	d.tasks = append(d.tasks, fn)
}

// Flush runs queued microtasks until the queue is empty, including tasks
// queued by tasks already running.
func (d *Document) Flush() {
	for len(d.tasks) > 0 {
		tasks := d.tasks
		d.tasks = nil
		for _, fn := range tasks {
			fn()
		}
	}
}

// ObserveResize registers fn to be called with the element's new content
// width whenever its client box changes. The returned stop function
// unregisters the observation and is idempotent.
func (d *Document) ObserveResize(el *Element, fn func(contentWidth int)) (stop func()) {
	if d.resizeSubs[el] == nil {
		d.resizeSubs[el] = make(map[int]func(int))
	}
	id := d.nextResize
	d.nextResize++
	d.resizeSubs[el][id] = fn
	return func() {
		delete(d.resizeSubs[el], id)
	}
}

func (d *Document) notifyResize(el *Element, contentWidth int) {
	// Snapshot so an observer stopping itself mid-notification is safe.
	var fns []func(int)
	for _, fn := range d.resizeSubs[el] {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(contentWidth)
	}
}

// Fonts returns the document's font-readiness signal.
func (d *Document) Fonts() *FontSet { return d.fonts }

// FontSet is a one-shot readiness signal mirroring the platform's font
// loading subsystem: subscribers registered before loading completes are
// called exactly once when it does; subscribers registered after are called
// immediately.
type FontSet struct {
	loaded bool
	subs   map[int]func()
	next   int
}

// Loaded reports whether fonts have finished loading.
func (f *FontSet) Loaded() bool { return f.loaded }

// OnReady registers fn to run once fonts are ready. If they already are,
// fn runs synchronously before OnReady returns. The returned cancel
// function unregisters a pending fn and is idempotent.
func (f *FontSet) OnReady(fn func()) (cancel func()) {
	if f.loaded {
		fn()
		return func() {}
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() {
		delete(f.subs, id)
	}
}

// SetLoaded marks fonts as loaded and fires pending subscribers once.
// Subsequent calls are no-ops.
func (f *FontSet) SetLoaded() {
	if f.loaded {
		return
	}
	f.loaded = true
	subs := f.subs
	f.subs = make(map[int]func())
	for _, fn := range subs {
		fn()
	}
}
