package dom

// Event is a bubbling document event. Key is set for keyboard events and
// holds the logical key name ("Enter", " ", "a").
type Event struct {
	Type string
	Key  string

	target           *Element
	stopped          bool
	defaultPrevented bool
}

// Handler receives a dispatched event.
type Handler func(*Event)

// Target returns the element the event was dispatched on.
func (ev *Event) Target() *Element { return ev.target }

// StopPropagation prevents the event from bubbling to ancestors after the
// current element's listeners run.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// AddEventListener registers a handler for the event type and returns a
// function that removes it. Removal is idempotent.
func (e *Element) AddEventListener(typ string, h Handler) (remove func()) {
	if e.listeners == nil {
		e.listeners = make(map[string]map[int]Handler)
	}
	if e.listeners[typ] == nil {
		e.listeners[typ] = make(map[int]Handler)
	}
	id := e.nextListener
	e.nextListener++
	e.listeners[typ][id] = h
	return func() {
		delete(e.listeners[typ], id)
	}
}

// Dispatch delivers the event to e's listeners and then bubbles it up the
// parent chain until the root or StopPropagation.
func (e *Element) Dispatch(ev *Event) {
	if ev.target == nil {
		ev.target = e
	}
	for node := e; node != nil; node = node.parent {
		// Snapshot so a handler removing itself mid-dispatch is safe.
		var hs []Handler
		for _, h := range node.listeners[ev.Type] {
			hs = append(hs, h)
		}
		for _, h := range hs {
			h(ev)
		}
		if ev.stopped {
			return
		}
	}
}

// Click dispatches a click event targeted at e.
func (e *Element) Click() {
	e.Dispatch(&Event{Type: "click"})
}
