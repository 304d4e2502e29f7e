// Package dom provides a small in-memory document model with the handful of
// browser-ish capabilities the cardwall behaviors need: attributes, class
// lists, inline styles, bubbling events, selector matching, resize
// observation, a microtask queue, and a font-readiness signal.
//
// Documents are not safe for concurrent use. Drive a document from a single
// goroutine, the same way a bubbletea model is driven by its update loop.
package dom

import (
	"fmt"
	"strings"
)

// LayoutFunc computes an element's content (scroll) extent from its current
// styles and the client box imposed on it. Installing one gives the element
// real layout behavior: reading ScrollSize after a style write re-runs it,
// which is the in-memory equivalent of a forced synchronous layout.
type LayoutFunc func(el *Element, clientWidth, clientHeight int) (scrollWidth, scrollHeight int)

// Element is a node in an in-memory document tree.
type Element struct {
	doc      *Document
	tag      string
	id       int
	attrs    map[string]string
	classes  []string
	style    map[string]string
	text     string
	parent   *Element
	children []*Element

	layout       LayoutFunc
	clientW      int
	clientH      int
	scrollW      int
	scrollH      int
	needsLayout  bool
	listeners    map[string]map[int]Handler
	nextListener int
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in document order.
func (e *Element) Children() []*Element { return e.children }

// Append adds child as the last child of e. Appending an element that
// already has a parent detaches it first.
func (e *Element) Append(child *Element) {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches e from its parent. Listeners and geometry survive removal;
// a detached element keeps reporting its last-known measurements.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.remove(e)
		e.parent = nil
	}
}

func (e *Element) remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Text returns the element's text content.
func (e *Element) Text() string { return e.text }

// SetText replaces the element's text content and invalidates layout.
func (e *Element) SetText(text string) {
	e.text = text
	e.needsLayout = true
}

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (e *Element) SetAttr(name, value string) {
	e.attrs[name] = value
}

// RemoveAttr deletes the named attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Attrs returns a copy of all attributes.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Styles returns a copy of all inline style properties.
func (e *Element) Styles() map[string]string {
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return append([]string(nil), e.classes...)
}

// HasClass reports whether the class is present on the element.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds the class if not already present.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes the class if present.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass flips the class and returns whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.AddClass(class)
	return true
}

// StyleProperty returns the inline style value for the property, or "".
func (e *Element) StyleProperty(name string) string {
	return e.style[name]
}

// SetStyleProperty sets an inline style property and invalidates layout.
// Custom properties ("--card-min") are stored like any other property.
func (e *Element) SetStyleProperty(name, value string) {
	e.style[name] = value
	e.needsLayout = true
}

// SetLayoutFunc installs the element's layout function.
func (e *Element) SetLayoutFunc(fn LayoutFunc) {
	e.layout = fn
	e.needsLayout = true
}

// SetClientSize imposes the element's visible box, the way a browser's
// layout pass would. Resize observers registered for the element are
// notified with the new content width.
func (e *Element) SetClientSize(width, height int) {
	changed := width != e.clientW || height != e.clientH
	e.clientW, e.clientH = width, height
	e.needsLayout = true
	if changed && e.doc != nil {
		e.doc.notifyResize(e, width)
	}
}

// ClientSize returns the element's visible extent.
func (e *Element) ClientSize() (width, height int) {
	return e.clientW, e.clientH
}

// ScrollSize returns the element's content extent, re-running layout first
// if styles, text, or the client box changed since the last read.
func (e *Element) ScrollSize() (width, height int) {
	if e.needsLayout && e.layout != nil {
		e.scrollW, e.scrollH = e.layout(e, e.clientW, e.clientH)
		e.needsLayout = false
	}
	return e.scrollW, e.scrollH
}

// SetScrollSize fixes the content extent directly. Only meaningful for
// elements without a layout function; tests use it to fake geometry.
func (e *Element) SetScrollSize(width, height int) {
	e.scrollW, e.scrollH = width, height
	e.needsLayout = false
}

// String returns a compact description for logging.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteString(e.tag)
	if id, ok := e.attrs["id"]; ok {
		fmt.Fprintf(&sb, "#%s", id)
	}
	for _, c := range e.classes {
		sb.WriteString("." + c)
	}
	return sb.String()
}
