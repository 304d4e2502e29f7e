// Package inspect builds a serializable snapshot of a document tree for
// debugging: tags, classes, attributes, inline styles, and measured
// geometry, as both JSON and an indented text dump.
package inspect

// Node is one element in the inspection tree.
type Node struct {
	// Tag is the element's tag name.
	Tag string `json:"tag"`

	// Classes are the element's classes, in insertion order.
	Classes []string `json:"classes,omitempty"`

	// Attrs are the element's attributes.
	Attrs map[string]string `json:"attrs,omitempty"`

	// Style holds the element's inline style properties, including
	// custom properties like --card-min.
	Style map[string]string `json:"style,omitempty"`

	// Geometry contains the element's measured extents.
	Geometry Geometry `json:"geometry"`

	// Text is the element's text content, if any.
	Text string `json:"text,omitempty"`

	// Children contains child nodes in document order.
	Children []*Node `json:"children,omitempty"`
}

// Geometry is the measured extent pair of an element.
type Geometry struct {
	ClientWidth  int `json:"client_width"`
	ClientHeight int `json:"client_height"`
	ScrollWidth  int `json:"scroll_width"`
	ScrollHeight int `json:"scroll_height"`
}

// Overflowing reports whether content exceeds the client box in either axis.
func (g Geometry) Overflowing() bool {
	return g.ScrollWidth > g.ClientWidth || g.ScrollHeight > g.ClientHeight
}
