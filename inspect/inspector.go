package inspect

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"cardwall/dom"
)

// FromElement captures el and its subtree. Reading geometry forces layout,
// so the snapshot reflects settled measurements.
func FromElement(el *dom.Element) *Node {
	cw, ch := el.ClientSize()
	sw, sh := el.ScrollSize()
	n := &Node{
		Tag:     el.Tag(),
		Classes: el.Classes(),
		Attrs:   el.Attrs(),
		Style:   el.Styles(),
		Text:    el.Text(),
		Geometry: Geometry{
			ClientWidth:  cw,
			ClientHeight: ch,
			ScrollWidth:  sw,
			ScrollHeight: sh,
		},
	}
	for _, c := range el.Children() {
		n.Children = append(n.Children, FromElement(c))
	}
	return n
}

// JSON captures the document as indented JSON.
func JSON(doc *dom.Document) (string, error) {
	data, err := json.MarshalIndent(FromElement(doc.Root()), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal inspection tree: %w", err)
	}
	return string(data), nil
}

// Dump renders el's subtree as an indented one-line-per-element text tree.
func Dump(el *dom.Element) string {
	var sb strings.Builder
	dump(&sb, FromElement(el), 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Tag)
	for _, c := range n.Classes {
		sb.WriteString("." + c)
	}

	keys := make([]string, 0, len(n.Style))
	for k := range n.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%s", k, n.Style[k])
	}

	fmt.Fprintf(sb, " client=%dx%d scroll=%dx%d",
		n.Geometry.ClientWidth, n.Geometry.ClientHeight,
		n.Geometry.ScrollWidth, n.Geometry.ScrollHeight)
	if n.Geometry.Overflowing() {
		sb.WriteString(" OVERFLOW")
	}
	sb.WriteString("\n")

	for _, c := range n.Children {
		dump(sb, c, depth+1)
	}
}
