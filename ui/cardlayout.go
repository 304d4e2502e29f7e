// Package ui renders the card wall in a terminal and supplies the text
// layout function that gives dom elements measurable geometry.
package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"cardwall/dom"
	"cardwall/fittext"
)

// Pixel model for the terminal demo. Terminal cells have no real pixel size;
// these scale factors keep the dom geometry and the rendered output in the
// same proportions.
const (
	// CellWidthPx is the assumed pixel width of one terminal cell.
	CellWidthPx = 8

	// CellHeightPx is the assumed pixel height of one terminal cell.
	CellHeightPx = 16
)

// Glyph metrics as fractions of the font size: an average advance of 0.6em
// and a line height of 1.4em.
const (
	advanceNum    = 3
	advanceDen    = 5
	lineHeightNum = 7
	lineHeightDen = 5
)

// GlyphAdvancePx returns the approximate advance of one glyph at the given
// font size.
func GlyphAdvancePx(fontSizePx int) int {
	a := fontSizePx * advanceNum / advanceDen
	if a < 1 {
		return 1
	}
	return a
}

// LineHeightPx returns the line height at the given font size.
func LineHeightPx(fontSizePx int) int {
	h := fontSizePx * lineHeightNum / lineHeightDen
	if h < 1 {
		return 1
	}
	return h
}

// FontSizePx parses the element's inline font-size, falling back to the
// fit-to-box default maximum when unset or malformed.
func FontSizePx(el *dom.Element) int {
	v := el.StyleProperty("font-size")
	v = strings.TrimSuffix(v, "px")
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fittext.DefaultMaxPx
	}
	return n
}

// TextLayout returns a dom.LayoutFunc measuring the element's text content:
// the text wraps at the column count the client width allows at the current
// font size, and the content extent is the wrapped line grid scaled back to
// pixels. Larger font sizes wrap earlier and stack more lines, so overflow
// grows monotonically with size, which is what the fit search assumes.
func TextLayout() dom.LayoutFunc {
	return func(el *dom.Element, clientW, clientH int) (int, int) {
		size := FontSizePx(el)
		advance := GlyphAdvancePx(size)

		cols := clientW / advance
		if cols < 1 {
			cols = 1
		}
		lines := WrapLines(el.Text(), cols)

		widest := 0
		for _, line := range lines {
			if w := runewidth.StringWidth(line); w > widest {
				widest = w
			}
		}
		return widest * advance, len(lines) * LineHeightPx(size)
	}
}

// WrapLines word-wraps text at the column limit and returns the lines.
func WrapLines(text string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	return strings.Split(wordwrap.String(text, cols), "\n")
}
