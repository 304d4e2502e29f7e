package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"cardwall/dom"
	"cardwall/flipcard"
)

// Attributes the renderer reads off card elements.
const (
	AttrTitle = "data-title"
	AttrBack  = "data-back"
)

// RenderCard draws one card element at the given total cell width. The body
// is the element's text wrapped at the column count its fitted font size
// allows, capped to the lines its client box can show, so the fit search's
// result is directly visible.
func RenderCard(el *dom.Element, widthCells int, selected bool) string {
	style := CardStyle()
	if el.HasClass(flipcard.DefaultToggleClass) {
		style = FlippedCardStyle()
	} else if selected {
		style = FocusedCardStyle()
	}

	inner := widthCells - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	title, _ := el.Attr(AttrTitle)
	size := FontSizePx(el)

	var body string
	if el.HasClass(flipcard.DefaultToggleClass) {
		back, _ := el.Attr(AttrBack)
		body = TextStyles.Secondary.Render(clampText(back, inner, maxBodyLines(el, size)))
	} else {
		clientW, _ := el.ClientSize()
		cols := clientW / GlyphAdvancePx(size)
		wrapped := strings.Join(WrapLines(el.Text(), cols), "\n")
		body = TextStyles.Primary.Render(clampText(wrapped, inner, maxBodyLines(el, size)))
	}

	badge := sizeBadgeStyle.Render(fmt.Sprintf("%dpx", size))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		truncate.String(titleStyle.Render(title), uint(inner)),
		body,
		badge,
	)
	return style.Width(widthCells - style.GetHorizontalBorderSize()).Render(content)
}

// maxBodyLines converts the element's client height into displayable lines
// at the given font size.
func maxBodyLines(el *dom.Element, fontSizePx int) int {
	_, clientH := el.ClientSize()
	n := clientH / LineHeightPx(fontSizePx)
	if n < 1 {
		return 1
	}
	return n
}

// clampText truncates each line to the cell width and caps the line count.
func clampText(text string, widthCells, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(widthCells))
	}
	return strings.Join(lines, "\n")
}

// RenderWall lays the rendered cards out in rows of the given column count.
func RenderWall(cards []string, columns int) string {
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += columns {
		end := i + columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
