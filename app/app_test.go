package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwall/config"
	"cardwall/flipcard"
	"cardwall/grid"
	"cardwall/testing/harness"
	"cardwall/testing/snapshot"
	"cardwall/ui"
)

func newTestWall(t *testing.T, width, height int) (*harness.Harness, *wall) {
	t.Helper()
	w := newWall(context.Background(), config.DefaultConfig())
	h := harness.New(t, w, width, height)
	model, ok := h.Model().(*wall)
	require.True(t, ok)
	return h, model
}

func TestSampleDocument(t *testing.T) {
	doc, container, cards := SampleDocument()

	require.NotNil(t, doc)
	assert.Len(t, cards, len(samples))
	assert.Equal(t, cards, doc.QuerySelectorAll(`[data-flip-card]`))

	_, hasGrid := container.Attr("data-card-grid")
	assert.True(t, hasGrid)

	// Per-card fit overrides survive into the tree.
	min, _ := cards[1].Attr("data-fit-min")
	max, _ := cards[1].Attr("data-fit-max")
	assert.Equal(t, "10", min)
	assert.Equal(t, "20", max)
}

func TestWindowSizeDrivesCardMin(t *testing.T) {
	// 120 cells at 8px each is a 960px container, the wide step.
	_, w := newTestWall(t, 120, 40)
	assert.Equal(t, grid.CardMinWide, w.cardMinPx())

	// Cards were resized from the step and flushed, so they carry fitted
	// font sizes already.
	for _, card := range w.cards {
		assert.NotEmpty(t, card.StyleProperty("font-size"))
	}
}

func TestResizeSteps(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		_, w := newTestWall(t, size.Width, size.Height)
		want := grid.MinCardWidth(size.Width * ui.CellWidthPx)
		assert.Equal(t, want, w.cardMinPx())
	})
}

func TestEnterFlipsSelectedCard(t *testing.T) {
	h, w := newTestWall(t, 120, 40)

	h.SendSpecialKey(tea.KeyEnter)
	assert.True(t, w.cards[0].HasClass(flipcard.DefaultToggleClass))
	snapshot.AssertContains(t, h.View(), "Each search")

	h.SendSpecialKey(tea.KeyEnter)
	assert.False(t, w.cards[0].HasClass(flipcard.DefaultToggleClass))
}

func TestNavigation(t *testing.T) {
	h, w := newTestWall(t, 120, 40)

	h.SendKey("l")
	h.SendKey("l")
	assert.Equal(t, 2, w.selected)

	h.SendKey("h")
	assert.Equal(t, 1, w.selected)

	// Selection is clamped at both ends.
	h.SendKey("h")
	h.SendKey("h")
	assert.Equal(t, 0, w.selected)
}

func TestFontsReady(t *testing.T) {
	h, w := newTestWall(t, 120, 40)
	assert.False(t, w.fontsLoaded)

	h.SendMsg(fontsReadyMsg{})
	assert.True(t, w.fontsLoaded)
	assert.True(t, w.doc.Fonts().Loaded())
	snapshot.AssertContains(t, h.View(), "fonts ready")

	// A second readiness signal is a no-op.
	h.SendMsg(fontsReadyMsg{})
	assert.True(t, w.fontsLoaded)
}

func TestFontsKeyFinishesLoad(t *testing.T) {
	h, w := newTestWall(t, 120, 40)
	h.SendKey("f")
	assert.True(t, w.fontsLoaded)
}

func TestQuit(t *testing.T) {
	h, _ := newTestWall(t, 120, 40)
	cmd := h.SendKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewContents(t *testing.T) {
	h, _ := newTestWall(t, 120, 40)
	view := h.View()

	snapshot.AssertContains(t, view, "card wall")
	snapshot.AssertContains(t, view, "Fit to box")
	snapshot.AssertContains(t, view, "Step policy")

	// Back text stays hidden until a card is flipped.
	snapshot.AssertNotContains(t, view, "Each search")
}
