package bootstrap

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwall/config"
	"cardwall/dom"
	"cardwall/ui"
)

func newPage(t *testing.T) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()

	container := doc.CreateElement("section")
	container.SetAttr("data-card-grid", "")
	container.SetClientSize(800, 600)
	doc.Root().Append(container)

	card := doc.CreateElement("article")
	card.SetAttr("data-flip-card", "")
	card.SetAttr("data-fit-text", "on")
	card.SetText("The quick brown fox jumps over the lazy dog, repeatedly and at length.")
	card.SetLayoutFunc(ui.TextLayout())
	card.SetClientSize(200, 80)
	container.Append(card)

	return doc, container, card
}

func TestActivateWiresAllThreeBehaviors(t *testing.T) {
	doc, container, card := newPage(t)

	dispose := Activate(doc, config.DefaultConfig())
	defer dispose()
	doc.Flush()

	// Grid step policy ran.
	assert.Equal(t, "220px", container.StyleProperty("--card-min"))

	// Fit-to-box ran and landed inside the default bounds.
	size, err := strconv.Atoi(strings.TrimSuffix(card.StyleProperty("font-size"), "px"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, size, 12)
	assert.LessOrEqual(t, size, 28)

	// Flip toggling is live.
	card.Click()
	assert.True(t, card.HasClass("is-flipped"))
}

func TestActivateNilConfigUsesDefaults(t *testing.T) {
	doc, container, _ := newPage(t)

	dispose := Activate(doc, nil)
	defer dispose()
	doc.Flush()

	assert.Equal(t, "220px", container.StyleProperty("--card-min"))
}

func TestDisposeTearsEverythingDown(t *testing.T) {
	doc, container, card := newPage(t)

	dispose := Activate(doc, config.DefaultConfig())
	doc.Flush()
	fitted := card.StyleProperty("font-size")
	require.NotEmpty(t, fitted)

	dispose()
	dispose() // second call is a no-op

	container.SetClientSize(1300, 600)
	card.SetClientSize(100, 40)
	card.Click()
	doc.Flush()

	assert.Equal(t, "220px", container.StyleProperty("--card-min"))
	assert.Equal(t, fitted, card.StyleProperty("font-size"))
	assert.False(t, card.HasClass("is-flipped"))
}
