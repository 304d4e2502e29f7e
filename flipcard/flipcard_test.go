package flipcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardwall/dom"
)

func newCardDoc(t *testing.T) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()

	container := doc.CreateElement("section")
	container.SetAttr("data-card-grid", "")
	doc.Root().Append(container)

	card := doc.CreateElement("article")
	card.SetAttr("data-flip-card", "")
	container.Append(card)

	return doc, container, card
}

func TestClickTogglesCard(t *testing.T) {
	doc, _, card := newCardDoc(t)

	dispose := Activate(doc, Options{})
	defer dispose()

	card.Click()
	assert.True(t, card.HasClass(DefaultToggleClass))
	pressed, _ := card.Attr("aria-pressed")
	assert.Equal(t, "true", pressed)

	card.Click()
	assert.False(t, card.HasClass(DefaultToggleClass))
	pressed, _ = card.Attr("aria-pressed")
	assert.Equal(t, "false", pressed)
}

func TestClickOnDescendantTogglesClosestCard(t *testing.T) {
	doc, _, card := newCardDoc(t)
	inner := doc.CreateElement("span")
	card.Append(inner)

	dispose := Activate(doc, Options{})
	defer dispose()

	inner.Click()
	assert.True(t, card.HasClass(DefaultToggleClass))
	assert.False(t, inner.HasClass(DefaultToggleClass))
}

func TestClickOutsideAnyCardIsIgnored(t *testing.T) {
	doc, container, card := newCardDoc(t)

	dispose := Activate(doc, Options{})
	defer dispose()

	container.Click()
	assert.False(t, card.HasClass(DefaultToggleClass))
}

func TestKeydownToggles(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		wantFlip    bool
		wantDefault bool // default action cancelled
	}{
		{name: "enter flips", key: "Enter", wantFlip: true, wantDefault: false},
		{name: "space flips and cancels default", key: " ", wantFlip: true, wantDefault: true},
		{name: "escape is ignored", key: "Escape", wantFlip: false, wantDefault: false},
		{name: "plain letter is ignored", key: "a", wantFlip: false, wantDefault: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _, card := newCardDoc(t)

			dispose := Activate(doc, Options{})
			defer dispose()

			ev := &dom.Event{Type: "keydown", Key: tt.key}
			card.Dispatch(ev)

			assert.Equal(t, tt.wantFlip, card.HasClass(DefaultToggleClass))
			assert.Equal(t, tt.wantDefault, ev.DefaultPrevented())
		})
	}
}

func TestDisposeRemovesListeners(t *testing.T) {
	doc, _, card := newCardDoc(t)

	dispose := Activate(doc, Options{})

	card.Click()
	require.True(t, card.HasClass(DefaultToggleClass))

	dispose()
	dispose() // second call is a no-op

	card.Click()
	card.Dispatch(&dom.Event{Type: "keydown", Key: "Enter"})
	assert.True(t, card.HasClass(DefaultToggleClass), "state frozen after disposal")
}

func TestCustomOptions(t *testing.T) {
	doc := dom.NewDocument()
	container := doc.CreateElement("div")
	container.AddClass("deck")
	doc.Root().Append(container)

	card := doc.CreateElement("div")
	card.AddClass("tile")
	container.Append(card)

	dispose := Activate(doc, Options{
		ContainerSelector: ".deck",
		CardSelector:      ".tile",
		ToggleClass:       "flipped",
	})
	defer dispose()

	card.Click()
	assert.True(t, card.HasClass("flipped"))
}
