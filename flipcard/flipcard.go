// Package flipcard toggles a flip class on card elements in response to
// click and keyboard input, using one delegated listener pair per container.
package flipcard

import (
	"cardwall/dom"
	"cardwall/log"
)

// Defaults used when Options fields are empty.
const (
	DefaultContainerSelector = "[data-card-grid]"
	DefaultCardSelector      = "[data-flip-card]"
	DefaultToggleClass       = "is-flipped"
)

// Options configures Activate.
type Options struct {
	// ContainerSelector identifies the containers that receive the
	// delegated listeners, queried once at activation.
	ContainerSelector string
	// CardSelector resolves the card from an event target via Closest.
	CardSelector string
	// ToggleClass is the class flipped on the card.
	ToggleClass string
}

func (o Options) withDefaults() Options {
	if o.ContainerSelector == "" {
		o.ContainerSelector = DefaultContainerSelector
	}
	if o.CardSelector == "" {
		o.CardSelector = DefaultCardSelector
	}
	if o.ToggleClass == "" {
		o.ToggleClass = DefaultToggleClass
	}
	return o
}

// Activate binds flip toggling to every container currently matching the
// container selector. Clicks anywhere inside a card flip it; Enter and
// Space flip it from the keyboard, with Space's default action cancelled.
// The returned dispose removes all listeners; calling it twice is safe.
func Activate(doc *dom.Document, opts Options) (dispose func()) {
	opts = opts.withDefaults()

	var removes []func()
	for _, container := range doc.QuerySelectorAll(opts.ContainerSelector) {
		removes = append(removes,
			container.AddEventListener("click", func(ev *dom.Event) {
				toggle(ev.Target(), opts)
			}),
			container.AddEventListener("keydown", func(ev *dom.Event) {
				switch ev.Key {
				case "Enter":
					toggle(ev.Target(), opts)
				case " ":
					// Space scrolls the page by default.
					ev.PreventDefault()
					toggle(ev.Target(), opts)
				}
			}),
		)
	}

	return func() {
		for _, remove := range removes {
			remove()
		}
	}
}

func toggle(target *dom.Element, opts Options) {
	if target == nil {
		return
	}
	card := target.Closest(opts.CardSelector)
	if card == nil {
		return
	}
	flipped := card.ToggleClass(opts.ToggleClass)
	if flipped {
		card.SetAttr("aria-pressed", "true")
	} else {
		card.SetAttr("aria-pressed", "false")
	}
	log.InputTrace("flipcard: %s flipped=%v", card, flipped)
}
