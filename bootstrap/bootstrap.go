// Package bootstrap wires the three card-wall behaviors to a document.
package bootstrap

import (
	"cardwall/config"
	"cardwall/dom"
	"cardwall/fittext"
	"cardwall/flipcard"
	"cardwall/grid"
)

// Activate binds fit-to-box sizing, the grid step policy, and flip-card
// toggling to doc using the configured selectors. The returned function
// tears all three down; calling it twice is safe.
func Activate(doc *dom.Document, cfg *config.Config) (dispose func()) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	disposeFit := fittext.Activate(doc, fittext.Options{
		Selector: cfg.FitSelector,
		MinPx:    cfg.FitMinPx,
		MaxPx:    cfg.FitMaxPx,
	})
	disposeGrid := grid.Activate(doc, grid.Options{
		Selector: cfg.GridSelector,
	})
	disposeFlip := flipcard.Activate(doc, flipcard.Options{
		ContainerSelector: cfg.GridSelector,
		CardSelector:      cfg.CardSelector,
		ToggleClass:       cfg.FlipClass,
	})

	return func() {
		disposeFit()
		disposeGrid()
		disposeFlip()
	}
}
