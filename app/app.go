// Package app runs the card wall demo: an in-memory document driven by
// terminal resize and keyboard events the way a web page is driven by its
// browser.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardwall/bootstrap"
	"cardwall/config"
	"cardwall/dom"
	"cardwall/grid"
	"cardwall/inspect"
	"cardwall/keys"
	"cardwall/log"
	"cardwall/ui"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context) error {
	p := tea.NewProgram(
		newWall(ctx, config.LoadConfig()),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// fontsReadyMsg simulates the platform's async font-loading completion.
type fontsReadyMsg struct{}

// sample cards shown by the demo.
type sample struct {
	title string
	text  string
	back  string
	min   string // data-fit-min override, "" for default
	max   string // data-fit-max override, "" for default
}

var samples = []sample{
	{
		title: "Fit to box",
		text:  "Shrink the font size with a binary search until the rendered text no longer overflows its card.",
		back:  "Each search is at most logarithmic in the pixel range, so redundant triggers are cheap.",
	},
	{
		title: "Step policy",
		text:  "The grid publishes --card-min from the container width, stepping at fixed breakpoints.",
		back:  "Resize the terminal to watch the cards re-measure and the step change.",
		min:   "10",
		max:   "20",
	},
	{
		title: "Flip cards",
		text:  "Enter or space flips the selected card; a click would do the same on a page.",
		back:  "Flipping only toggles a class. Animation belongs to a styling layer, not to this code.",
	},
	{
		title: "Font readiness",
		text:  "Fonts finishing to load change text metrics after first paint, so every card re-fits once.",
		back:  "Press f to finish the simulated font load early.",
		min:   "14",
		max:   "32",
	},
}

type wall struct {
	ctx context.Context
	cfg *config.Config

	// doc is the in-memory page; container holds the cards.
	doc       *dom.Document
	container *dom.Element
	cards     []*dom.Element
	dispose   func()

	selected      int
	width, height int
	status        string
	fontsLoaded   bool

	spinner spinner.Model
	help    help.Model
	keys    keys.KeyMap
}

// SampleDocument builds the demo page: a grid container holding the sample
// cards, ready for bootstrap.Activate.
func SampleDocument() (*dom.Document, *dom.Element, []*dom.Element) {
	doc := dom.NewDocument()

	container := doc.CreateElement("section")
	container.SetAttr("data-card-grid", "")
	doc.Root().Append(container)

	var cards []*dom.Element
	for _, s := range samples {
		card := doc.CreateElement("article")
		card.SetAttr("data-flip-card", "")
		card.SetAttr("data-fit-text", "on")
		card.SetAttr(ui.AttrTitle, s.title)
		card.SetAttr(ui.AttrBack, s.back)
		if s.min != "" {
			card.SetAttr("data-fit-min", s.min)
		}
		if s.max != "" {
			card.SetAttr("data-fit-max", s.max)
		}
		card.SetText(s.text)
		card.SetLayoutFunc(ui.TextLayout())
		container.Append(card)
		cards = append(cards, card)
	}
	return doc, container, cards
}

func newWall(ctx context.Context, cfg *config.Config) *wall {
	doc, container, cards := SampleDocument()

	w := &wall{
		ctx:       ctx,
		cfg:       cfg,
		doc:       doc,
		container: container,
		cards:     cards,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		help:      help.New(),
		keys:      keys.Default,
		status:    "loading fonts…",
	}
	w.dispose = bootstrap.Activate(doc, cfg)
	return w
}

func (w *wall) Init() tea.Cmd {
	delay := time.Duration(w.cfg.FontLoadDelayMs) * time.Millisecond
	return tea.Batch(
		w.spinner.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg { return fontsReadyMsg{} }),
	)
}

func (w *wall) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		w.updateHandleWindowSizeEvent(msg)
		return w, nil

	case fontsReadyMsg:
		w.finishFontLoad()
		return w, nil

	case spinner.TickMsg:
		if w.fontsLoaded {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd

	case tea.KeyMsg:
		return w.handleKeyPress(msg)
	}
	return w, nil
}

// updateHandleWindowSizeEvent maps terminal cells to page pixels, sizes the
// container and cards, and flushes the resulting re-measure triggers.
func (w *wall) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	pxW := msg.Width * ui.CellWidthPx
	pxH := (msg.Height - 4) * ui.CellHeightPx // header + help rows
	w.container.SetClientSize(pxW, pxH)

	// The grid policy has already rewritten --card-min for the new width;
	// size each card's text box from it.
	cardPxW := w.cardMinPx()
	bodyPxH := 5 * ui.CellHeightPx
	for _, card := range w.cards {
		card.SetClientSize(cardPxW-2*ui.CellWidthPx, bodyPxH)
	}
	w.doc.Flush()
	log.LayoutTrace("app: window %dx%d cells -> container %dpx, card %dpx",
		msg.Width, msg.Height, pxW, cardPxW)
}

func (w *wall) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Quit):
		w.dispose()
		return w, tea.Quit

	case key.Matches(msg, w.keys.Left):
		if w.selected > 0 {
			w.selected--
		}

	case key.Matches(msg, w.keys.Right):
		if w.selected < len(w.cards)-1 {
			w.selected++
		}

	case key.Matches(msg, w.keys.Flip):
		// Deliver the key to the page the way a browser would: a keydown
		// targeted at the focused card, handled by the delegated listener.
		domKey := "Enter"
		if msg.String() == " " {
			domKey = " "
		}
		w.cards[w.selected].Dispatch(&dom.Event{Type: "keydown", Key: domKey})
		w.doc.Flush()

	case key.Matches(msg, w.keys.Copy):
		card := w.cards[w.selected]
		if err := clipboard.WriteAll(card.Text()); err != nil {
			log.WarningLog.Printf("clipboard copy failed: %v", err)
			w.status = "copy failed"
		} else {
			w.status = "copied card text"
		}

	case key.Matches(msg, w.keys.Fonts):
		w.finishFontLoad()

	case key.Matches(msg, w.keys.Help):
		w.help.ShowAll = !w.help.ShowAll
	}
	return w, nil
}

func (w *wall) finishFontLoad() {
	if w.fontsLoaded {
		return
	}
	w.fontsLoaded = true
	w.status = "fonts ready"
	w.doc.Fonts().SetLoaded()
	w.doc.Flush()
	if log.DebugEnabled {
		log.Debug("dom after font load:\n%s", inspect.Dump(w.container))
	}
}

// cardMinPx reads the --card-min property the grid policy maintains on the
// container.
func (w *wall) cardMinPx() int {
	v := strings.TrimSuffix(w.container.StyleProperty(grid.VarName), "px")
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return grid.CardMinNarrow
	}
	return n
}

func (w *wall) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if w.width == 0 {
		return "loading…"
	}

	header := w.renderHeader()

	cardCells := w.cardMinPx() / ui.CellWidthPx
	columns := grid.Columns(w.width*ui.CellWidthPx, 0)
	rendered := make([]string, 0, len(w.cards))
	for i, card := range w.cards {
		rendered = append(rendered, ui.RenderCard(card, cardCells, i == w.selected))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		ui.RenderWall(rendered, columns),
		w.help.View(w.keys),
	)
}

func (w *wall) renderHeader() string {
	state := w.status
	if !w.fontsLoaded {
		state = fmt.Sprintf("%s %s", w.spinner.View(), w.status)
	}
	return fmt.Sprintf("%s  %s",
		ui.HeaderTitle(" card wall "),
		ui.TextStyles.Muted.Render(state),
	)
}
