package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/turkosaurus/guia/internal/nav"
	"github.com/turkosaurus/guia/internal/types"
	"github.com/turkosaurus/guia/internal/ui/keys"
	"github.com/turkosaurus/guia/internal/ui/styles"
)

// Screen layout. Cards are a fixed height so mouse rows map to records.
const (
	catalogHeaderRows = 3 // title bar, heading, status banner
	catalogFooterRows = 1
	cardHeight        = 4 // name, city, location row, spacer
	cardIndent        = 4
	mapGlyphRow       = 2
	mapGlyph          = "⌖ map"
	refreshLabel      = "⟳ refresh"
	searchLabel       = "⌕ find"
	controlGap        = 2
)

type hitTarget int

const (
	hitNone hitTarget = iota
	hitCard
	hitMapGlyph
	hitRefresh
	hitSearch
)

// CatalogView renders a CatalogController and turns input into intents.
// It never navigates by itself.
type CatalogView struct {
	ctl     *CatalogController
	styles  styles.Styles
	keys    keys.KeyMap
	spinner spinner.Model

	cursor        int
	offset        int
	width, height int
}

func NewCatalogView(ctl *CatalogController, s styles.Styles, k keys.KeyMap) CatalogView {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(s.Spinner),
	)
	return CatalogView{ctl: ctl, styles: s, keys: k, spinner: sp}
}

// Controller returns the controller this view renders.
func (v CatalogView) Controller() *CatalogController { return v.ctl }

// Activate forwards screen activation to the controller.
func (v CatalogView) Activate() tea.Cmd { return v.withSpinner(v.ctl.Activate()) }

// Refresh forwards a user refresh to the controller.
func (v CatalogView) Refresh() tea.Cmd { return v.withSpinner(v.ctl.Refresh()) }

func (v CatalogView) withSpinner(fetch tea.Cmd) tea.Cmd {
	if fetch == nil {
		return nil
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// Selected returns the attraction under the cursor, or nil.
func (v CatalogView) Selected() *types.Attraction {
	records := v.ctl.Records()
	if v.cursor >= 0 && v.cursor < len(records) {
		return &records[v.cursor]
	}
	return nil
}

func (v CatalogView) Update(msg tea.Msg) (CatalogView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.clamp()

	case attractionsLoadedMsg:
		if v.ctl.Apply(msg) {
			v.clamp()
		}

	case spinner.TickMsg:
		if !v.ctl.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)
	}
	return v, nil
}

func (v CatalogView) handleKey(msg tea.KeyMsg) (CatalogView, tea.Cmd) {
	// header controls stay live under the loading overlay
	switch {
	case key.Matches(msg, v.keys.Refresh):
		return v, emit(nav.RefreshIntent())
	case key.Matches(msg, v.keys.Search):
		return v, emit(nav.FindOptionsIntent())
	}
	if v.ctl.Busy() {
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Up):
		v.move(-1)
	case key.Matches(msg, v.keys.Down):
		v.move(1)
	case key.Matches(msg, v.keys.PageUp):
		v.move(-v.visibleCards())
	case key.Matches(msg, v.keys.PageDown):
		v.move(v.visibleCards())
	case key.Matches(msg, v.keys.Top):
		v.move(-len(v.ctl.Records()))
	case key.Matches(msg, v.keys.Bottom):
		v.move(len(v.ctl.Records()))
	case key.Matches(msg, v.keys.Enter):
		if a := v.Selected(); a != nil {
			return v, emit(nav.DetailIntent(a.ID))
		}
	case key.Matches(msg, v.keys.Map):
		if a := v.Selected(); a != nil {
			return v, emit(nav.MapIntent(a.MapLink))
		}
	}
	return v, nil
}

func (v CatalogView) handleMouse(msg tea.MouseMsg) (CatalogView, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return v, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !v.ctl.Busy() {
			v.move(-1)
		}
		return v, nil
	case tea.MouseButtonWheelDown:
		if !v.ctl.Busy() {
			v.move(1)
		}
		return v, nil
	case tea.MouseButtonLeft:
	default:
		return v, nil
	}

	target, idx := v.hitTest(msg.X, msg.Y)
	switch target {
	case hitRefresh:
		return v, emit(nav.RefreshIntent())
	case hitSearch:
		return v, emit(nav.FindOptionsIntent())
	}
	if v.ctl.Busy() {
		return v, nil
	}
	records := v.ctl.Records()
	switch target {
	case hitMapGlyph:
		v.cursor = idx
		return v, emit(nav.MapIntent(records[idx].MapLink))
	case hitCard:
		v.cursor = idx
		return v, emit(nav.DetailIntent(records[idx].ID))
	}
	return v, nil
}

// hitTest maps a screen cell to the control or card under it. The map glyph
// is resolved before the card body that contains it.
func (v CatalogView) hitTest(x, y int) (hitTarget, int) {
	w, _ := v.size()
	if y == 0 {
		if !v.controlsFit(w) {
			return hitNone, -1
		}
		refresh, search := headerControls(w)
		switch {
		case x >= refresh[0] && x < refresh[1]:
			return hitRefresh, -1
		case x >= search[0] && x < search[1]:
			return hitSearch, -1
		}
		return hitNone, -1
	}

	row := y - catalogHeaderRows
	if row < 0 {
		return hitNone, -1
	}
	slot, line := row/cardHeight, row%cardHeight
	if slot >= v.visibleCards() || line == cardHeight-1 {
		return hitNone, -1
	}
	idx := v.offset + slot
	if idx >= len(v.ctl.Records()) {
		return hitNone, -1
	}
	if line == mapGlyphRow && x >= cardIndent && x < cardIndent+ansi.StringWidth(mapGlyph) {
		return hitMapGlyph, idx
	}
	return hitCard, idx
}

// headerControls returns the [start, end) columns of the refresh and search
// controls, right-aligned on the title row.
func headerControls(width int) (refresh, search [2]int) {
	sw := ansi.StringWidth(searchLabel)
	rw := ansi.StringWidth(refreshLabel)
	search = [2]int{width - sw, width}
	refresh = [2]int{search[0] - controlGap - rw, search[0] - controlGap}
	return refresh, search
}

// controlsFit reports whether the header controls have room beside the
// title. They are neither drawn nor clickable when they do not.
func (v CatalogView) controlsFit(width int) bool {
	refresh, _ := headerControls(width)
	return refresh[0] > lipgloss.Width(v.title())
}

func (v *CatalogView) move(delta int) {
	v.cursor += delta
	v.clamp()
}

// clamp keeps the cursor on a record and the cursor's card on screen.
func (v *CatalogView) clamp() {
	n := len(v.ctl.Records())
	v.cursor = max(0, min(v.cursor, n-1))
	vis := v.visibleCards()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+vis {
		v.offset = v.cursor - vis + 1
	}
	v.offset = max(0, min(v.offset, n-vis))
}

func (v CatalogView) size() (int, int) {
	w, h := v.width, v.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func (v CatalogView) visibleCards() int {
	_, h := v.size()
	return max(1, (h-catalogHeaderRows-catalogFooterRows)/cardHeight)
}

// ── Render ──────────────────────────────────────────────────────────────────

// View renders the screen. While a fetch is in flight the list stays in
// place under a scrim with a spinner on top.
func (v CatalogView) View(message string) string {
	w, h := v.size()
	bodyH := max(0, h-catalogHeaderRows-catalogFooterRows)

	screen := strings.Join([]string{
		v.renderTitle(w),
		v.renderHeading(),
		v.renderBanner(w),
		fitLines(v.renderCards(w), bodyH),
		v.renderHelpBar(w, message),
	}, "\n")

	if v.ctl.Busy() {
		screen = scrim(screen, v.styles.Scrim, 1, h-catalogFooterRows, w)
		box := v.styles.SpinnerBox.Render(v.spinner.View() + " loading attractions…")
		x, y := centerIn(w, h, lipgloss.Width(box), lipgloss.Height(box))
		screen = overlayAt(screen, box, x, y, w)
	}
	return fitLines(screen, h)
}

func (v CatalogView) title() string {
	return v.styles.Title.Render(fmt.Sprintf("guia (%s)", Version))
}

func (v CatalogView) renderTitle(width int) string {
	title := v.title()
	if !v.controlsFit(width) {
		return truncate(title, width)
	}
	refresh, _ := headerControls(width)
	return title + strings.Repeat(" ", refresh[0]-lipgloss.Width(title)) +
		v.styles.Control.Render(refreshLabel) + strings.Repeat(" ", controlGap) +
		v.styles.Control.Render(searchLabel)
}

func (v CatalogView) renderHeading() string {
	records := v.ctl.Records()
	heading := v.styles.Subtitle.Render("Attractions")
	if len(records) > 0 {
		heading += " " + v.styles.Dimmed.Render(fmt.Sprintf("(%d)", len(records)))
	}
	return heading
}

func (v CatalogView) renderBanner(width int) string {
	if err := v.ctl.Err(); err != nil {
		prefix := "✗ could not load attractions: "
		hint := " · R to retry"
		msg := truncate(err.Error(), width-ansi.StringWidth(prefix)-ansi.StringWidth(hint))
		return v.styles.Error.Render(prefix+msg) + v.styles.Dimmed.Render(hint)
	}
	switch v.ctl.State() {
	case LoadIdle:
		return v.styles.Dimmed.Render("waiting for catalog…")
	case LoadReady:
		if len(v.ctl.Records()) == 0 {
			return v.styles.Dimmed.Render("no attractions found")
		}
	}
	return ""
}

func (v CatalogView) renderCards(width int) string {
	records := v.ctl.Records()
	end := min(v.offset+v.visibleCards(), len(records))
	var cards []string
	for i := v.offset; i < end; i++ {
		cards = append(cards, v.renderCard(records[i], i == v.cursor, width))
	}
	return strings.Join(cards, "\n")
}

func (v CatalogView) renderCard(a types.Attraction, selected bool, width int) string {
	marker := " "
	name := v.styles.CardName
	if selected {
		marker = v.styles.CardMarker.Render("▌")
		name = v.styles.Selected
	}
	indent := strings.Repeat(" ", cardIndent)
	textW := width - cardIndent

	lines := []string{
		marker + " " + v.renderImage(a) + " " + name.Render(truncate(orDefault(a.Name, a.ID), textW)),
		indent + v.styles.City.Render(truncate(orDefault(a.City, "unknown city"), textW-2)),
		indent + v.renderMapGlyph(a) + "  " +
			v.styles.State.Render(truncate(a.State, textW-ansi.StringWidth(mapGlyph)-2)),
		"",
	}
	return strings.Join(lines, "\n")
}

// renderImage stands in for the picture: the image itself is not drawn.
func (v CatalogView) renderImage(a types.Attraction) string {
	if strings.TrimSpace(a.ImageLink) == "" {
		return v.styles.Dimmed.Render("□")
	}
	return v.styles.Image.Render("▣")
}

func (v CatalogView) renderMapGlyph(a types.Attraction) string {
	if !a.HasMap() {
		return v.styles.Dimmed.Render(mapGlyph)
	}
	return v.styles.MapGlyph.Render(mapGlyph)
}

func (v CatalogView) renderHelpBar(width int, message string) string {
	if message != "" {
		return v.styles.Dimmed.Render(truncate(message, width))
	}
	items := []string{
		bindingHelp(v.styles, v.keys.Enter),
		bindingHelp(v.styles, v.keys.Map),
		bindingHelp(v.styles, v.keys.Refresh),
		bindingHelp(v.styles, v.keys.Search),
		bindingHelp(v.styles, v.keys.Back),
	}
	return helpBar(width, items, bindingHelp(v.styles, v.keys.Quit))
}
