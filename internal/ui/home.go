package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/guia/internal/nav"
	"github.com/turkosaurus/guia/internal/ui/keys"
	"github.com/turkosaurus/guia/internal/ui/styles"
)

// Shortcut is one button of the home grid.
type Shortcut struct {
	Label  string
	Target string // navigation target
}

// DefaultShortcuts lists the home screen buttons in grid order.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{Label: "Attractions", Target: nav.RouteCatalog},
		{Label: "Find options", Target: nav.RouteFindOptions},
	}
}

const (
	homeColumns = 2
	homeTop     = 2 // title + blank
	homeMargin  = 2
	buttonWidth = 22
	cellWidth   = buttonWidth + 2 // rounded border
	cellHeight  = 3
	gridGapX    = 2
	gridGapY    = 1
)

// HomeView is the static grid of navigation shortcuts.
type HomeView struct {
	items  []Shortcut
	cursor int
	styles styles.Styles
	keys   keys.KeyMap
}

func NewHomeView(items []Shortcut, s styles.Styles, k keys.KeyMap) HomeView {
	return HomeView{items: items, styles: s, keys: k}
}

func (h HomeView) Update(msg tea.Msg) (HomeView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Left):
			h.move(-1)
		case key.Matches(msg, h.keys.Right):
			h.move(1)
		case key.Matches(msg, h.keys.Up):
			h.move(-homeColumns)
		case key.Matches(msg, h.keys.Down):
			h.move(homeColumns)
		case key.Matches(msg, h.keys.Enter):
			if h.cursor < len(h.items) {
				return h, navigate(h.items[h.cursor].Target)
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := h.hitTest(msg.X, msg.Y); i >= 0 {
				h.cursor = i
				return h, navigate(h.items[i].Target)
			}
		}
	}
	return h, nil
}

func (h *HomeView) move(delta int) {
	n := h.cursor + delta
	if n >= 0 && n < len(h.items) {
		h.cursor = n
	}
}

// hitTest returns the index of the button at (x, y), or -1.
func (h HomeView) hitTest(x, y int) int {
	x -= homeMargin
	y -= homeTop
	if x < 0 || y < 0 {
		return -1
	}
	col, cx := x/(cellWidth+gridGapX), x%(cellWidth+gridGapX)
	row, cy := y/(cellHeight+gridGapY), y%(cellHeight+gridGapY)
	if col >= homeColumns || cx >= cellWidth || cy >= cellHeight {
		return -1
	}
	i := row*homeColumns + col
	if i >= len(h.items) {
		return -1
	}
	return i
}

func (h HomeView) View(width, height int, message string) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	margin := strings.Repeat(" ", homeMargin)

	var rows []string
	for start := 0; start < len(h.items); start += homeColumns {
		var cells []string
		for i := start; i < min(start+homeColumns, len(h.items)); i++ {
			style := h.styles.Button
			if i == h.cursor {
				style = h.styles.ButtonActive
			}
			if len(cells) > 0 {
				cells = append(cells, strings.Repeat(" ", gridGapX))
			}
			cells = append(cells, style.Width(buttonWidth).Render(h.items[i].Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, strings.Repeat("\n", gridGapY+1))

	var lines []string
	for _, l := range splitLines(grid) {
		lines = append(lines, margin+l)
	}

	items := []string{
		bindingHelp(h.styles, h.keys.Up),
		bindingHelp(h.styles, h.keys.Down),
		bindingHelp(h.styles, h.keys.Enter),
	}
	footer := helpBar(width, items, bindingHelp(h.styles, h.keys.Quit))
	if message != "" {
		footer = h.styles.Dimmed.Render(truncate(message, width))
	}

	body := h.styles.Title.Render("guia") + " " + h.styles.Dimmed.Render(Version) + "\n\n" +
		strings.Join(lines, "\n")
	return fitLines(body, height-1) + "\n" + footer
}
