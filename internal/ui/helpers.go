package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/turkosaurus/guia/internal/ui/styles"
)

// bindingHelp renders a single key binding as a "key  desc" help item.
func bindingHelp(s styles.Styles, b key.Binding) string {
	return s.HelpKey.Render(b.Help().Key) + " " + s.HelpDesc.Render(b.Help().Desc)
}

// helpBar lays out left-aligned help items and a right-aligned item on one row.
func helpBar(width int, left []string, right string) string {
	l := strings.Join(left, "  ")
	gap := width - lipgloss.Width(l) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return l + strings.Repeat(" ", gap) + right
}

// truncate shortens s to width cells, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// orDefault returns s, or def when s is blank.
func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// fitLines pads or cuts s to exactly height lines.
func fitLines(s string, height int) string {
	height = max(0, height)
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
