package ui

import (
	"strings"

	"github.com/turkosaurus/guia/internal/ui/keys"
	"github.com/turkosaurus/guia/internal/ui/styles"
)

// findOptions are the ways to look for attractions offered by the find screen.
var findOptions = []string{
	"by city",
	"by state",
	"by name",
}

// FindView is the find-options screen reached from the catalog header.
type FindView struct {
	styles styles.Styles
	keys   keys.KeyMap
}

func NewFindView(s styles.Styles, k keys.KeyMap) FindView {
	return FindView{styles: s, keys: k}
}

func (f FindView) View(width, height int, message string) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	var sb strings.Builder
	sb.WriteString(f.styles.Title.Render("Find options") + "\n\n")
	for _, opt := range findOptions {
		sb.WriteString("  " + f.styles.Control.Render("›") + " " + f.styles.Normal.Render(opt) + "\n")
	}

	footer := helpBar(width, []string{bindingHelp(f.styles, f.keys.Back)}, bindingHelp(f.styles, f.keys.Quit))
	if message != "" {
		footer = f.styles.Dimmed.Render(truncate(message, width))
	}
	return fitLines(sb.String(), height-1) + "\n" + footer
}
