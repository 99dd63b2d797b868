package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/guia/internal/nav"
	"github.com/turkosaurus/guia/internal/types"
	"github.com/turkosaurus/guia/internal/ui/keys"
	"github.com/turkosaurus/guia/internal/ui/styles"
)

// DetailView shows one attraction, resolved from the records the catalog
// last displayed.
type DetailView struct {
	id         string
	attraction *types.Attraction
	styles     styles.Styles
	keys       keys.KeyMap
}

func NewDetailView(id string, records []types.Attraction, s styles.Styles, k keys.KeyMap) DetailView {
	var found *types.Attraction
	if a := types.FindAttraction(records, id); a != nil {
		cp := *a
		found = &cp
	}
	return DetailView{id: id, attraction: found, styles: s, keys: k}
}

func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, d.keys.Map) && d.attraction != nil {
		return d, emit(nav.MapIntent(d.attraction.MapLink))
	}
	return d, nil
}

func (d DetailView) View(width, height int, message string) string {
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var sb strings.Builder
	if d.attraction == nil {
		sb.WriteString(d.styles.Title.Render("attraction "+d.id) + "\n\n")
		sb.WriteString(d.styles.Error.Render("attraction not found"))
	} else {
		a := d.attraction
		sb.WriteString(d.styles.Title.Render(truncate(orDefault(a.Name, a.ID), width)) + "\n\n")
		field := func(label, value string) {
			sb.WriteString(d.styles.Label.Render(label))
			sb.WriteString(truncate(value, width-8) + "\n")
		}
		field("city", d.styles.Normal.Render(orDefault(a.City, "unknown")))
		field("state", d.styles.State.Render(orDefault(a.State, "unknown")))
		field("image", d.styles.Dimmed.Render(orDefault(a.ImageLink, "none")))
		field("map", d.styles.MapGlyph.Render(orDefault(a.MapLink, "none")))
		field("id", d.styles.Dimmed.Render(a.ID))
	}

	footer := d.styles.Dimmed.Render(truncate(message, width))
	if message == "" {
		var items []string
		if d.attraction != nil {
			items = append(items, bindingHelp(d.styles, d.keys.Map))
		}
		items = append(items, bindingHelp(d.styles, d.keys.Back))
		footer = helpBar(width, items, bindingHelp(d.styles, d.keys.Quit))
	}
	return fitLines(sb.String(), height-1) + "\n" + footer
}
