package types

import (
	"errors"
	"fmt"
	"strings"
)

// Attraction is a tourism point of interest as served by the catalog.
type Attraction struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	City      string `json:"city" yaml:"city"`
	ImageLink string `json:"image_link" yaml:"image_link"` // URL or opaque handle
	MapLink   string `json:"map_link" yaml:"map_link"`     // geo query, coordinates or maps URL
	State     string `json:"state" yaml:"state"`
}

var (
	ErrMissingID   = errors.New("attraction has no id")
	ErrDuplicateID = errors.New("duplicate attraction id")
)

// ValidateAttractions checks the identifier invariant of one result set:
// every id is non-empty and unique. Order is not inspected.
func ValidateAttractions(list []Attraction) error {
	seen := make(map[string]int, len(list))
	for i, a := range list {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("record %d (%q): %w", i, a.Name, ErrMissingID)
		}
		if prev, ok := seen[a.ID]; ok {
			return fmt.Errorf("records %d and %d share id %q: %w", prev, i, a.ID, ErrDuplicateID)
		}
		seen[a.ID] = i
	}
	return nil
}

// FindAttraction returns the attraction with the given id, or nil.
func FindAttraction(list []Attraction, id string) *Attraction {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}

// Location returns "City, State" with whichever parts are present.
func (a Attraction) Location() string {
	var parts []string
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if a.State != "" {
		parts = append(parts, a.State)
	}
	return strings.Join(parts, ", ")
}

// HasMap reports whether the attraction carries a resolvable map reference.
func (a Attraction) HasMap() bool {
	return strings.TrimSpace(a.MapLink) != ""
}
