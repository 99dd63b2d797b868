package ui

import (
	"github.com/google/uuid"

	"github.com/turkosaurus/guia/internal/nav"
	"github.com/turkosaurus/guia/internal/types"
)

type (
	// attractionsLoadedMsg settles one fetch episode of one controller.
	attractionsLoadedMsg struct {
		owner       uuid.UUID
		gen         uint64
		attractions []types.Attraction
		err         error
	}
	mapOpenedMsg struct {
		mapRef string
		err    error
	}
	intentMsg struct {
		intent nav.Intent
	}
	navigateMsg struct {
		target string
	}
	clearMsgMsg struct{ seq int }
)
