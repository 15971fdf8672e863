package response

import "github.com/hbcon/festvote/internal/domain"

// RoundBeer is a catalog entry enriched with its check-in data.
type RoundBeer struct {
	domain.Beer
	Startbahn      int  `json:"startbahn"`
	Reinheitsgebot bool `json:"reinheitsgebot"`
}

// ActiveRoundBeersResponse lists the beers a voter can currently vote on.
type ActiveRoundBeersResponse struct {
	Round domain.Round `json:"round"`
	Beers []RoundBeer  `json:"beers"`
}
