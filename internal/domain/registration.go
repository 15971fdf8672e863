package domain

import "time"

// BeerRegistration records a beer's check-in: the round it competes in and
// the numbered pouring lane (Startbahn) it occupies within that round.
type BeerRegistration struct {
	BeerID         string    `json:"beer_id"`
	Startbahn      int       `json:"startbahn"`
	RoundID        uint      `json:"round_id"`
	Reinheitsgebot bool      `json:"reinheitsgebot"`
	CheckedInAt    time.Time `json:"checked_in_at"`
}

// RegistrationUpdate is a partial update applied on re-check-in. Nil fields
// keep the current value.
type RegistrationUpdate struct {
	Startbahn      *int  `json:"startbahn"`
	RoundID        *uint `json:"round_id"`
	Reinheitsgebot *bool `json:"reinheitsgebot"`
}

// StartbahnConfig assigns a display name to a pouring lane.
type StartbahnConfig struct {
	Startbahn int    `json:"startbahn"`
	Name      string `json:"name"`
}
