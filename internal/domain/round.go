package domain

import "time"

// Round groups a subset of checked-in beers into one voting session.
// At most one round is active at any time.
type Round struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
