package domain

import "time"

type VoteType string

const (
	VoteTypeBestBeer         VoteType = "best_beer"
	VoteTypeBestPresentation VoteType = "best_presentation"
)

// IsValid reports whether the vote type is one of the known categories.
func (t VoteType) IsValid() bool {
	return t == VoteTypeBestBeer || t == VoteTypeBestPresentation
}

// Vote is a single ledger event. Votes are only ever inserted and deleted,
// never updated in place.
type Vote struct {
	ID        string    `json:"id"`
	VoterID   string    `json:"voter_id"`
	BeerID    string    `json:"beer_id"`
	RoundID   uint      `json:"round_id"`
	VoteType  VoteType  `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// CurrentVotes is a voter's full vote state for the active round,
// one beer-id set per category.
type CurrentVotes struct {
	BestBeer     []string `json:"best_beer"`
	Presentation []string `json:"presentation"`
}
