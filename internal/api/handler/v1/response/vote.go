package response

import "github.com/hbcon/festvote/internal/domain"

// ToggleVoteResponse mirrors the voting drawer's needs: outcome plus the
// voter's complete vote state for both categories, so one toggle refreshes
// every button.
type ToggleVoteResponse struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message"`
	BestBeerVotes     []string `json:"best_beer_votes"`
	PresentationVotes []string `json:"presentation_votes"`
}

type GeneratedVotersResponse struct {
	Count  int            `json:"count"`
	Voters []domain.Voter `json:"voters"`
}

type VoterListResponse struct {
	Count  int            `json:"count"`
	Voters []domain.Voter `json:"voters"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
