package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hbcon/festvote/internal/domain"
)

type ToggleVoteRequest struct {
	BeerID   string `json:"beer_id" binding:"required"`
	VoteType string `json:"vote_type"`
}

func (req *ToggleVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BeerID, validation.Required),
		validation.Field(&req.VoteType, validation.In(
			string(domain.VoteTypeBestBeer),
			string(domain.VoteTypeBestPresentation),
		)),
	)
}

// EffectiveVoteType defaults an omitted vote type to the best-beer
// category.
func (req *ToggleVoteRequest) EffectiveVoteType() domain.VoteType {
	if req.VoteType == "" {
		return domain.VoteTypeBestBeer
	}

	return domain.VoteType(req.VoteType)
}
