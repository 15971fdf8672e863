package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// UpdateSettingsRequest is a partial update of the competition settings;
// nil fields stay untouched.
type UpdateSettingsRequest struct {
	VotingEnabled  *bool `json:"voting_enabled"`
	StartbahnCount *int  `json:"startbahn_count"`
}

func (req *UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StartbahnCount, validation.Min(1), validation.Max(500)),
	)
}
