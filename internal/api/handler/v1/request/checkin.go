package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CheckinBeerRequest struct {
	BeerID         string `json:"beer_id" binding:"required"`
	Startbahn      int    `json:"startbahn" binding:"required"`
	RoundID        uint   `json:"round_id" binding:"required"`
	Reinheitsgebot bool   `json:"reinheitsgebot"`
}

func (req *CheckinBeerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BeerID, validation.Required),
		validation.Field(&req.Startbahn, validation.Required, validation.Min(1)),
		validation.Field(&req.RoundID, validation.Required, validation.Min(uint(1))),
	)
}

// UpdateRegistrationRequest carries a partial re-check-in; nil fields keep
// the registration's current values.
type UpdateRegistrationRequest struct {
	Startbahn      *int  `json:"startbahn"`
	RoundID        *uint `json:"round_id"`
	Reinheitsgebot *bool `json:"reinheitsgebot"`
}

func (req *UpdateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Startbahn, validation.Min(1)),
		validation.Field(&req.RoundID, validation.Min(uint(1))),
	)
}

type StartbahnConfigRequest struct {
	Startbahn int    `json:"startbahn" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

func (req *StartbahnConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Startbahn, validation.Required, validation.Min(1)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
