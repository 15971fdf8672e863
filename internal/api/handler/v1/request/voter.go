package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type GenerateVotersRequest struct {
	Count int `json:"count" binding:"required"`
}

func (req *GenerateVotersRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Count, validation.Required, validation.Min(1), validation.Max(1000)),
	)
}
