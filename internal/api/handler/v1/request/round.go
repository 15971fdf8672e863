package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateRoundRequest struct {
	Name string `json:"name" binding:"required"`
}

func (req *CreateRoundRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
