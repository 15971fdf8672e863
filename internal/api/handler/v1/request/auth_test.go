package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:    "orga@example.com",
		Password: "Sommerfest1",
		Name:     "Orga",
		SetupKey: "setup",
	}

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *SignupRequest) {}},
		{name: "bad email", mutate: func(r *SignupRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "missing setup key", mutate: func(r *SignupRequest) { r.SetupKey = "" }, wantErr: true},
		{name: "short name", mutate: func(r *SignupRequest) { r.Name = "x" }, wantErr: true},
		{name: "password too short", mutate: func(r *SignupRequest) { r.Password = "Ab1" }, wantErr: true},
		{name: "password without digit", mutate: func(r *SignupRequest) { r.Password = "Sommerfest" }, wantErr: true},
		{name: "password without upper", mutate: func(r *SignupRequest) { r.Password = "sommerfest1" }, wantErr: true},
		{name: "password without lower", mutate: func(r *SignupRequest) { r.Password = "SOMMERFEST1" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToggleVoteRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ToggleVoteRequest{BeerID: "beer-a"}).Validate())
	assert.NoError(t, (&ToggleVoteRequest{BeerID: "beer-a", VoteType: "best_presentation"}).Validate())
	assert.Error(t, (&ToggleVoteRequest{VoteType: "best_beer"}).Validate())
	assert.Error(t, (&ToggleVoteRequest{BeerID: "beer-a", VoteType: "best_label"}).Validate())
}
