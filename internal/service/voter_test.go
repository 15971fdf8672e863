package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbcon/festvote/internal/domain"
)

func TestVoterService_GenerateVoters(t *testing.T) {
	t.Run("mints unique active voters", func(t *testing.T) {
		svc := NewVoterService(newFakeVoterRepo())

		voters, err := svc.GenerateVoters(context.Background(), 25)
		require.NoError(t, err)
		require.Len(t, voters, 25)

		seen := make(map[string]bool, len(voters))
		for _, voter := range voters {
			assert.True(t, voter.Active)
			assert.NotEmpty(t, voter.ID)
			assert.False(t, seen[voter.ID])
			seen[voter.ID] = true
		}
	})

	t.Run("rejects out-of-range counts", func(t *testing.T) {
		svc := NewVoterService(newFakeVoterRepo())

		_, err := svc.GenerateVoters(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidVoterCount)

		_, err = svc.GenerateVoters(context.Background(), 1001)
		assert.ErrorIs(t, err, ErrInvalidVoterCount)
	})
}

func TestVoterService_ValidateVoter(t *testing.T) {
	repo := newFakeVoterRepo("known")
	repo.voters["inactive"] = domain.Voter{ID: "inactive", Active: false}
	svc := NewVoterService(repo)

	voter, err := svc.ValidateVoter(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", voter.ID)

	_, err = svc.ValidateVoter(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrVoterInvalid)

	_, err = svc.ValidateVoter(context.Background(), "inactive")
	assert.ErrorIs(t, err, ErrVoterInvalid)
}

func TestRoundService_SetActiveRound(t *testing.T) {
	t.Run("keeps exactly one round active", func(t *testing.T) {
		repo := &fakeRoundRepo{}
		svc := NewRoundService(repo)
		repo.add("Round 1", true)
		second := repo.add("Round 2", false)

		require.NoError(t, svc.SetActiveRound(context.Background(), second.ID))

		active, err := svc.GetActiveRound(context.Background())
		require.NoError(t, err)
		assert.Equal(t, second.ID, active.ID)

		rounds, err := svc.GetRounds(context.Background())
		require.NoError(t, err)
		for _, round := range rounds {
			assert.Equal(t, round.ID == second.ID, round.Active)
		}
	})

	t.Run("unknown id fails and leaves the activation untouched", func(t *testing.T) {
		repo := &fakeRoundRepo{}
		svc := NewRoundService(repo)
		current := repo.add("Round 1", true)

		err := svc.SetActiveRound(context.Background(), 99)
		assert.ErrorIs(t, err, ErrRoundNotFound)

		active, err := svc.GetActiveRound(context.Background())
		require.NoError(t, err)
		assert.Equal(t, current.ID, active.ID)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	repo := newFakeSettingsRepo(false, 50)
	svc := NewSettingsService(repo)

	enabled := true
	updated, err := svc.UpdateSettings(context.Background(), domain.SettingsUpdate{VotingEnabled: &enabled})
	require.NoError(t, err)
	assert.True(t, updated.VotingEnabled)
	assert.Equal(t, 50, updated.StartbahnCount)

	count := 80
	updated, err = svc.UpdateSettings(context.Background(), domain.SettingsUpdate{StartbahnCount: &count})
	require.NoError(t, err)
	assert.True(t, updated.VotingEnabled)
	assert.Equal(t, 80, updated.StartbahnCount)
}
