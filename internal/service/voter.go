package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository"
)

const maxVoterBatch = 1000

var ErrInvalidVoterCount = errors.New("voter count must be between 1 and 1000")

type VoterService struct {
	repo VoterRepository
}

func NewVoterService(repo VoterRepository) *VoterService {
	return &VoterService{
		repo: repo,
	}
}

// GenerateVoters bulk-creates voter identities for QR card printing.
func (s *VoterService) GenerateVoters(ctx context.Context, count int) ([]domain.Voter, error) {
	if count < 1 || count > maxVoterBatch {
		return nil, ErrInvalidVoterCount
	}

	voters := make([]domain.Voter, count)
	for i := range voters {
		voters[i] = domain.Voter{
			ID:     uuid.NewString(),
			Active: true,
		}
	}

	created, err := s.repo.CreateBatch(ctx, voters)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	return created, nil
}

func (s *VoterService) AddVoter(ctx context.Context) (domain.Voter, error) {
	created, err := s.repo.Create(ctx, domain.Voter{
		ID:     uuid.NewString(),
		Active: true,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VoterService) ListVoters(ctx context.Context) ([]domain.Voter, error) {
	voters, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return voters, nil
}

// ValidateVoter resolves an opaque voter token for the QR registration
// flow. Unknown or inactive tokens fail with ErrVoterInvalid.
func (s *VoterService) ValidateVoter(ctx context.Context, id string) (domain.Voter, error) {
	voter, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVoterNotFound) {
			return domain.Voter{}, ErrVoterInvalid
		}

		return domain.Voter{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !voter.Active {
		return domain.Voter{}, ErrVoterInvalid
	}

	return voter, nil
}
