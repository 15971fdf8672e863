package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository"
)

var ErrRoundNotFound = repository.ErrRoundNotFound

type RoundService struct {
	repo RoundRepository
}

func NewRoundService(repo RoundRepository) *RoundService {
	return &RoundService{
		repo: repo,
	}
}

func (s *RoundService) CreateRound(ctx context.Context, name string) (domain.Round, error) {
	created, err := s.repo.Create(ctx, domain.Round{Name: name})
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// SetActiveRound makes the given round the single active one. A nonexistent
// round id fails with ErrRoundNotFound and leaves the current activation
// untouched.
func (s *RoundService) SetActiveRound(ctx context.Context, id uint) error {
	if err := s.repo.Activate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoundNotFound) {
			return ErrRoundNotFound
		}

		return fmt.Errorf("s.repo.Activate -> %w", err)
	}

	return nil
}

func (s *RoundService) GetRounds(ctx context.Context) ([]domain.Round, error) {
	rounds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return rounds, nil
}

func (s *RoundService) GetActiveRound(ctx context.Context) (domain.Round, error) {
	round, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveRound) {
			return domain.Round{}, ErrNoActiveRound
		}

		return domain.Round{}, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return round, nil
}
