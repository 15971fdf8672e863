package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

var (
	ErrRoundNotFound = dao.ErrRoundNotFound
	ErrNoActiveRound = dao.ErrNoActiveRound
)

type RoundDAO interface {
	Insert(ctx context.Context, round dao.Round) (dao.Round, error)
	FindByID(ctx context.Context, id uint) (dao.Round, error)
	FindAll(ctx context.Context) ([]dao.Round, error)
	FindActive(ctx context.Context) (dao.Round, error)
	Activate(ctx context.Context, id uint) error
}

type RoundRepository struct {
	dao RoundDAO
}

func NewRoundRepository(dao RoundDAO) *RoundRepository {
	return &RoundRepository{
		dao: dao,
	}
}

func (r *RoundRepository) Create(ctx context.Context, round domain.Round) (domain.Round, error) {
	created, err := r.dao.Insert(ctx, dao.Round{
		Name:   round.Name,
		Active: false,
	})
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RoundRepository) FindByID(ctx context.Context, id uint) (domain.Round, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RoundRepository) FindAll(ctx context.Context) ([]domain.Round, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	rounds := make([]domain.Round, len(found))
	for i, round := range found {
		rounds[i] = r.daoToDomain(round)
	}

	return rounds, nil
}

func (r *RoundRepository) FindActive(ctx context.Context) (domain.Round, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RoundRepository) Activate(ctx context.Context, id uint) error {
	if err := r.dao.Activate(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Activate -> %w", err)
	}

	return nil
}

func (r *RoundRepository) daoToDomain(round dao.Round) domain.Round {
	return domain.Round{
		ID:        round.ID,
		Name:      round.Name,
		Active:    round.Active,
		CreatedAt: round.CreatedAt,
	}
}
