package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

var ErrVoterNotFound = dao.ErrVoterNotFound

type VoterDAO interface {
	Insert(ctx context.Context, voter dao.Voter) (dao.Voter, error)
	InsertBatch(ctx context.Context, voters []dao.Voter) ([]dao.Voter, error)
	FindByID(ctx context.Context, id string) (dao.Voter, error)
	FindAll(ctx context.Context) ([]dao.Voter, error)
}

type VoterRepository struct {
	dao VoterDAO
}

func NewVoterRepository(dao VoterDAO) *VoterRepository {
	return &VoterRepository{
		dao: dao,
	}
}

func (r *VoterRepository) Create(ctx context.Context, voter domain.Voter) (domain.Voter, error) {
	created, err := r.dao.Insert(ctx, dao.Voter{
		ID:     voter.ID,
		Active: voter.Active,
	})
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VoterRepository) CreateBatch(ctx context.Context, voters []domain.Voter) ([]domain.Voter, error) {
	daoVoters := make([]dao.Voter, len(voters))
	for i, voter := range voters {
		daoVoters[i] = dao.Voter{
			ID:     voter.ID,
			Active: voter.Active,
		}
	}

	created, err := r.dao.InsertBatch(ctx, daoVoters)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return r.daosToDomain(created), nil
}

func (r *VoterRepository) FindByID(ctx context.Context, id string) (domain.Voter, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Voter{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VoterRepository) FindAll(ctx context.Context) ([]domain.Voter, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *VoterRepository) daoToDomain(v dao.Voter) domain.Voter {
	return domain.Voter{
		ID:        v.ID,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
	}
}

func (r *VoterRepository) daosToDomain(daoVoters []dao.Voter) []domain.Voter {
	voters := make([]domain.Voter, len(daoVoters))
	for i, v := range daoVoters {
		voters[i] = r.daoToDomain(v)
	}

	return voters
}
