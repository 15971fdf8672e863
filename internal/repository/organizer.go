package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

var (
	ErrOrganizerEmailExists = dao.ErrOrganizerEmailExists
	ErrOrganizerNotFound    = dao.ErrOrganizerNotFound
)

type OrganizerDAO interface {
	Insert(ctx context.Context, organizer dao.Organizer) (dao.Organizer, error)
	FindByEmail(ctx context.Context, email string) (dao.Organizer, error)
	FindByID(ctx context.Context, id uint) (dao.Organizer, error)
}

type OrganizerRepository struct {
	dao OrganizerDAO
}

func NewOrganizerRepository(dao OrganizerDAO) *OrganizerRepository {
	return &OrganizerRepository{
		dao: dao,
	}
}

func (r *OrganizerRepository) Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	created, err := r.dao.Insert(ctx, dao.Organizer{
		Email:    organizer.Email,
		Password: organizer.Password,
		Name:     organizer.Name,
	})
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganizerRepository) FindByEmail(ctx context.Context, email string) (domain.Organizer, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganizerRepository) FindByID(ctx context.Context, id uint) (domain.Organizer, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganizerRepository) daoToDomain(o dao.Organizer) domain.Organizer {
	return domain.Organizer{
		ID:        o.ID,
		Email:     o.Email,
		Password:  o.Password,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
