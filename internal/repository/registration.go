package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

var (
	ErrBeerAlreadyRegistered = dao.ErrBeerAlreadyRegistered
	ErrRegistrationNotFound  = dao.ErrRegistrationNotFound
	ErrLaneTaken             = dao.ErrLaneTaken
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.BeerRegistration) (dao.BeerRegistration, error)
	FindByBeerID(ctx context.Context, beerID string) (dao.BeerRegistration, error)
	FindByRoundID(ctx context.Context, roundID uint) ([]dao.BeerRegistration, error)
	FindAll(ctx context.Context) ([]dao.BeerRegistration, error)
	FindByLane(ctx context.Context, startbahn int, roundID uint) (dao.BeerRegistration, error)
	Update(ctx context.Context, registration dao.BeerRegistration) (dao.BeerRegistration, error)
	DeleteByBeerID(ctx context.Context, beerID string) error
	UpsertStartbahnConfig(ctx context.Context, config dao.StartbahnConfig) (dao.StartbahnConfig, error)
	FindStartbahnConfigs(ctx context.Context) ([]dao.StartbahnConfig, error)
	DeleteStartbahnConfig(ctx context.Context, startbahn int) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error) {
	created, err := r.dao.Insert(ctx, dao.BeerRegistration{
		BeerID:         registration.BeerID,
		Startbahn:      registration.Startbahn,
		RoundID:        registration.RoundID,
		Reinheitsgebot: registration.Reinheitsgebot,
		CheckedInAt:    registration.CheckedInAt,
	})
	if err != nil {
		return domain.BeerRegistration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindByBeerID(ctx context.Context, beerID string) (domain.BeerRegistration, error) {
	found, err := r.dao.FindByBeerID(ctx, beerID)
	if err != nil {
		return domain.BeerRegistration{}, fmt.Errorf("r.dao.FindByBeerID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegistrationRepository) FindByRoundID(ctx context.Context, roundID uint) ([]domain.BeerRegistration, error) {
	found, err := r.dao.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRoundID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *RegistrationRepository) FindAll(ctx context.Context) ([]domain.BeerRegistration, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *RegistrationRepository) FindByLane(ctx context.Context, startbahn int, roundID uint) (domain.BeerRegistration, error) {
	found, err := r.dao.FindByLane(ctx, startbahn, roundID)
	if err != nil {
		return domain.BeerRegistration{}, fmt.Errorf("r.dao.FindByLane -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegistrationRepository) Update(ctx context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error) {
	updated, err := r.dao.Update(ctx, dao.BeerRegistration{
		BeerID:         registration.BeerID,
		Startbahn:      registration.Startbahn,
		RoundID:        registration.RoundID,
		Reinheitsgebot: registration.Reinheitsgebot,
	})
	if err != nil {
		return domain.BeerRegistration{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RegistrationRepository) DeleteByBeerID(ctx context.Context, beerID string) error {
	if err := r.dao.DeleteByBeerID(ctx, beerID); err != nil {
		return fmt.Errorf("r.dao.DeleteByBeerID -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) UpsertStartbahnConfig(ctx context.Context, config domain.StartbahnConfig) (domain.StartbahnConfig, error) {
	upserted, err := r.dao.UpsertStartbahnConfig(ctx, dao.StartbahnConfig{
		Startbahn: config.Startbahn,
		Name:      config.Name,
	})
	if err != nil {
		return domain.StartbahnConfig{}, fmt.Errorf("r.dao.UpsertStartbahnConfig -> %w", err)
	}

	return domain.StartbahnConfig{Startbahn: upserted.Startbahn, Name: upserted.Name}, nil
}

func (r *RegistrationRepository) FindStartbahnConfigs(ctx context.Context) ([]domain.StartbahnConfig, error) {
	found, err := r.dao.FindStartbahnConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStartbahnConfigs -> %w", err)
	}

	configs := make([]domain.StartbahnConfig, len(found))
	for i, config := range found {
		configs[i] = domain.StartbahnConfig{Startbahn: config.Startbahn, Name: config.Name}
	}

	return configs, nil
}

func (r *RegistrationRepository) DeleteStartbahnConfig(ctx context.Context, startbahn int) error {
	if err := r.dao.DeleteStartbahnConfig(ctx, startbahn); err != nil {
		return fmt.Errorf("r.dao.DeleteStartbahnConfig -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) daoToDomain(registration dao.BeerRegistration) domain.BeerRegistration {
	return domain.BeerRegistration{
		BeerID:         registration.BeerID,
		Startbahn:      registration.Startbahn,
		RoundID:        registration.RoundID,
		Reinheitsgebot: registration.Reinheitsgebot,
		CheckedInAt:    registration.CheckedInAt,
	}
}

func (r *RegistrationRepository) daosToDomain(daoRegistrations []dao.BeerRegistration) []domain.BeerRegistration {
	registrations := make([]domain.BeerRegistration, len(daoRegistrations))
	for i, registration := range daoRegistrations {
		registrations[i] = r.daoToDomain(registration)
	}

	return registrations
}
