package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository"
)

var (
	ErrLaneOutOfRange        = errors.New("startbahn outside the configured range")
	ErrLaneTaken             = repository.ErrLaneTaken
	ErrBeerAlreadyRegistered = repository.ErrBeerAlreadyRegistered
	ErrRegistrationNotFound  = repository.ErrRegistrationNotFound
	ErrEmptyStartbahnName    = errors.New("startbahn name must not be empty")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error)
	FindByBeerID(ctx context.Context, beerID string) (domain.BeerRegistration, error)
	FindByRoundID(ctx context.Context, roundID uint) ([]domain.BeerRegistration, error)
	FindAll(ctx context.Context) ([]domain.BeerRegistration, error)
	FindByLane(ctx context.Context, startbahn int, roundID uint) (domain.BeerRegistration, error)
	Update(ctx context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error)
	DeleteByBeerID(ctx context.Context, beerID string) error
	UpsertStartbahnConfig(ctx context.Context, config domain.StartbahnConfig) (domain.StartbahnConfig, error)
	FindStartbahnConfigs(ctx context.Context) ([]domain.StartbahnConfig, error)
	DeleteStartbahnConfig(ctx context.Context, startbahn int) error
}

// CheckinService enforces the check-in invariants: a beer is registered at
// most once, a lane is occupied at most once per round, and lanes stay
// within the configured bound.
type CheckinService struct {
	registrations RegistrationRepository
	rounds        RoundRepository
	settings      SettingsRepository
}

func NewCheckinService(registrations RegistrationRepository, rounds RoundRepository, settings SettingsRepository) *CheckinService {
	return &CheckinService{
		registrations: registrations,
		rounds:        rounds,
		settings:      settings,
	}
}

func (s *CheckinService) RegisterBeer(ctx context.Context, beerID string, startbahn int, roundID uint, reinheitsgebot bool) (domain.BeerRegistration, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.BeerRegistration{}, fmt.Errorf("s.settings.Get -> %w", err)
	}
	if startbahn < 1 || startbahn > settings.StartbahnCount {
		return domain.BeerRegistration{}, ErrLaneOutOfRange
	}

	if _, err = s.rounds.FindByID(ctx, roundID); err != nil {
		if errors.Is(err, repository.ErrRoundNotFound) {
			return domain.BeerRegistration{}, ErrRoundNotFound
		}

		return domain.BeerRegistration{}, fmt.Errorf("s.rounds.FindByID -> %w", err)
	}

	if _, err = s.registrations.FindByBeerID(ctx, beerID); err == nil {
		return domain.BeerRegistration{}, ErrBeerAlreadyRegistered
	} else if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return domain.BeerRegistration{}, fmt.Errorf("s.registrations.FindByBeerID -> %w", err)
	}

	if _, err = s.registrations.FindByLane(ctx, startbahn, roundID); err == nil {
		return domain.BeerRegistration{}, ErrLaneTaken
	} else if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return domain.BeerRegistration{}, fmt.Errorf("s.registrations.FindByLane -> %w", err)
	}

	// The unique indexes catch racing check-ins that slip past the checks
	// above; the repository maps those conflicts onto the same errors.
	created, err := s.registrations.Create(ctx, domain.BeerRegistration{
		BeerID:         beerID,
		Startbahn:      startbahn,
		RoundID:        roundID,
		Reinheitsgebot: reinheitsgebot,
		CheckedInAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrBeerAlreadyRegistered) {
			return domain.BeerRegistration{}, ErrBeerAlreadyRegistered
		}
		if errors.Is(err, repository.ErrLaneTaken) {
			return domain.BeerRegistration{}, ErrLaneTaken
		}

		return domain.BeerRegistration{}, fmt.Errorf("s.registrations.Create -> %w", err)
	}

	return created, nil
}

// UpdateRegistration merges a partial update over the current registration
// and re-validates lane uniqueness, excluding the beer's own row so moving
// a beer onto its own lane is never a conflict.
func (s *CheckinService) UpdateRegistration(ctx context.Context, beerID string, update domain.RegistrationUpdate) (domain.BeerRegistration, error) {
	current, err := s.registrations.FindByBeerID(ctx, beerID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.BeerRegistration{}, ErrRegistrationNotFound
		}

		return domain.BeerRegistration{}, fmt.Errorf("s.registrations.FindByBeerID -> %w", err)
	}

	merged := current
	if update.Startbahn != nil {
		merged.Startbahn = *update.Startbahn
	}
	if update.RoundID != nil {
		merged.RoundID = *update.RoundID
	}
	if update.Reinheitsgebot != nil {
		merged.Reinheitsgebot = *update.Reinheitsgebot
	}

	if update.Startbahn != nil || update.RoundID != nil {
		conflict, err := s.registrations.FindByLane(ctx, merged.Startbahn, merged.RoundID)
		if err == nil && conflict.BeerID != beerID {
			return domain.BeerRegistration{}, ErrLaneTaken
		}
		if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.BeerRegistration{}, fmt.Errorf("s.registrations.FindByLane -> %w", err)
		}
	}

	updated, err := s.registrations.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, repository.ErrLaneTaken) {
			return domain.BeerRegistration{}, ErrLaneTaken
		}

		return domain.BeerRegistration{}, fmt.Errorf("s.registrations.Update -> %w", err)
	}

	return updated, nil
}

// UnregisterBeer removes the registration. Votes for the beer stay in the
// ledger as orphans and are excluded from tallies by the orphan filter.
func (s *CheckinService) UnregisterBeer(ctx context.Context, beerID string) error {
	if err := s.registrations.DeleteByBeerID(ctx, beerID); err != nil {
		return fmt.Errorf("s.registrations.DeleteByBeerID -> %w", err)
	}

	return nil
}

// AvailableStartbahns lists the free lanes of a round: 1..startbahnCount
// minus the lanes already taken.
func (s *CheckinService) AvailableStartbahns(ctx context.Context, roundID uint) ([]int, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.settings.Get -> %w", err)
	}

	registrations, err := s.registrations.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindByRoundID -> %w", err)
	}

	taken := make(map[int]bool, len(registrations))
	for _, registration := range registrations {
		taken[registration.Startbahn] = true
	}

	available := make([]int, 0, settings.StartbahnCount)
	for lane := 1; lane <= settings.StartbahnCount; lane++ {
		if !taken[lane] {
			available = append(available, lane)
		}
	}

	return available, nil
}

func (s *CheckinService) RegisteredBeers(ctx context.Context) ([]domain.BeerRegistration, error) {
	registrations, err := s.registrations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindAll -> %w", err)
	}

	return registrations, nil
}

func (s *CheckinService) UpsertStartbahnConfig(ctx context.Context, startbahn int, name string) (domain.StartbahnConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.StartbahnConfig{}, ErrEmptyStartbahnName
	}

	config, err := s.registrations.UpsertStartbahnConfig(ctx, domain.StartbahnConfig{
		Startbahn: startbahn,
		Name:      name,
	})
	if err != nil {
		return domain.StartbahnConfig{}, fmt.Errorf("s.registrations.UpsertStartbahnConfig -> %w", err)
	}

	return config, nil
}

func (s *CheckinService) StartbahnConfigs(ctx context.Context) ([]domain.StartbahnConfig, error) {
	configs, err := s.registrations.FindStartbahnConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindStartbahnConfigs -> %w", err)
	}

	return configs, nil
}

func (s *CheckinService) DeleteStartbahnConfig(ctx context.Context, startbahn int) error {
	if err := s.registrations.DeleteStartbahnConfig(ctx, startbahn); err != nil {
		return fmt.Errorf("s.registrations.DeleteStartbahnConfig -> %w", err)
	}

	return nil
}
