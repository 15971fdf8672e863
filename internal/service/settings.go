package service

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.CompetitionSettings, error)
	Update(ctx context.Context, update domain.SettingsUpdate) (domain.CompetitionSettings, error)
}

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

func (s *SettingsService) GetSettings(ctx context.Context) (domain.CompetitionSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return domain.CompetitionSettings{}, fmt.Errorf("s.repo.Get -> %w", err)
	}

	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.CompetitionSettings, error) {
	updated, err := s.repo.Update(ctx, update)
	if err != nil {
		return domain.CompetitionSettings{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
