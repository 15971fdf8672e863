package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

type SettingsDAO interface {
	Get(ctx context.Context) (dao.CompetitionSettings, error)
	Update(ctx context.Context, updates map[string]interface{}) (dao.CompetitionSettings, error)
}

type SettingsRepository struct {
	dao SettingsDAO
}

func NewSettingsRepository(dao SettingsDAO) *SettingsRepository {
	return &SettingsRepository{
		dao: dao,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.CompetitionSettings, error) {
	settings, err := r.dao.Get(ctx)
	if err != nil {
		return domain.CompetitionSettings{}, fmt.Errorf("r.dao.Get -> %w", err)
	}

	return r.daoToDomain(settings), nil
}

func (r *SettingsRepository) Update(ctx context.Context, update domain.SettingsUpdate) (domain.CompetitionSettings, error) {
	updates := map[string]interface{}{}
	if update.VotingEnabled != nil {
		updates["voting_enabled"] = *update.VotingEnabled
	}
	if update.StartbahnCount != nil {
		updates["startbahn_count"] = *update.StartbahnCount
	}

	if len(updates) == 0 {
		return r.Get(ctx)
	}

	updated, err := r.dao.Update(ctx, updates)
	if err != nil {
		return domain.CompetitionSettings{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SettingsRepository) daoToDomain(settings dao.CompetitionSettings) domain.CompetitionSettings {
	return domain.CompetitionSettings{
		ID:             settings.ID,
		VotingEnabled:  settings.VotingEnabled,
		StartbahnCount: settings.StartbahnCount,
	}
}
