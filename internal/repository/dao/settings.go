package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsID is the fixed primary key of the singleton settings row.
const settingsID = 1

const defaultStartbahnCount = 50

type CompetitionSettings struct {
	ID uint `gorm:"primaryKey"`

	VotingEnabled  bool `gorm:"not null;default:false"`
	StartbahnCount int  `gorm:"not null;default:50"`

	UpdatedAt time.Time `gorm:"not null"`
}

func (CompetitionSettings) TableName() string {
	return "competition_settings"
}

type SettingsDAO struct {
	db *gorm.DB
}

func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{
		db: db,
	}
}

// Get returns the singleton settings row, creating it with defaults on
// first read.
func (d *SettingsDAO) Get(ctx context.Context) (CompetitionSettings, error) {
	settings := CompetitionSettings{
		ID:             settingsID,
		VotingEnabled:  false,
		StartbahnCount: defaultStartbahnCount,
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&settings)
	if result.Error != nil {
		return CompetitionSettings{}, result.Error
	}

	result = d.db.WithContext(ctx).First(&settings, settingsID)
	if result.Error != nil {
		return CompetitionSettings{}, result.Error
	}

	return settings, nil
}

func (d *SettingsDAO) Update(ctx context.Context, updates map[string]interface{}) (CompetitionSettings, error) {
	if _, err := d.Get(ctx); err != nil {
		return CompetitionSettings{}, err
	}

	result := d.db.WithContext(ctx).
		Model(&CompetitionSettings{}).
		Where("id = ?", settingsID).
		Updates(updates)
	if result.Error != nil {
		return CompetitionSettings{}, result.Error
	}

	var settings CompetitionSettings
	if err := d.db.WithContext(ctx).First(&settings, settingsID).Error; err != nil {
		return CompetitionSettings{}, err
	}

	return settings, nil
}
