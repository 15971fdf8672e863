package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRoundNotFound = errors.New("round not found")
	ErrNoActiveRound = errors.New("no active round")
)

type Round struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	Active bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type RoundDAO struct {
	db *gorm.DB
}

func NewRoundDAO(db *gorm.DB) *RoundDAO {
	return &RoundDAO{
		db: db,
	}
}

func (d *RoundDAO) Insert(ctx context.Context, round Round) (Round, error) {
	result := d.db.WithContext(ctx).Create(&round)
	if result.Error != nil {
		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) FindByID(ctx context.Context, id uint) (Round, error) {
	var round Round

	result := d.db.WithContext(ctx).First(&round, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Round{}, ErrRoundNotFound
		}

		return Round{}, result.Error
	}

	return round, nil
}

func (d *RoundDAO) FindAll(ctx context.Context) ([]Round, error) {
	var rounds []Round

	result := d.db.WithContext(ctx).Order("id").Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}

	return rounds, nil
}

func (d *RoundDAO) FindActive(ctx context.Context) (Round, error) {
	var round Round

	result := d.db.WithContext(ctx).Where("active = ?", true).First(&round)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Round{}, ErrNoActiveRound
		}

		return Round{}, result.Error
	}

	return round, nil
}

// Activate deactivates every round and activates the target in one
// transaction, so no reader ever observes zero or two active rounds.
// A nonexistent id fails with ErrRoundNotFound before any write.
func (d *RoundDAO) Activate(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var round Round
		if err := tx.First(&round, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoundNotFound
			}

			return err
		}

		if err := tx.Model(&Round{}).Where("active = ?", true).Update("active", false).Error; err != nil {
			return err
		}

		return tx.Model(&Round{}).Where("id = ?", id).Update("active", true).Error
	})
}
