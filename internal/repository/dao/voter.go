package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVoterNotFound = errors.New("voter not found")

type Voter struct {
	ID     string `gorm:"primaryKey"`
	Active bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type VoterDAO struct {
	db *gorm.DB
}

func NewVoterDAO(db *gorm.DB) *VoterDAO {
	return &VoterDAO{
		db: db,
	}
}

func (d *VoterDAO) Insert(ctx context.Context, voter Voter) (Voter, error) {
	result := d.db.WithContext(ctx).Create(&voter)
	if result.Error != nil {
		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) InsertBatch(ctx context.Context, voters []Voter) ([]Voter, error) {
	result := d.db.WithContext(ctx).Create(&voters)
	if result.Error != nil {
		return nil, result.Error
	}

	return voters, nil
}

func (d *VoterDAO) FindByID(ctx context.Context, id string) (Voter, error) {
	var voter Voter

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&voter)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Voter{}, ErrVoterNotFound
		}

		return Voter{}, result.Error
	}

	return voter, nil
}

func (d *VoterDAO) FindAll(ctx context.Context) ([]Voter, error) {
	var voters []Voter

	result := d.db.WithContext(ctx).Order("created_at").Find(&voters)
	if result.Error != nil {
		return nil, result.Error
	}

	return voters, nil
}
