package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrOrganizerEmailExists = errors.New("organizer already exists")
	ErrOrganizerNotFound    = errors.New("organizer not found")
)

type Organizer struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OrganizerDAO struct {
	db *gorm.DB
}

func NewOrganizerDAO(db *gorm.DB) *OrganizerDAO {
	return &OrganizerDAO{
		db: db,
	}
}

func (d *OrganizerDAO) Insert(ctx context.Context, organizer Organizer) (Organizer, error) {
	result := d.db.WithContext(ctx).Create(&organizer)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_organizers_email"`) {
			return Organizer{}, ErrOrganizerEmailExists
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *OrganizerDAO) FindByEmail(ctx context.Context, email string) (Organizer, error) {
	var organizer Organizer

	result := d.db.WithContext(ctx).Where("email = ?", email).First(&organizer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organizer{}, ErrOrganizerNotFound
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *OrganizerDAO) FindByID(ctx context.Context, id uint) (Organizer, error) {
	var organizer Organizer

	result := d.db.WithContext(ctx).First(&organizer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organizer{}, ErrOrganizerNotFound
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}
