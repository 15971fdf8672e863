package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrBeerAlreadyRegistered = errors.New("beer already registered")
	ErrRegistrationNotFound  = errors.New("beer registration not found")
	ErrLaneTaken             = errors.New("startbahn already taken in round")
)

type BeerRegistration struct {
	ID uint `gorm:"primaryKey"`

	BeerID         string `gorm:"not null;uniqueIndex:idx_registrations_beer"`
	Startbahn      int    `gorm:"not null;uniqueIndex:idx_registrations_lane_round"`
	RoundID        uint   `gorm:"not null;uniqueIndex:idx_registrations_lane_round;index"`
	Reinheitsgebot bool   `gorm:"not null;default:false"`

	CheckedInAt time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type StartbahnConfig struct {
	Startbahn int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// mapUniqueViolation translates the registration table's unique indexes into
// sentinel errors. Both invariants are enforced at the database level, so
// racing check-ins still end up with exactly one row.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch {
	case strings.Contains(pgErr.Message, "idx_registrations_beer"):
		return ErrBeerAlreadyRegistered
	case strings.Contains(pgErr.Message, "idx_registrations_lane_round"):
		return ErrLaneTaken
	}

	return err
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration BeerRegistration) (BeerRegistration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		return BeerRegistration{}, mapUniqueViolation(result.Error)
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByBeerID(ctx context.Context, beerID string) (BeerRegistration, error) {
	var registration BeerRegistration

	result := d.db.WithContext(ctx).Where("beer_id = ?", beerID).First(&registration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BeerRegistration{}, ErrRegistrationNotFound
		}

		return BeerRegistration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByRoundID(ctx context.Context, roundID uint) ([]BeerRegistration, error) {
	var registrations []BeerRegistration

	result := d.db.WithContext(ctx).Where("round_id = ?", roundID).Order("startbahn").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) FindAll(ctx context.Context) ([]BeerRegistration, error) {
	var registrations []BeerRegistration

	result := d.db.WithContext(ctx).Order("round_id, startbahn").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

// FindByLane returns the registration occupying a lane within a round.
func (d *RegistrationDAO) FindByLane(ctx context.Context, startbahn int, roundID uint) (BeerRegistration, error) {
	var registration BeerRegistration

	result := d.db.WithContext(ctx).
		Where("startbahn = ? AND round_id = ?", startbahn, roundID).
		First(&registration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BeerRegistration{}, ErrRegistrationNotFound
		}

		return BeerRegistration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) Update(ctx context.Context, registration BeerRegistration) (BeerRegistration, error) {
	result := d.db.WithContext(ctx).
		Model(&BeerRegistration{}).
		Where("beer_id = ?", registration.BeerID).
		Updates(map[string]interface{}{
			"startbahn":      registration.Startbahn,
			"round_id":       registration.RoundID,
			"reinheitsgebot": registration.Reinheitsgebot,
		})
	if result.Error != nil {
		return BeerRegistration{}, mapUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return BeerRegistration{}, ErrRegistrationNotFound
	}

	return registration, nil
}

// DeleteByBeerID removes the registration only. Votes referencing the beer
// stay in the ledger and are filtered out at tally time.
func (d *RegistrationDAO) DeleteByBeerID(ctx context.Context, beerID string) error {
	return d.db.WithContext(ctx).Where("beer_id = ?", beerID).Delete(&BeerRegistration{}).Error
}

func (d *RegistrationDAO) UpsertStartbahnConfig(ctx context.Context, config StartbahnConfig) (StartbahnConfig, error) {
	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "startbahn"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&config)
	if result.Error != nil {
		return StartbahnConfig{}, result.Error
	}

	return config, nil
}

func (d *RegistrationDAO) FindStartbahnConfigs(ctx context.Context) ([]StartbahnConfig, error) {
	var configs []StartbahnConfig

	result := d.db.WithContext(ctx).Order("startbahn").Find(&configs)
	if result.Error != nil {
		return nil, result.Error
	}

	return configs, nil
}

func (d *RegistrationDAO) DeleteStartbahnConfig(ctx context.Context, startbahn int) error {
	return d.db.WithContext(ctx).Where("startbahn = ?", startbahn).Delete(&StartbahnConfig{}).Error
}
