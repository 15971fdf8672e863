package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPresentationTaken = errors.New("presentation vote already assigned")
	ErrDuplicateVote     = errors.New("vote already exists")
)

type Vote struct {
	ID string `gorm:"primaryKey"`

	VoterID  string `gorm:"not null;uniqueIndex:idx_votes_ballot;index"`
	BeerID   string `gorm:"not null;uniqueIndex:idx_votes_ballot"`
	RoundID  uint   `gorm:"not null;uniqueIndex:idx_votes_ballot;index"`
	VoteType string `gorm:"not null;uniqueIndex:idx_votes_ballot"`

	CreatedAt time.Time `gorm:"not null"`
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// Toggle inserts or deletes the vote identified by (voter, beer, round,
// type) in one transaction. It returns true when a vote was inserted and
// false when an existing vote was removed.
//
// Single-select categories pass exclusive=true: the insert is rejected with
// ErrPresentationTaken while the voter holds a vote for a different beer in
// the same round and category. The unique index on the ballot tuple backs
// the transaction up under concurrent toggles; a duplicate insert surfaces
// as ErrDuplicateVote instead of a raw constraint error.
func (d *VoteDAO) Toggle(ctx context.Context, voterID, beerID string, roundID uint, voteType string, exclusive bool) (bool, error) {
	var inserted bool

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Vote
		err := tx.Where(
			"voter_id = ? AND beer_id = ? AND round_id = ? AND vote_type = ?",
			voterID, beerID, roundID, voteType,
		).First(&existing).Error

		if err == nil {
			inserted = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if exclusive {
			var count int64
			err = tx.Model(&Vote{}).
				Where("voter_id = ? AND round_id = ? AND vote_type = ?", voterID, roundID, voteType).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrPresentationTaken
			}
		}

		inserted = true
		return tx.Create(&Vote{
			ID:       uuid.NewString(),
			VoterID:  voterID,
			BeerID:   beerID,
			RoundID:  roundID,
			VoteType: voteType,
		}).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, "idx_votes_ballot") {
			return false, ErrDuplicateVote
		}

		return false, err
	}

	return inserted, nil
}

func (d *VoteDAO) FindByVoterAndRound(ctx context.Context, voterID string, roundID uint) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).
		Where("voter_id = ? AND round_id = ?", voterID, roundID).
		Order("created_at").
		Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}

func (d *VoteDAO) FindByRoundID(ctx context.Context, roundID uint) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).Where("round_id = ?", roundID).Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}

func (d *VoteDAO) FindAll(ctx context.Context) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}
