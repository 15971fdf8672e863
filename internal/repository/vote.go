package repository

import (
	"context"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository/dao"
)

var (
	ErrPresentationTaken = dao.ErrPresentationTaken
	ErrDuplicateVote     = dao.ErrDuplicateVote
)

type VoteDAO interface {
	Toggle(ctx context.Context, voterID, beerID string, roundID uint, voteType string, exclusive bool) (bool, error)
	FindByVoterAndRound(ctx context.Context, voterID string, roundID uint) ([]dao.Vote, error)
	FindByRoundID(ctx context.Context, roundID uint) ([]dao.Vote, error)
	FindAll(ctx context.Context) ([]dao.Vote, error)
}

type VoteRepository struct {
	dao VoteDAO
}

func NewVoteRepository(dao VoteDAO) *VoteRepository {
	return &VoteRepository{
		dao: dao,
	}
}

// Toggle flips the vote identified by the ballot tuple and reports whether
// a vote now exists (true) or was removed (false).
func (r *VoteRepository) Toggle(ctx context.Context, voterID, beerID string, roundID uint, voteType domain.VoteType) (bool, error) {
	exclusive := voteType == domain.VoteTypeBestPresentation

	inserted, err := r.dao.Toggle(ctx, voterID, beerID, roundID, string(voteType), exclusive)
	if err != nil {
		return false, fmt.Errorf("r.dao.Toggle -> %w", err)
	}

	return inserted, nil
}

func (r *VoteRepository) FindByVoterAndRound(ctx context.Context, voterID string, roundID uint) ([]domain.Vote, error) {
	found, err := r.dao.FindByVoterAndRound(ctx, voterID, roundID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByVoterAndRound -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *VoteRepository) FindByRoundID(ctx context.Context, roundID uint) ([]domain.Vote, error) {
	found, err := r.dao.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRoundID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *VoteRepository) FindAll(ctx context.Context) ([]domain.Vote, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *VoteRepository) daosToDomain(daoVotes []dao.Vote) []domain.Vote {
	votes := make([]domain.Vote, len(daoVotes))
	for i, vote := range daoVotes {
		votes[i] = domain.Vote{
			ID:        vote.ID,
			VoterID:   vote.VoterID,
			BeerID:    vote.BeerID,
			RoundID:   vote.RoundID,
			VoteType:  domain.VoteType(vote.VoteType),
			CreatedAt: vote.CreatedAt,
		}
	}

	return votes
}
