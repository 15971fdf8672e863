package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository"
)

var (
	ErrVotingClosed      = errors.New("voting is currently closed")
	ErrVoterInvalid      = errors.New("unknown or inactive voter")
	ErrNoActiveRound     = repository.ErrNoActiveRound
	ErrBeerNotInRound    = errors.New("beer is not registered in the active round")
	ErrPresentationTaken = repository.ErrPresentationTaken
)

type VoteRepository interface {
	Toggle(ctx context.Context, voterID, beerID string, roundID uint, voteType domain.VoteType) (bool, error)
	FindByVoterAndRound(ctx context.Context, voterID string, roundID uint) ([]domain.Vote, error)
	FindByRoundID(ctx context.Context, roundID uint) ([]domain.Vote, error)
	FindAll(ctx context.Context) ([]domain.Vote, error)
}

type VoterRepository interface {
	Create(ctx context.Context, voter domain.Voter) (domain.Voter, error)
	CreateBatch(ctx context.Context, voters []domain.Voter) ([]domain.Voter, error)
	FindByID(ctx context.Context, id string) (domain.Voter, error)
	FindAll(ctx context.Context) ([]domain.Voter, error)
}

// VotingService is the vote ledger's mutation and query surface. Every
// toggle re-checks the gate conditions in a fixed order: voting enabled,
// voter valid, round active, beer registered in that round.
type VotingService struct {
	votes         VoteRepository
	voters        VoterRepository
	rounds        RoundRepository
	registrations RegistrationRepository
	settings      SettingsRepository
}

func NewVotingService(
	votes VoteRepository,
	voters VoterRepository,
	rounds RoundRepository,
	registrations RegistrationRepository,
	settings SettingsRepository,
) *VotingService {
	return &VotingService{
		votes:         votes,
		voters:        voters,
		rounds:        rounds,
		registrations: registrations,
		settings:      settings,
	}
}

// ToggleVote flips the voter's vote for a beer in the active round and
// returns the voter's full vote state for both categories afterwards, so
// one round-trip refreshes all voting UI. The reported bool is true when
// the toggle added a vote.
//
// On ErrPresentationTaken the returned sets reflect the unchanged ledger;
// on any other failure they are empty.
func (s *VotingService) ToggleVote(ctx context.Context, voterID, beerID string, voteType domain.VoteType) (domain.CurrentVotes, bool, error) {
	empty := emptyCurrentVotes()

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return empty, false, fmt.Errorf("s.settings.Get -> %w", err)
	}
	if !settings.VotingEnabled {
		return empty, false, ErrVotingClosed
	}

	voter, err := s.voters.FindByID(ctx, voterID)
	if err != nil {
		if errors.Is(err, repository.ErrVoterNotFound) {
			return empty, false, ErrVoterInvalid
		}

		return empty, false, fmt.Errorf("s.voters.FindByID -> %w", err)
	}
	if !voter.Active {
		return empty, false, ErrVoterInvalid
	}

	round, err := s.rounds.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveRound) {
			return empty, false, ErrNoActiveRound
		}

		return empty, false, fmt.Errorf("s.rounds.FindActive -> %w", err)
	}

	registration, err := s.registrations.FindByBeerID(ctx, beerID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return empty, false, ErrBeerNotInRound
		}

		return empty, false, fmt.Errorf("s.registrations.FindByBeerID -> %w", err)
	}
	if registration.RoundID != round.ID {
		return empty, false, ErrBeerNotInRound
	}

	inserted, err := s.votes.Toggle(ctx, voterID, beerID, round.ID, voteType)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPresentationTaken):
			current, cErr := s.votesInRound(ctx, voterID, round.ID)
			if cErr != nil {
				return empty, false, fmt.Errorf("s.votesInRound -> %w", cErr)
			}

			return current, false, ErrPresentationTaken
		case errors.Is(err, repository.ErrDuplicateVote):
			// A concurrent toggle already inserted this vote; the ledger
			// holds exactly the state this request asked for.
			inserted = true
		default:
			return empty, false, fmt.Errorf("s.votes.Toggle -> %w", err)
		}
	}

	current, err := s.votesInRound(ctx, voterID, round.ID)
	if err != nil {
		return empty, false, fmt.Errorf("s.votesInRound -> %w", err)
	}

	return current, inserted, nil
}

// GetCurrentVotes returns the voter's vote sets for the active round.
// Without an active round both sets are empty.
func (s *VotingService) GetCurrentVotes(ctx context.Context, voterID string) (domain.CurrentVotes, error) {
	round, err := s.rounds.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveRound) {
			return emptyCurrentVotes(), nil
		}

		return emptyCurrentVotes(), fmt.Errorf("s.rounds.FindActive -> %w", err)
	}

	return s.votesInRound(ctx, voterID, round.ID)
}

func (s *VotingService) votesInRound(ctx context.Context, voterID string, roundID uint) (domain.CurrentVotes, error) {
	votes, err := s.votes.FindByVoterAndRound(ctx, voterID, roundID)
	if err != nil {
		return emptyCurrentVotes(), fmt.Errorf("s.votes.FindByVoterAndRound -> %w", err)
	}

	current := emptyCurrentVotes()
	for _, vote := range votes {
		switch vote.VoteType {
		case domain.VoteTypeBestBeer:
			current.BestBeer = append(current.BestBeer, vote.BeerID)
		case domain.VoteTypeBestPresentation:
			current.Presentation = append(current.Presentation, vote.BeerID)
		}
	}

	return current, nil
}

func emptyCurrentVotes() domain.CurrentVotes {
	return domain.CurrentVotes{
		BestBeer:     []string{},
		Presentation: []string{},
	}
}
