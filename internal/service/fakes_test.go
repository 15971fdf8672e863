package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/repository"
)

// In-memory repository fakes backing the service tests. They mirror the
// Postgres-backed repositories' contracts, including the sentinel errors.

type fakeVoteRepo struct {
	votes  []domain.Vote
	nextID int
}

func (f *fakeVoteRepo) Toggle(_ context.Context, voterID, beerID string, roundID uint, voteType domain.VoteType) (bool, error) {
	for i, vote := range f.votes {
		if vote.VoterID == voterID && vote.BeerID == beerID && vote.RoundID == roundID && vote.VoteType == voteType {
			f.votes = append(f.votes[:i], f.votes[i+1:]...)
			return false, nil
		}
	}

	if voteType == domain.VoteTypeBestPresentation {
		for _, vote := range f.votes {
			if vote.VoterID == voterID && vote.RoundID == roundID && vote.VoteType == voteType {
				return false, repository.ErrPresentationTaken
			}
		}
	}

	f.nextID++
	f.votes = append(f.votes, domain.Vote{
		ID:        fmt.Sprintf("vote-%d", f.nextID),
		VoterID:   voterID,
		BeerID:    beerID,
		RoundID:   roundID,
		VoteType:  voteType,
		CreatedAt: time.Now(),
	})

	return true, nil
}

func (f *fakeVoteRepo) FindByVoterAndRound(_ context.Context, voterID string, roundID uint) ([]domain.Vote, error) {
	var found []domain.Vote
	for _, vote := range f.votes {
		if vote.VoterID == voterID && vote.RoundID == roundID {
			found = append(found, vote)
		}
	}

	return found, nil
}

func (f *fakeVoteRepo) FindByRoundID(_ context.Context, roundID uint) ([]domain.Vote, error) {
	var found []domain.Vote
	for _, vote := range f.votes {
		if vote.RoundID == roundID {
			found = append(found, vote)
		}
	}

	return found, nil
}

func (f *fakeVoteRepo) FindAll(_ context.Context) ([]domain.Vote, error) {
	return append([]domain.Vote(nil), f.votes...), nil
}

type fakeVoterRepo struct {
	voters map[string]domain.Voter
}

func newFakeVoterRepo(ids ...string) *fakeVoterRepo {
	f := &fakeVoterRepo{voters: make(map[string]domain.Voter)}
	for _, id := range ids {
		f.voters[id] = domain.Voter{ID: id, Active: true, CreatedAt: time.Now()}
	}

	return f
}

func (f *fakeVoterRepo) Create(_ context.Context, voter domain.Voter) (domain.Voter, error) {
	f.voters[voter.ID] = voter
	return voter, nil
}

func (f *fakeVoterRepo) CreateBatch(_ context.Context, voters []domain.Voter) ([]domain.Voter, error) {
	for _, voter := range voters {
		f.voters[voter.ID] = voter
	}

	return voters, nil
}

func (f *fakeVoterRepo) FindByID(_ context.Context, id string) (domain.Voter, error) {
	voter, ok := f.voters[id]
	if !ok {
		return domain.Voter{}, repository.ErrVoterNotFound
	}

	return voter, nil
}

func (f *fakeVoterRepo) FindAll(_ context.Context) ([]domain.Voter, error) {
	all := make([]domain.Voter, 0, len(f.voters))
	for _, voter := range f.voters {
		all = append(all, voter)
	}

	return all, nil
}

type fakeRoundRepo struct {
	rounds []domain.Round
	nextID uint
}

func (f *fakeRoundRepo) add(name string, active bool) domain.Round {
	f.nextID++
	round := domain.Round{ID: f.nextID, Name: name, Active: active, CreatedAt: time.Now()}
	f.rounds = append(f.rounds, round)

	return round
}

func (f *fakeRoundRepo) Create(_ context.Context, round domain.Round) (domain.Round, error) {
	return f.add(round.Name, round.Active), nil
}

func (f *fakeRoundRepo) FindByID(_ context.Context, id uint) (domain.Round, error) {
	for _, round := range f.rounds {
		if round.ID == id {
			return round, nil
		}
	}

	return domain.Round{}, repository.ErrRoundNotFound
}

func (f *fakeRoundRepo) FindAll(_ context.Context) ([]domain.Round, error) {
	return append([]domain.Round(nil), f.rounds...), nil
}

func (f *fakeRoundRepo) FindActive(_ context.Context) (domain.Round, error) {
	for _, round := range f.rounds {
		if round.Active {
			return round, nil
		}
	}

	return domain.Round{}, repository.ErrNoActiveRound
}

func (f *fakeRoundRepo) Activate(_ context.Context, id uint) error {
	found := false
	for _, round := range f.rounds {
		if round.ID == id {
			found = true
			break
		}
	}
	if !found {
		return repository.ErrRoundNotFound
	}

	for i := range f.rounds {
		f.rounds[i].Active = f.rounds[i].ID == id
	}

	return nil
}

type fakeRegistrationRepo struct {
	registrations map[string]domain.BeerRegistration
	configs       map[int]domain.StartbahnConfig
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		registrations: make(map[string]domain.BeerRegistration),
		configs:       make(map[int]domain.StartbahnConfig),
	}
}

func (f *fakeRegistrationRepo) add(beerID string, startbahn int, roundID uint) {
	f.registrations[beerID] = domain.BeerRegistration{
		BeerID:      beerID,
		Startbahn:   startbahn,
		RoundID:     roundID,
		CheckedInAt: time.Now(),
	}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error) {
	if _, ok := f.registrations[registration.BeerID]; ok {
		return domain.BeerRegistration{}, repository.ErrBeerAlreadyRegistered
	}
	for _, existing := range f.registrations {
		if existing.Startbahn == registration.Startbahn && existing.RoundID == registration.RoundID {
			return domain.BeerRegistration{}, repository.ErrLaneTaken
		}
	}

	f.registrations[registration.BeerID] = registration

	return registration, nil
}

func (f *fakeRegistrationRepo) FindByBeerID(_ context.Context, beerID string) (domain.BeerRegistration, error) {
	registration, ok := f.registrations[beerID]
	if !ok {
		return domain.BeerRegistration{}, repository.ErrRegistrationNotFound
	}

	return registration, nil
}

func (f *fakeRegistrationRepo) FindByRoundID(_ context.Context, roundID uint) ([]domain.BeerRegistration, error) {
	var found []domain.BeerRegistration
	for _, registration := range f.registrations {
		if registration.RoundID == roundID {
			found = append(found, registration)
		}
	}

	return found, nil
}

func (f *fakeRegistrationRepo) FindAll(_ context.Context) ([]domain.BeerRegistration, error) {
	all := make([]domain.BeerRegistration, 0, len(f.registrations))
	for _, registration := range f.registrations {
		all = append(all, registration)
	}

	return all, nil
}

func (f *fakeRegistrationRepo) FindByLane(_ context.Context, startbahn int, roundID uint) (domain.BeerRegistration, error) {
	for _, registration := range f.registrations {
		if registration.Startbahn == startbahn && registration.RoundID == roundID {
			return registration, nil
		}
	}

	return domain.BeerRegistration{}, repository.ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) Update(_ context.Context, registration domain.BeerRegistration) (domain.BeerRegistration, error) {
	if _, ok := f.registrations[registration.BeerID]; !ok {
		return domain.BeerRegistration{}, repository.ErrRegistrationNotFound
	}

	f.registrations[registration.BeerID] = registration

	return registration, nil
}

func (f *fakeRegistrationRepo) DeleteByBeerID(_ context.Context, beerID string) error {
	if _, ok := f.registrations[beerID]; !ok {
		return repository.ErrRegistrationNotFound
	}

	delete(f.registrations, beerID)

	return nil
}

func (f *fakeRegistrationRepo) UpsertStartbahnConfig(_ context.Context, config domain.StartbahnConfig) (domain.StartbahnConfig, error) {
	f.configs[config.Startbahn] = config
	return config, nil
}

func (f *fakeRegistrationRepo) FindStartbahnConfigs(_ context.Context) ([]domain.StartbahnConfig, error) {
	all := make([]domain.StartbahnConfig, 0, len(f.configs))
	for _, config := range f.configs {
		all = append(all, config)
	}

	return all, nil
}

func (f *fakeRegistrationRepo) DeleteStartbahnConfig(_ context.Context, startbahn int) error {
	delete(f.configs, startbahn)
	return nil
}

type fakeSettingsRepo struct {
	settings domain.CompetitionSettings
}

func newFakeSettingsRepo(votingEnabled bool, startbahnCount int) *fakeSettingsRepo {
	return &fakeSettingsRepo{
		settings: domain.CompetitionSettings{
			ID:             1,
			VotingEnabled:  votingEnabled,
			StartbahnCount: startbahnCount,
		},
	}
}

func (f *fakeSettingsRepo) Get(_ context.Context) (domain.CompetitionSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, update domain.SettingsUpdate) (domain.CompetitionSettings, error) {
	if update.VotingEnabled != nil {
		f.settings.VotingEnabled = *update.VotingEnabled
	}
	if update.StartbahnCount != nil {
		f.settings.StartbahnCount = *update.StartbahnCount
	}

	return f.settings, nil
}

type fakeCatalog struct {
	beers []domain.Beer
	err   error
}

func (f *fakeCatalog) Beers(_ context.Context) ([]domain.Beer, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.beers, nil
}
