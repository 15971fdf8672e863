package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hbcon/festvote/internal/domain"
)

type RoundRepository interface {
	Create(ctx context.Context, round domain.Round) (domain.Round, error)
	FindByID(ctx context.Context, id uint) (domain.Round, error)
	FindAll(ctx context.Context) ([]domain.Round, error)
	FindActive(ctx context.Context) (domain.Round, error)
	Activate(ctx context.Context, id uint) error
}

// BeerCatalog looks up competition entries in the external submission
// system.
type BeerCatalog interface {
	Beers(ctx context.Context) ([]domain.Beer, error)
}

// TallyService derives scores, percentages and ranks from the vote ledger.
// Nothing is stored: every query recomputes from the ledger joined against
// the rounds' current registration sets, so votes for beers that were moved
// or unregistered (orphans) drop out naturally.
type TallyService struct {
	votes         VoteRepository
	registrations RegistrationRepository
	rounds        RoundRepository
	catalog       BeerCatalog
}

func NewTallyService(
	votes VoteRepository,
	registrations RegistrationRepository,
	rounds RoundRepository,
	catalog BeerCatalog,
) *TallyService {
	return &TallyService{
		votes:         votes,
		registrations: registrations,
		rounds:        rounds,
		catalog:       catalog,
	}
}

// RoundStandings tallies one round for one category. Registered beers with
// zero votes are included with score and percentage 0.
func (s *TallyService) RoundStandings(ctx context.Context, roundID uint, voteType domain.VoteType) ([]domain.RoundStanding, error) {
	if _, err := s.rounds.FindByID(ctx, roundID); err != nil {
		return nil, fmt.Errorf("s.rounds.FindByID -> %w", err)
	}

	registrations, err := s.registrations.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("s.registrations.FindByRoundID -> %w", err)
	}

	votes, err := s.votes.FindByRoundID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("s.votes.FindByRoundID -> %w", err)
	}

	return buildStandings(registrations, votes, voteType), nil
}

// OverallLeaderboard merges every round's standings into one ranking by
// in-round percentage, which keeps rounds of different sizes comparable.
func (s *TallyService) OverallLeaderboard(ctx context.Context, voteType domain.VoteType) ([]domain.LeaderboardEntry, error) {
	rounds, err := s.rounds.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.rounds.FindAll -> %w", err)
	}

	var entries []leaderboardEntry
	for _, round := range rounds {
		registrations, err := s.registrations.FindByRoundID(ctx, round.ID)
		if err != nil {
			return nil, fmt.Errorf("s.registrations.FindByRoundID -> %w", err)
		}

		votes, err := s.votes.FindByRoundID(ctx, round.ID)
		if err != nil {
			return nil, fmt.Errorf("s.votes.FindByRoundID -> %w", err)
		}

		for _, standing := range buildStandings(registrations, votes, voteType) {
			entries = append(entries, leaderboardEntry{
				beerID:     standing.BeerID,
				roundID:    round.ID,
				startbahn:  standing.Startbahn,
				percentage: standing.Percentage,
			})
		}
	}

	sortLeaderboard(entries)

	result := make([]domain.LeaderboardEntry, len(entries))
	for i, entry := range entries {
		result[i] = domain.LeaderboardEntry{
			BeerID:      entry.beerID,
			RoundID:     entry.roundID,
			Percentage:  entry.percentage,
			OverallRank: i + 1,
		}
	}

	return result, nil
}

// BeerVoteTable returns every catalog beer with its total raw vote count,
// sorted by votes descending, for the admin live table.
func (s *TallyService) BeerVoteTable(ctx context.Context) ([]domain.BeerVoteCount, error) {
	votes, err := s.votes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.votes.FindAll -> %w", err)
	}

	counts := make(map[string]int)
	for _, vote := range votes {
		if vote.VoteType == domain.VoteTypeBestBeer {
			counts[vote.BeerID]++
		}
	}

	beers, err := s.catalog.Beers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.Beers -> %w", err)
	}

	table := make([]domain.BeerVoteCount, len(beers))
	for i, beer := range beers {
		table[i] = domain.BeerVoteCount{
			BeerID: beer.BeerID,
			Name:   beer.Name,
			Brewer: beer.Brewer,
			Style:  beer.Style,
			Votes:  counts[beer.BeerID],
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Votes != table[j].Votes {
			return table[i].Votes > table[j].Votes
		}

		return table[i].Name < table[j].Name
	})

	return table, nil
}

// ExportResults builds the full results document: both categories' in-round
// and overall placements for every currently registered beer, joined with
// catalog data. Beers that disappeared from the catalog render a
// placeholder entry instead of being dropped.
func (s *TallyService) ExportResults(ctx context.Context) (domain.ResultsExport, error) {
	rounds, err := s.rounds.FindAll(ctx)
	if err != nil {
		return domain.ResultsExport{}, fmt.Errorf("s.rounds.FindAll -> %w", err)
	}

	registrations, err := s.registrations.FindAll(ctx)
	if err != nil {
		return domain.ResultsExport{}, fmt.Errorf("s.registrations.FindAll -> %w", err)
	}

	votes, err := s.votes.FindAll(ctx)
	if err != nil {
		return domain.ResultsExport{}, fmt.Errorf("s.votes.FindAll -> %w", err)
	}

	beers, err := s.catalog.Beers(ctx)
	if err != nil {
		return domain.ResultsExport{}, fmt.Errorf("s.catalog.Beers -> %w", err)
	}

	beerByID := make(map[string]domain.Beer, len(beers))
	for _, beer := range beers {
		beerByID[beer.BeerID] = beer
	}

	roundByID := make(map[uint]domain.Round, len(rounds))
	for _, round := range rounds {
		roundByID[round.ID] = round
	}

	registrationsByRound := make(map[uint][]domain.BeerRegistration)
	votesByRound := make(map[uint][]domain.Vote)
	for _, registration := range registrations {
		registrationsByRound[registration.RoundID] = append(registrationsByRound[registration.RoundID], registration)
	}
	for _, vote := range votes {
		votesByRound[vote.RoundID] = append(votesByRound[vote.RoundID], vote)
	}

	var results []domain.BeerResult
	for _, round := range rounds {
		roundRegistrations := registrationsByRound[round.ID]
		roundVotes := votesByRound[round.ID]

		primary := buildStandings(roundRegistrations, roundVotes, domain.VoteTypeBestBeer)
		presentation := buildStandings(roundRegistrations, roundVotes, domain.VoteTypeBestPresentation)

		presentationByBeer := make(map[string]domain.RoundStanding, len(presentation))
		for _, standing := range presentation {
			presentationByBeer[standing.BeerID] = standing
		}

		registrationByBeer := make(map[string]domain.BeerRegistration, len(roundRegistrations))
		for _, registration := range roundRegistrations {
			registrationByBeer[registration.BeerID] = registration
		}

		for _, standing := range primary {
			registration := registrationByBeer[standing.BeerID]
			pres := presentationByBeer[standing.BeerID]

			beer, ok := beerByID[standing.BeerID]
			if !ok {
				beer = placeholderBeer(standing.BeerID)
			}

			results = append(results, domain.BeerResult{
				UserID:         beer.UserID,
				SubmissionID:   standing.BeerID,
				BeerName:       beer.Name,
				Brewer:         beer.Brewer,
				Style:          beer.Style,
				Startbahn:      registration.Startbahn,
				Reinheitsgebot: registration.Reinheitsgebot,
				RoundID:        round.ID,
				RoundName:      roundByID[round.ID].Name,

				PrimaryWeightedVotes:     standing.WeightedScore,
				PrimaryRawVotes:          standing.RawCount,
				PrimaryPercentageInRound: standing.Percentage,
				PrimaryPlaceInRound:      standing.RankInRound,

				PresentationVotes:             pres.RawCount,
				PresentationPercentageInRound: pres.Percentage,
				PresentationPlaceInRound:      pres.RankInRound,
			})
		}
	}

	assignOverallPlaces(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PrimaryPlaceOverall < results[j].PrimaryPlaceOverall
	})

	return domain.ResultsExport{
		GeneratedAt:      time.Now().UTC(),
		TotalSubmissions: len(results),
		Results:          results,
	}, nil
}

type beerScore struct {
	weighted float64
	raw      int
}

// computeScores aggregates one round's votes of a single category into
// per-beer scores. Votes for beers without a current registration in the
// round are skipped (orphan filtering). For the best-beer category each of
// a voter's votes weighs 1/n where n is that voter's vote count in the
// round, so every voter contributes a total weight of exactly 1.
// Presentation votes always weigh 1.
func computeScores(votes []domain.Vote, registered map[string]bool, voteType domain.VoteType) map[string]beerScore {
	scores := make(map[string]beerScore)

	if voteType == domain.VoteTypeBestPresentation {
		for _, vote := range votes {
			if vote.VoteType != domain.VoteTypeBestPresentation || !registered[vote.BeerID] {
				continue
			}

			score := scores[vote.BeerID]
			score.weighted++
			score.raw++
			scores[vote.BeerID] = score
		}

		return scores
	}

	beersByVoter := make(map[string][]string)
	for _, vote := range votes {
		if vote.VoteType != domain.VoteTypeBestBeer || !registered[vote.BeerID] {
			continue
		}
		beersByVoter[vote.VoterID] = append(beersByVoter[vote.VoterID], vote.BeerID)
	}

	for _, beerIDs := range beersByVoter {
		weight := 1 / float64(len(beerIDs))
		for _, beerID := range beerIDs {
			score := scores[beerID]
			score.weighted += weight
			score.raw++
			scores[beerID] = score
		}
	}

	return scores
}

// buildStandings turns one round's registrations and votes into ranked
// standings for a category. Ties are broken deterministically by lane
// number, then beer id.
func buildStandings(registrations []domain.BeerRegistration, votes []domain.Vote, voteType domain.VoteType) []domain.RoundStanding {
	registered := make(map[string]bool, len(registrations))
	for _, registration := range registrations {
		registered[registration.BeerID] = true
	}

	scores := computeScores(votes, registered, voteType)

	var total float64
	for _, score := range scores {
		total += score.weighted
	}

	standings := make([]domain.RoundStanding, len(registrations))
	for i, registration := range registrations {
		score := scores[registration.BeerID]

		percentage := 0.0
		if total > 0 {
			percentage = round2(100 * score.weighted / total)
		}

		standings[i] = domain.RoundStanding{
			BeerID:        registration.BeerID,
			Startbahn:     registration.Startbahn,
			WeightedScore: round2(score.weighted),
			RawCount:      score.raw,
			Percentage:    percentage,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WeightedScore != standings[j].WeightedScore {
			return standings[i].WeightedScore > standings[j].WeightedScore
		}
		if standings[i].Startbahn != standings[j].Startbahn {
			return standings[i].Startbahn < standings[j].Startbahn
		}

		return standings[i].BeerID < standings[j].BeerID
	})

	for i := range standings {
		standings[i].RankInRound = i + 1
	}

	return standings
}

type leaderboardEntry struct {
	beerID     string
	roundID    uint
	startbahn  int
	percentage float64
}

func sortLeaderboard(entries []leaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].percentage != entries[j].percentage {
			return entries[i].percentage > entries[j].percentage
		}
		if entries[i].roundID != entries[j].roundID {
			return entries[i].roundID < entries[j].roundID
		}
		if entries[i].startbahn != entries[j].startbahn {
			return entries[i].startbahn < entries[j].startbahn
		}

		return entries[i].beerID < entries[j].beerID
	})
}

// assignOverallPlaces ranks all rounds' results against each other by
// in-round percentage, independently for both categories.
func assignOverallPlaces(results []domain.BeerResult) {
	byPrimary := make([]*domain.BeerResult, len(results))
	byPresentation := make([]*domain.BeerResult, len(results))
	for i := range results {
		byPrimary[i] = &results[i]
		byPresentation[i] = &results[i]
	}

	sort.SliceStable(byPrimary, func(i, j int) bool {
		if byPrimary[i].PrimaryPercentageInRound != byPrimary[j].PrimaryPercentageInRound {
			return byPrimary[i].PrimaryPercentageInRound > byPrimary[j].PrimaryPercentageInRound
		}
		if byPrimary[i].Startbahn != byPrimary[j].Startbahn {
			return byPrimary[i].Startbahn < byPrimary[j].Startbahn
		}

		return byPrimary[i].SubmissionID < byPrimary[j].SubmissionID
	})
	for i, result := range byPrimary {
		result.PrimaryPlaceOverall = i + 1
	}

	sort.SliceStable(byPresentation, func(i, j int) bool {
		if byPresentation[i].PresentationPercentageInRound != byPresentation[j].PresentationPercentageInRound {
			return byPresentation[i].PresentationPercentageInRound > byPresentation[j].PresentationPercentageInRound
		}
		if byPresentation[i].Startbahn != byPresentation[j].Startbahn {
			return byPresentation[i].Startbahn < byPresentation[j].Startbahn
		}

		return byPresentation[i].SubmissionID < byPresentation[j].SubmissionID
	})
	for i, result := range byPresentation {
		result.PresentationPlaceOverall = i + 1
	}
}

func placeholderBeer(beerID string) domain.Beer {
	short := beerID
	if len(short) > 8 {
		short = short[:8]
	}

	return domain.Beer{
		BeerID: beerID,
		UserID: "unknown",
		Name:   fmt.Sprintf("[Deleted Beer: %s...]", short),
		Brewer: "Unknown",
		Style:  "Unknown",
	}
}

// round2 rounds half up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
