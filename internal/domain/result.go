package domain

import "time"

// RoundStanding is one beer's tally within a single round and category.
// For the presentation category WeightedScore equals float64(RawCount).
type RoundStanding struct {
	BeerID        string  `json:"beer_id"`
	Startbahn     int     `json:"startbahn"`
	WeightedScore float64 `json:"weighted_score"`
	RawCount      int     `json:"raw_count"`
	Percentage    float64 `json:"percentage"`
	RankInRound   int     `json:"rank_in_round"`
}

// LeaderboardEntry ranks a beer across all rounds by its in-round
// percentage, which normalizes rounds of different sizes.
type LeaderboardEntry struct {
	BeerID      string  `json:"beer_id"`
	RoundID     uint    `json:"round_id"`
	Percentage  float64 `json:"percentage"`
	OverallRank int     `json:"overall_rank"`
}

// BeerResult is one row of the full results export, combining catalog data,
// check-in data and both categories' tallies.
type BeerResult struct {
	UserID         string `json:"user_id"`
	SubmissionID   string `json:"submission_id"`
	BeerName       string `json:"beer_name"`
	Brewer         string `json:"brewer"`
	Style          string `json:"style"`
	Startbahn      int    `json:"startbahn"`
	Reinheitsgebot bool   `json:"reinheitsgebot"`
	RoundID        uint   `json:"round_id"`
	RoundName      string `json:"round_name"`

	PrimaryWeightedVotes     float64 `json:"primary_weighted_votes"`
	PrimaryRawVotes          int     `json:"primary_raw_votes"`
	PrimaryPercentageInRound float64 `json:"primary_percentage_in_round"`
	PrimaryPlaceInRound      int     `json:"primary_place_in_round"`
	PrimaryPlaceOverall      int     `json:"primary_place_overall"`

	PresentationVotes             int     `json:"presentation_votes"`
	PresentationPercentageInRound float64 `json:"presentation_percentage_in_round"`
	PresentationPlaceInRound      int     `json:"presentation_place_in_round"`
	PresentationPlaceOverall      int     `json:"presentation_place_overall"`
}

// ResultsExport is the export document consumed by the festival management
// system.
type ResultsExport struct {
	GeneratedAt      time.Time    `json:"generated_at"`
	TotalSubmissions int          `json:"total_submissions"`
	Results          []BeerResult `json:"results"`
}

// BeerVoteCount is one row of the admin live table: a beer with its total
// raw best-beer vote count across all rounds.
type BeerVoteCount struct {
	BeerID string `json:"id"`
	Name   string `json:"name"`
	Brewer string `json:"brewer"`
	Style  string `json:"style"`
	Votes  int    `json:"votes"`
}
