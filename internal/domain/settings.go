package domain

// CompetitionSettings is the singleton competition configuration row.
// VotingEnabled gates every vote attempt; StartbahnCount bounds the valid
// lane numbers at check-in time.
type CompetitionSettings struct {
	ID             uint `json:"id"`
	VotingEnabled  bool `json:"voting_enabled"`
	StartbahnCount int  `json:"startbahn_count"`
}

// SettingsUpdate is a partial settings change. Nil fields keep the
// current value.
type SettingsUpdate struct {
	VotingEnabled  *bool `json:"voting_enabled"`
	StartbahnCount *int  `json:"startbahn_count"`
}
