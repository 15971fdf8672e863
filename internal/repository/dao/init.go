package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Organizer{},
		&Voter{},
		&Round{},
		&BeerRegistration{},
		&Vote{},
		&CompetitionSettings{},
		&StartbahnConfig{},
	)
}
