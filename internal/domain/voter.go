package domain

import "time"

// Voter is an issued voter identity. The ID doubles as the opaque token
// printed on the QR card handed out at the entrance.
type Voter struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
