package model

import "time"

// User is an account in the user directory. Registration and token
// issuance happen out of band; this service only reads the directory.
type User struct {
	ID        string // uuid
	Email     string
	Name      string
	CreatedAt time.Time
}
