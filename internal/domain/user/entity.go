package user

import "time"

// User represents a user entity in the system.
type User struct {
	ID        int64     // unique identifier, server-generated, never reused
	Name      string    // full name
	Email     string    // unique email address
	CreatedAt time.Time // set by the storage layer at insertion
}
