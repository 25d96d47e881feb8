package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user exists for the requested id.
	ErrNotFound = errors.New("user not found")

	// ErrEmailInUse is returned when creating a user with an already
	// registered email address.
	ErrEmailInUse = errors.New("email already in use")
)

// User is an account in the directory. Agents on transactions reference
// users by id only.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Basic is the id and display name slice of a user used for bulk lookups.
type Basic struct {
	ID   uuid.UUID
	Name string
}
