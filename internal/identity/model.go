package identity

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another account already uses the email address.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoFieldsProvided is returned when a profile update carries no field to change.
	ErrNoFieldsProvided = errors.New("no fields provided for update")

	// ErrBackend wraps storage failures so callers never see driver text.
	ErrBackend = errors.New("user store unavailable")
)

// User is a registered shopper. PasswordHash holds a bcrypt hash, never the secret.
type User struct {
	ID             int64
	Email          string
	PasswordHash   []byte
	Firstname      string
	Lastname       string
	Address        string
	Mobile         string
	DateOfCreation time.Time
}

// Profile is the public view of a User.
type Profile struct {
	ID             int64     `json:"id"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Mobile         string    `json:"mobile"`
	DateOfCreation time.Time `json:"dateOfCreation"`
}

// Profile strips credentials from the user record.
func (u User) Profile() Profile {
	return Profile{
		ID:             u.ID,
		Firstname:      u.Firstname,
		Lastname:       u.Lastname,
		Email:          u.Email,
		Address:        u.Address,
		Mobile:         u.Mobile,
		DateOfCreation: u.DateOfCreation,
	}
}

// RegisterInput carries the data needed to open an account.
type RegisterInput struct {
	Email     string
	Password  string
	Firstname string
	Lastname  string
	Address   string
	Mobile    string
}
