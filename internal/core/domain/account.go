package domain

import (
	"errors"
	"time"
)

const (
	RoleClient   = "Client"
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email address already in use")
var ErrInvalidCredentials = errors.New("invalid email or password")

// Account models a registered user of the site.
type Account struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleClient || r == RoleEmployee || r == RoleAdmin
}
