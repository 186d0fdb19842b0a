package domain

import "errors"

var ErrTokenExpired = errors.New("session token expired")
var ErrTokenInvalid = errors.New("session token invalid")
var ErrForbidden = errors.New("access forbidden")

// Identity is the per-request authentication context derived from the
// session token. It is rebuilt on every request and never persisted.
type Identity struct {
	LoggedIn  bool
	AccountID string
	FirstName string
	Role      string
}

// CanManageInventory reports whether the identity may reach employee-only
// inventory management views. Employee and Admin both qualify.
func (i Identity) CanManageInventory() bool {
	return i.LoggedIn && (i.Role == RoleEmployee || i.Role == RoleAdmin)
}

// IsAdmin reports whether the identity carries the Admin role.
func (i Identity) IsAdmin() bool {
	return i.LoggedIn && i.Role == RoleAdmin
}
