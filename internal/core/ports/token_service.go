package ports

// TokenClaims are the identity fields embedded in a session token. Once
// issued, claims are immutable for the token's lifetime; an account mutation
// that changes an embedded field requires re-issuance.
type TokenClaims struct {
	AccountID string
	FirstName string
	Role      string
}

// TokenService issues and verifies signed, time-limited session tokens.
// It is stateless: a pure function of the signing secret.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	// Verify checks signature and expiry. It returns domain.ErrTokenExpired
	// when the token is past its expiry and domain.ErrTokenInvalid for any
	// other failure. A failed verification never yields partial claims.
	Verify(token string) (*TokenClaims, error)
}
