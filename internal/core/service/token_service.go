package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the JWT payload for a session token.
type sessionClaims struct {
	AccountID string `json:"account_id"`
	FirstName string `json:"first_name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the claims, valid for the
// configured window from now.
func (s *TokenService) Issue(claims ports.TokenClaims) (string, error) {
	now := time.Now()
	payload := sessionClaims{
		AccountID: claims.AccountID,
		FirstName: claims.FirstName,
		Role:      claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry. Expiry is reported as
// domain.ErrTokenExpired; every other failure (bad signature, malformed
// payload, wrong algorithm) collapses to domain.ErrTokenInvalid so callers
// never partially trust a token.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	var payload sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenClaims{
		AccountID: payload.AccountID,
		FirstName: payload.FirstName,
		Role:      payload.Role,
	}, nil
}
