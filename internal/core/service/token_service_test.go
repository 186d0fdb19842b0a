package service

import (
	"testing"
	"time"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	in := ports.TokenClaims{AccountID: "acc_1", FirstName: "Alice", Role: domain.RoleClient}
	token, err := svc.Issue(in)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	out, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if *out != in {
		t.Fatalf("claims mismatch: got %+v, want %+v", *out, in)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Issue(ports.TokenClaims{AccountID: "acc_1", FirstName: "Alice", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.TokenClaims{AccountID: "acc_1", FirstName: "Alice", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flipping any single byte must never verify.
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if _, err := svc.Verify(string(mutated)); err == nil {
			t.Fatalf("tampered token at byte %d verified successfully", i)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other", time.Hour)

	token, err := issuer.Issue(ports.TokenClaims{AccountID: "acc_1", FirstName: "Alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}
