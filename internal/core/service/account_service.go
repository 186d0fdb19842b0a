package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

const bcryptCost = 12

// AccountService implements registration, login and account updates.
type AccountService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService) *AccountService {
	return &AccountService{repo: repo, tokens: tokens}
}

// Register creates a Client account and issues its first session token.
// A taken email yields domain.ErrEmailTaken.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, string, error) {
	email := normalizeEmail(input.Email)

	taken, err := s.repo.EmailExists(ctx, email, "")
	if err != nil {
		return nil, "", fmt.Errorf("register: check email: %w", err)
	}
	if taken {
		return nil, "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueFor(created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password both collapse to domain.ErrInvalidCredentials so a
// caller cannot distinguish them (no account enumeration).
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueFor(account)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAccount applies a profile update and, when input.Secret is set, a
// password rotation. The session token is re-issued from the updated record
// so embedded claims never go stale.
func (s *AccountService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) (*ports.UpdateAccountResult, error) {
	email := normalizeEmail(input.Email)

	taken, err := s.repo.EmailExists(ctx, email, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("update account: check email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	updated, err := s.repo.UpdateProfile(ctx, input.AccountID,
		strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName), email)
	if err != nil {
		return nil, err
	}

	passwordChanged := false
	if input.Secret != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret.NewPassword), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("update account: hash password: %w", err)
		}
		if updated, err = s.repo.UpdatePassword(ctx, input.AccountID, string(hash)); err != nil {
			return nil, err
		}
		passwordChanged = true
	}

	token, err := s.issueFor(updated)
	if err != nil {
		return nil, err
	}

	return &ports.UpdateAccountResult{
		Account:         updated,
		Token:           token,
		PasswordChanged: passwordChanged,
	}, nil
}

func (s *AccountService) issueFor(account *domain.Account) (string, error) {
	token, err := s.tokens.Issue(ports.TokenClaims{
		AccountID: account.ID,
		FirstName: account.FirstName,
		Role:      account.Role,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
