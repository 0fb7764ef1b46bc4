package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopfront/shopfront/internal/identity"
)

// UserFinder looks up a user by login email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (identity.User, error)
}

// Service verifies login credentials and issues access tokens.
type Service struct {
	users     UserFinder
	hasher    *identity.PasswordHasher
	tokens    *TokenIssuer
	logger    *slog.Logger
	dummyHash []byte
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  Identity
}

// NewService builds the credential verifier. It precomputes a throwaway hash
// so that unknown emails cost the same bcrypt work as a wrong password.
func NewService(users UserFinder, hasher *identity.PasswordHasher, tokens *TokenIssuer, logger *slog.Logger) (*Service, error) {
	dummy, err := hasher.Hash("shopfront-unknown-account")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger, dummyHash: dummy}, nil
}

// Login authenticates email/password and returns a signed session token.
// Unknown email and wrong password yield the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			s.hasher.Verify(s.dummyHash, password)
			return Session{}, ErrInvalidCredentials
		}
		s.logger.Error("auth.login lookup failed", slog.Any("error", err))
		return Session{}, ErrBackendUnavailable
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	id := IdentityOf(user)
	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}
	return Session{Token: token, ExpiresAt: exp, Identity: id}, nil
}
