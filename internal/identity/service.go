package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Service manages accounts and profile reads and writes.
type Service struct {
	repo   Repository
	hasher *PasswordHasher
	cache  *ProfileCache
	logger *slog.Logger
}

// NewService creates a new identity service. cache may be nil.
func NewService(repo Repository, hasher *PasswordHasher, cache *ProfileCache, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, cache: cache, logger: logger}
}

// Register creates an account and stores only a bcrypt hash of the password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Address:      in.Address,
		Mobile:       in.Mobile,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, err
		}
		return User{}, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return user, nil
}

// Profile returns the current stored profile for id, consulting the cache first.
func (s *Service) Profile(ctx context.Context, id int64) (Profile, error) {
	if p, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn("profile cache read failed", slog.Int64("user_id", id), slog.Any("error", err))
	} else if ok {
		return p, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, err
		}
		return Profile{}, fmt.Errorf("%w: %v", ErrBackend, err)
	}

	p := user.Profile()
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("profile cache write failed", slog.Int64("user_id", id), slog.Any("error", err))
	}
	return p, nil
}

// UpdateProfile applies the present fields of upd to the user's row. An
// update without fields is rejected before storage is touched.
func (s *Service) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) error {
	if upd.Empty() {
		return ErrNoFieldsProvided
	}

	if err := s.repo.UpdateProfile(ctx, id, upd); err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmailTaken), errors.Is(err, ErrNoFieldsProvided):
			return err
		default:
			return fmt.Errorf("%w: %v", ErrBackend, err)
		}
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("profile cache invalidation failed", slog.Int64("user_id", id), slog.Any("error", err))
	}
	return nil
}
