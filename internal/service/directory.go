package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/model"
)

// Directory owns user discovery: search, browse and lookup.
type Directory struct {
	userStore  model.UserStore
	adminEmail string
	logger     *logger.Logger
}

func NewDirectory(userStore model.UserStore, adminEmail string, logger *logger.Logger) *Directory {
	return &Directory{
		userStore:  userStore,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// SearchBySkill returns public users offering a skill that contains term,
// case-insensitively. The empty-term fallback is the caller's concern; use
// Browse for the conventional one.
func (s *Directory) SearchBySkill(ctx context.Context, term string) ([]model.User, error) {
	users, err := s.userStore.SearchBySkill(ctx, term)
	if err != nil {
		s.logger.Error("Directory service: skill search failed",
			"term", term,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search users by skill: %w", err)
	}

	return users, nil
}

// GetByID returns the user or model.ErrNotFound.
func (s *Directory) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// ListPublic returns all public users other than excluding.
func (s *Directory) ListPublic(ctx context.Context, excluding uuid.UUID) ([]model.User, error) {
	users, err := s.userStore.ListPublic(ctx, excluding)
	if err != nil {
		return nil, fmt.Errorf("failed to list public users: %w", err)
	}

	return users, nil
}

// Browse is the default discovery view: skill search when term is set,
// otherwise all public users except the caller.
func (s *Directory) Browse(ctx context.Context, excluding uuid.UUID, term string) ([]model.User, error) {
	if term == "" {
		return s.ListPublic(ctx, excluding)
	}
	return s.SearchBySkill(ctx, term)
}

// ListAll returns every user except the reserved administrator account.
// Used by the admin overview.
func (s *Directory) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	filtered := users[:0]
	for _, user := range users {
		if user.Email != s.adminEmail {
			filtered = append(filtered, user)
		}
	}

	return filtered, nil
}
