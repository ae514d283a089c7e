package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/model"
)

// Seed installs demo users when the directory is empty: two public sample
// members and the reserved administrator account.
type Seed struct {
	userStore  model.UserStore
	adminEmail string
	logger     *logger.Logger
}

func NewSeed(userStore model.UserStore, adminEmail string, logger *logger.Logger) *Seed {
	return &Seed{
		userStore:  userStore,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Run seeds the directory if and only if it holds no users.
func (s *Seed) Run(ctx context.Context) error {
	count, err := s.userStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Seed service: directory not empty, skipping",
			"users", count)
		return nil
	}

	now := time.Now()
	users := []model.User{
		{
			ID:            uuid.New(),
			Name:          "Alice Johnson",
			Email:         "alice@example.com",
			Location:      "New York, NY",
			IsPublic:      true,
			SkillsOffered: []string{"React", "JavaScript", "Node.js"},
			SkillsWanted:  []string{"Python", "Machine Learning", "Data Science"},
			Availability:  []string{"Weekends", "Evenings"},
			JoinDate:      now,
			Rating:        4.8,
			TotalSwaps:    12,
		},
		{
			ID:            uuid.New(),
			Name:          "Bob Smith",
			Email:         "bob@example.com",
			Location:      "San Francisco, CA",
			IsPublic:      true,
			SkillsOffered: []string{"Python", "Data Science", "Machine Learning"},
			SkillsWanted:  []string{"React", "Frontend Development"},
			Availability:  []string{"Weekdays", "Mornings"},
			JoinDate:      now,
			Rating:        4.9,
			TotalSwaps:    8,
		},
		{
			ID:            uuid.New(),
			Name:          "Admin User",
			Email:         s.adminEmail,
			IsPublic:      false,
			SkillsOffered: []string{},
			SkillsWanted:  []string{},
			Availability:  []string{},
			JoinDate:      now,
			Rating:        model.DefaultRating,
			TotalSwaps:    0,
		},
	}

	for _, user := range users {
		if _, err := s.userStore.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Email, err)
		}
	}

	s.logger.Info("Seed service: demo data installed",
		"users", len(users))

	return nil
}
