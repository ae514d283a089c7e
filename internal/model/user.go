package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultRating is assigned to users with no received ratings.
const DefaultRating = 5.0

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) (User, error)
	List(ctx context.Context) ([]User, error)
	ListPublic(ctx context.Context, excluding uuid.UUID) ([]User, error)
	SearchBySkill(ctx context.Context, term string) ([]User, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
	IncrementTotalSwaps(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountExcluding(ctx context.Context, email string) (int, error)
}

// User represents a marketplace member and their skill listings.
type User struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Location      string
	IsPublic      bool
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	JoinDate      time.Time
	Rating        float64
	TotalSwaps    int
}

// OffersSkill reports whether the user lists skill among their offered skills.
func (u User) OffersSkill(skill string) bool {
	for _, s := range u.SkillsOffered {
		if s == skill {
			return true
		}
	}
	return false
}
