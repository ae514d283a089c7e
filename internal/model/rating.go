package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RatingStore defines persistence operations for ratings.
type RatingStore interface {
	Create(ctx context.Context, rating Rating) (Rating, error)
	ListByToUser(ctx context.Context, userID uuid.UUID) ([]Rating, error)
	Average(ctx context.Context) (float64, error)
}

// Rating is feedback left for a counterpart after a swap. SwapRequestID is a
// provenance link only; multiple ratings may reference the same request.
type Rating struct {
	ID            uuid.UUID
	FromUserID    uuid.UUID
	ToUserID      uuid.UUID
	SwapRequestID int64
	Rating        int
	Feedback      string
	CreatedAt     time.Time
}
