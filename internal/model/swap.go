package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SwapRequestStore defines persistence operations for swap requests.
type SwapRequestStore interface {
	Create(ctx context.Context, request SwapRequest) (SwapRequest, error)
	GetByID(ctx context.Context, id int64) (SwapRequest, error)
	Update(ctx context.Context, request SwapRequest) (SwapRequest, error)
	Delete(ctx context.Context, id int64) error
	ListByFromUser(ctx context.Context, userID uuid.UUID) ([]SwapRequest, error)
	ListByToUser(ctx context.Context, userID uuid.UUID) ([]SwapRequest, error)
	ListRecent(ctx context.Context, limit int) ([]SwapRequest, error)
	CountByStatus(ctx context.Context, status SwapStatus) (int, error)
}

// SwapRequest is a proposal to trade one offered skill for another.
// IDs are time-derived so insertion order is recoverable from the key.
type SwapRequest struct {
	ID             int64
	FromUserID     uuid.UUID
	ToUserID       uuid.UUID
	SkillOffered   string
	SkillRequested string
	Message        string
	Status         SwapStatus
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// SwapStatus enumerates swap request lifecycle states.
type SwapStatus string

const (
	// StatusPending is the initial state of every request.
	StatusPending SwapStatus = "pending"
	// StatusAccepted means the receiver agreed to the exchange.
	StatusAccepted SwapStatus = "accepted"
	// StatusRejected is terminal, set by the receiver.
	StatusRejected SwapStatus = "rejected"
	// StatusCompleted is terminal, reachable only from accepted.
	StatusCompleted SwapStatus = "completed"
)

// statusTransitions is the permitted lifecycle graph. Absent keys are terminal.
var statusTransitions = map[SwapStatus][]SwapStatus{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusCompleted},
}

// Valid reports whether s is a known lifecycle state.
func (s SwapStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a permitted successor of s.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deletable reports whether the sender may remove a request in this state.
func (s SwapStatus) Deletable() bool {
	return s == StatusPending || s == StatusRejected
}
