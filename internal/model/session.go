package model

import (
	"context"
	"time"
)

// SessionStore persists the single active session so it survives restarts.
type SessionStore interface {
	Set(ctx context.Context, session Session) error
	Get(ctx context.Context) (Session, error)
	Clear(ctx context.Context) error
}

// Session describes the logged-in user. There is at most one at a time;
// services receive it from Identity rather than reading ambient state.
type Session struct {
	User      User
	IsAdmin   bool
	CreatedAt time.Time
}
