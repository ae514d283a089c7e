package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/model"
)

// Identity owns registration, login and the current session.
type Identity struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	adminEmail   string
	secretHash   string
	logger       *logger.Logger
}

func NewIdentity(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	adminEmail string,
	secretHash string,
	logger *logger.Logger,
) *Identity {
	return &Identity{
		userStore:    userStore,
		sessionStore: sessionStore,
		adminEmail:   adminEmail,
		secretHash:   secretHash,
		logger:       logger,
	}
}

// RegisterParams contains the profile fields a new user supplies.
type RegisterParams struct {
	Name          string
	Email         string
	Location      string
	IsPublic      bool
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
}

// Register creates a user with a fresh id, defaults the rating fields and
// establishes the new user as the current session. Email uniqueness is
// case-sensitive exact match.
func (s *Identity) Register(ctx context.Context, params RegisterParams) (model.Session, error) {
	s.logger.Debug("Identity service: registering user",
		"email", params.Email)

	existingUser, err := s.userStore.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Identity service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		s.logger.Info("Identity service: email already registered",
			"email", params.Email)
		return model.Session{}, model.ErrDuplicateEmail
	}

	user := model.User{
		ID:            uuid.New(),
		Name:          params.Name,
		Email:         params.Email,
		Location:      params.Location,
		IsPublic:      params.IsPublic,
		SkillsOffered: params.SkillsOffered,
		SkillsWanted:  params.SkillsWanted,
		Availability:  params.Availability,
		JoinDate:      time.Now(),
		Rating:        model.DefaultRating,
		TotalSwaps:    0,
	}

	user, err = s.userStore.Create(ctx, user)
	if err != nil {
		s.logger.Error("Identity service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.Session{}, err
		}
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	session := model.Session{
		User:      user,
		IsAdmin:   user.Email == s.adminEmail,
		CreatedAt: time.Now(),
	}

	if err := s.sessionStore.Set(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("failed to set session: %w", err)
	}

	s.logger.Info("Identity service: user registered",
		"email", user.Email,
		"user_id", user.ID)

	return session, nil
}

// Login verifies the password against the configured shared secret hash and
// establishes the session. The admin flag is derived from the reserved
// administrator address.
func (s *Identity) Login(ctx context.Context, email, password string) (model.Session, error) {
	s.logger.Debug("Identity service: logging in",
		"email", email)

	user, err := s.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Identity service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.secretHash), []byte(password)); err != nil {
		s.logger.Info("Identity service: password mismatch",
			"email", email)
		return model.Session{}, model.ErrInvalidCredentials
	}

	session := model.Session{
		User:      user,
		IsAdmin:   user.Email == s.adminEmail,
		CreatedAt: time.Now(),
	}

	if err := s.sessionStore.Set(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("failed to set session: %w", err)
	}

	s.logger.Info("Identity service: user logged in",
		"email", user.Email,
		"user_id", user.ID,
		"is_admin", session.IsAdmin)

	return session, nil
}

// Logout clears the current session. Idempotent.
func (s *Identity) Logout(ctx context.Context) error {
	if err := s.sessionStore.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("Identity service: session cleared")

	return nil
}

// CurrentSession restores the persisted session, if any.
func (s *Identity) CurrentSession(ctx context.Context) (model.Session, error) {
	session, err := s.sessionStore.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.ErrNoActiveSession
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// UpdateProfileParams carries the fields a user may change. Nil means leave
// the field untouched; id, email, join date and the rating counters are
// never writable through profile updates.
type UpdateProfileParams struct {
	Name          *string
	Location      *string
	IsPublic      *bool
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
}

// UpdateProfile merges the permitted fields into the logged-in user's
// directory record and refreshes the session mirror.
func (s *Identity) UpdateProfile(ctx context.Context, params UpdateProfileParams) (model.User, error) {
	session, err := s.sessionStore.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNoActiveSession
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get session: %w", err)
	}

	user := session.User
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Location != nil {
		user.Location = *params.Location
	}
	if params.IsPublic != nil {
		user.IsPublic = *params.IsPublic
	}
	if params.SkillsOffered != nil {
		user.SkillsOffered = params.SkillsOffered
	}
	if params.SkillsWanted != nil {
		user.SkillsWanted = params.SkillsWanted
	}
	if params.Availability != nil {
		user.Availability = params.Availability
	}

	user, err = s.userStore.Update(ctx, user)
	if err != nil {
		s.logger.Error("Identity service: failed to update user",
			"user_id", session.User.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	session.User = user
	if err := s.sessionStore.Set(ctx, session); err != nil {
		return model.User{}, fmt.Errorf("failed to refresh session: %w", err)
	}

	s.logger.Info("Identity service: profile updated",
		"user_id", user.ID)

	return user, nil
}
