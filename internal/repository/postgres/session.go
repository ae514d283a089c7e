package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillswap/skillswap-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository stores the single current session. The user record is
// joined on read so the session never serves a stale profile copy.
type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Set(ctx context.Context, session model.Session) error {
	query := `INSERT INTO current_session (singleton, user_id, is_admin, created_at)
			  VALUES (TRUE, $1, $2, $3)
			  ON CONFLICT (singleton) DO UPDATE
			  SET user_id = EXCLUDED.user_id,
				  is_admin = EXCLUDED.is_admin,
				  created_at = EXCLUDED.created_at`

	_, err := r.db.Exec(ctx, query, session.User.ID, session.IsAdmin, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context) (model.Session, error) {
	query := `SELECT u.id, u.name, u.email, u.location, u.is_public,
					 u.skills_offered, u.skills_wanted, u.availability,
					 u.join_date, u.rating, u.total_swaps,
					 s.is_admin, s.created_at
			  FROM current_session s
			  JOIN users u ON u.id = s.user_id`

	var session model.Session
	err := r.db.QueryRow(ctx, query).Scan(
		&session.User.ID, &session.User.Name, &session.User.Email,
		&session.User.Location, &session.User.IsPublic,
		&session.User.SkillsOffered, &session.User.SkillsWanted,
		&session.User.Availability, &session.User.JoinDate,
		&session.User.Rating, &session.User.TotalSwaps,
		&session.IsAdmin, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM current_session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
