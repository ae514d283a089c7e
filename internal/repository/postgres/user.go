package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skillswap/skillswap-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, email, location, is_public, skills_offered, skills_wanted, availability, join_date, rating, total_swaps`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Location, &user.IsPublic,
		&user.SkillsOffered, &user.SkillsWanted, &user.Availability,
		&user.JoinDate, &user.Rating, &user.TotalSwaps,
	)
	return user, err
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Location, user.IsPublic,
		user.SkillsOffered, user.SkillsWanted, user.Availability,
		user.JoinDate, user.Rating, user.TotalSwaps,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users
			  SET name = $2, location = $3, is_public = $4,
				  skills_offered = $5, skills_wanted = $6, availability = $7
			  WHERE id = $1
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Location, user.IsPublic,
		user.SkillsOffered, user.SkillsWanted, user.Availability,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY join_date, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return scanUsers(rows)
}

func (r *UserRepository) ListPublic(ctx context.Context, excluding uuid.UUID) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE is_public AND id <> $1
			  ORDER BY join_date, id`

	rows, err := r.db.Query(ctx, query, excluding)
	if err != nil {
		return nil, fmt.Errorf("failed to list public users: %w", err)
	}

	return scanUsers(rows)
}

// likeEscaper neutralizes LIKE metacharacters so the term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *UserRepository) SearchBySkill(ctx context.Context, term string) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE is_public AND EXISTS (
				  SELECT 1 FROM unnest(skills_offered) AS skill
				  WHERE skill ILIKE '%' || $1 || '%'
			  )
			  ORDER BY join_date, id`

	rows, err := r.db.Query(ctx, query, likeEscaper.Replace(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search users by skill: %w", err)
	}

	return scanUsers(rows)
}

func (r *UserRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return fmt.Errorf("failed to update user rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) IncrementTotalSwaps(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET total_swaps = total_swaps + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment total swaps: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func (r *UserRepository) CountExcluding(ctx context.Context, email string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email <> $1`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
