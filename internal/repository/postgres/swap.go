package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillswap/skillswap-server/internal/model"
)

var _ model.SwapRequestStore = (*SwapRequestRepository)(nil)

const swapColumns = `id, from_user_id, to_user_id, skill_offered, skill_requested, message, status, created_at, completed_at`

type SwapRequestRepository struct {
	db *Connection
}

func NewSwapRequestRepository(db *Connection) *SwapRequestRepository {
	return &SwapRequestRepository{
		db: db,
	}
}

func scanSwapRequest(row pgx.Row) (model.SwapRequest, error) {
	var request model.SwapRequest
	err := row.Scan(
		&request.ID, &request.FromUserID, &request.ToUserID,
		&request.SkillOffered, &request.SkillRequested, &request.Message,
		&request.Status, &request.CreatedAt, &request.CompletedAt,
	)
	return request, err
}

func scanSwapRequests(rows pgx.Rows) ([]model.SwapRequest, error) {
	defer rows.Close()

	var requests []model.SwapRequest
	for rows.Next() {
		request, err := scanSwapRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan swap request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate swap request rows: %w", err)
	}

	return requests, nil
}

func (r *SwapRequestRepository) Create(ctx context.Context, request model.SwapRequest) (model.SwapRequest, error) {
	query := `INSERT INTO swap_requests (` + swapColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + swapColumns

	savedRequest, err := scanSwapRequest(r.db.QueryRow(ctx, query,
		request.ID, request.FromUserID, request.ToUserID,
		request.SkillOffered, request.SkillRequested, request.Message,
		request.Status, request.CreatedAt, request.CompletedAt,
	))
	if err != nil {
		return model.SwapRequest{}, fmt.Errorf("failed to create swap request: %w", err)
	}

	return savedRequest, nil
}

func (r *SwapRequestRepository) GetByID(ctx context.Context, id int64) (model.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = $1`

	request, err := scanSwapRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SwapRequest{}, model.ErrNotFound
		}
		return model.SwapRequest{}, fmt.Errorf("failed to get swap request by id: %w", err)
	}

	return request, nil
}

func (r *SwapRequestRepository) Update(ctx context.Context, request model.SwapRequest) (model.SwapRequest, error) {
	query := `UPDATE swap_requests
			  SET status = $2, completed_at = $3
			  WHERE id = $1
			  RETURNING ` + swapColumns

	savedRequest, err := scanSwapRequest(r.db.QueryRow(ctx, query,
		request.ID, request.Status, request.CompletedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SwapRequest{}, model.ErrNotFound
		}
		return model.SwapRequest{}, fmt.Errorf("failed to update swap request: %w", err)
	}

	return savedRequest, nil
}

func (r *SwapRequestRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM swap_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete swap request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *SwapRequestRepository) ListByFromUser(ctx context.Context, userID uuid.UUID) ([]model.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE from_user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent swap requests: %w", err)
	}

	return scanSwapRequests(rows)
}

func (r *SwapRequestRepository) ListByToUser(ctx context.Context, userID uuid.UUID) ([]model.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE to_user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received swap requests: %w", err)
	}

	return scanSwapRequests(rows)
}

func (r *SwapRequestRepository) ListRecent(ctx context.Context, limit int) ([]model.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests ORDER BY id DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent swap requests: %w", err)
	}

	return scanSwapRequests(rows)
}

func (r *SwapRequestRepository) CountByStatus(ctx context.Context, status model.SwapStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM swap_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count swap requests: %w", err)
	}

	return count, nil
}
