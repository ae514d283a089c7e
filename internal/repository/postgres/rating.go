package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-server/internal/model"
)

var _ model.RatingStore = (*RatingRepository)(nil)

const ratingColumns = `id, from_user_id, to_user_id, swap_request_id, rating, feedback, created_at`

type RatingRepository struct {
	db *Connection
}

func NewRatingRepository(db *Connection) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating model.Rating) (model.Rating, error) {
	query := `INSERT INTO ratings (` + ratingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + ratingColumns

	var savedRating model.Rating
	err := r.db.QueryRow(ctx, query,
		rating.ID, rating.FromUserID, rating.ToUserID, rating.SwapRequestID,
		rating.Rating, rating.Feedback, rating.CreatedAt,
	).Scan(
		&savedRating.ID, &savedRating.FromUserID, &savedRating.ToUserID,
		&savedRating.SwapRequestID, &savedRating.Rating, &savedRating.Feedback,
		&savedRating.CreatedAt,
	)
	if err != nil {
		return model.Rating{}, fmt.Errorf("failed to create rating: %w", err)
	}

	return savedRating, nil
}

func (r *RatingRepository) ListByToUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE to_user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var rating model.Rating
		err := rows.Scan(
			&rating.ID, &rating.FromUserID, &rating.ToUserID,
			&rating.SwapRequestID, &rating.Rating, &rating.Feedback,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (r *RatingRepository) Average(ctx context.Context) (float64, error) {
	var average float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(rating), $1) FROM ratings`, model.DefaultRating).Scan(&average)
	if err != nil {
		return 0, fmt.Errorf("failed to average ratings: %w", err)
	}

	return average, nil
}
