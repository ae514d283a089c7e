package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap-server/internal/logger"
	"github.com/skillswap/skillswap-server/internal/model"
)

// overviewRecentLimit caps the recent-activity slice in the admin overview.
const overviewRecentLimit = 8

// Exchange owns the swap request lifecycle and ratings.
type Exchange struct {
	swapStore   model.SwapRequestStore
	ratingStore model.RatingStore
	userStore   model.UserStore
	adminEmail  string
	logger      *logger.Logger
	now         func() time.Time
}

func NewExchange(
	swapStore model.SwapRequestStore,
	ratingStore model.RatingStore,
	userStore model.UserStore,
	adminEmail string,
	logger *logger.Logger,
) *Exchange {
	return &Exchange{
		swapStore:   swapStore,
		ratingStore: ratingStore,
		userStore:   userStore,
		adminEmail:  adminEmail,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateRequestParams contains the fields a sender supplies for a new request.
type CreateRequestParams struct {
	FromUserID     uuid.UUID
	ToUserID       uuid.UUID
	SkillOffered   string
	SkillRequested string
	Message        string
}

// CreateRequest opens a pending request. Both participants must resolve and
// differ, the offered skill must be listed by the sender and the requested
// skill by the receiver. The id doubles as a creation-order token.
func (s *Exchange) CreateRequest(ctx context.Context, params CreateRequestParams) (model.SwapRequest, error) {
	s.logger.Debug("Exchange service: creating swap request",
		"from_user_id", params.FromUserID,
		"to_user_id", params.ToUserID)

	if params.FromUserID == params.ToUserID {
		return model.SwapRequest{}, model.ErrInvalidParticipants
	}

	sender, err := s.userStore.GetByID(ctx, params.FromUserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SwapRequest{}, model.ErrInvalidParticipants
	}
	if err != nil {
		return model.SwapRequest{}, fmt.Errorf("failed to get sender: %w", err)
	}

	receiver, err := s.userStore.GetByID(ctx, params.ToUserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SwapRequest{}, model.ErrInvalidParticipants
	}
	if err != nil {
		return model.SwapRequest{}, fmt.Errorf("failed to get receiver: %w", err)
	}

	if !sender.OffersSkill(params.SkillOffered) || !receiver.OffersSkill(params.SkillRequested) {
		return model.SwapRequest{}, model.ErrSkillNotOffered
	}

	message := params.Message
	if message == "" {
		message = fmt.Sprintf("Hi %s! I'd like to exchange %s for %s. Let's connect!",
			receiver.Name, params.SkillOffered, params.SkillRequested)
	}

	now := s.now()
	request := model.SwapRequest{
		ID:             now.UnixNano(),
		FromUserID:     params.FromUserID,
		ToUserID:       params.ToUserID,
		SkillOffered:   params.SkillOffered,
		SkillRequested: params.SkillRequested,
		Message:        message,
		Status:         model.StatusPending,
		CreatedAt:      now,
	}

	request, err = s.swapStore.Create(ctx, request)
	if err != nil {
		s.logger.Error("Exchange service: failed to create swap request",
			"from_user_id", params.FromUserID,
			"to_user_id", params.ToUserID,
			"error", err.Error())
		return model.SwapRequest{}, fmt.Errorf("failed to create swap request: %w", err)
	}

	s.logger.Info("Exchange service: swap request created",
		"request_id", request.ID,
		"from_user_id", request.FromUserID,
		"to_user_id", request.ToUserID)

	return request, nil
}

// UpdateStatus moves a request through its lifecycle. Transitions outside
// pending→accepted|rejected and accepted→completed are rejected. Completion
// stamps CompletedAt and credits a swap to both participants.
func (s *Exchange) UpdateStatus(ctx context.Context, requestID int64, newStatus model.SwapStatus) (model.SwapRequest, error) {
	s.logger.Debug("Exchange service: updating request status",
		"request_id", requestID,
		"status", newStatus)

	if !newStatus.Valid() {
		return model.SwapRequest{}, model.ErrInvalidTransition
	}

	request, err := s.swapStore.GetByID(ctx, requestID)
	if err != nil {
		return model.SwapRequest{}, err
	}

	if !request.Status.CanTransitionTo(newStatus) {
		s.logger.Info("Exchange service: transition rejected",
			"request_id", requestID,
			"from", request.Status,
			"to", newStatus)
		return model.SwapRequest{}, model.ErrInvalidTransition
	}

	request.Status = newStatus
	if newStatus == model.StatusCompleted {
		completedAt := s.now()
		request.CompletedAt = &completedAt
	}

	request, err = s.swapStore.Update(ctx, request)
	if err != nil {
		s.logger.Error("Exchange service: failed to update swap request",
			"request_id", requestID,
			"error", err.Error())
		return model.SwapRequest{}, fmt.Errorf("failed to update swap request: %w", err)
	}

	if newStatus == model.StatusCompleted {
		for _, participant := range []uuid.UUID{request.FromUserID, request.ToUserID} {
			if err := s.userStore.IncrementTotalSwaps(ctx, participant); err != nil {
				return model.SwapRequest{}, fmt.Errorf("failed to credit completed swap: %w", err)
			}
		}
	}

	s.logger.Info("Exchange service: request status updated",
		"request_id", request.ID,
		"status", request.Status)

	return request, nil
}

// DeleteRequest removes a request. Only the sender may delete, and only
// while the request is pending or rejected.
func (s *Exchange) DeleteRequest(ctx context.Context, requestID int64, callerID uuid.UUID) error {
	request, err := s.swapStore.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.FromUserID != callerID || !request.Status.Deletable() {
		return model.ErrNotDeletable
	}

	if err := s.swapStore.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("failed to delete swap request: %w", err)
	}

	s.logger.Info("Exchange service: swap request deleted",
		"request_id", requestID,
		"user_id", callerID)

	return nil
}

// AddRatingParams contains the fields for rating a counterpart.
type AddRatingParams struct {
	FromUserID    uuid.UUID
	ToUserID      uuid.UUID
	SwapRequestID int64
	Rating        int
	Feedback      string
}

// AddRating records feedback for a counterpart and recomputes their
// aggregate rating as the mean of all received ratings, rounded to one
// decimal place.
func (s *Exchange) AddRating(ctx context.Context, params AddRatingParams) (model.Rating, error) {
	s.logger.Debug("Exchange service: adding rating",
		"from_user_id", params.FromUserID,
		"to_user_id", params.ToUserID,
		"rating", params.Rating)

	if params.Rating < 1 || params.Rating > 5 {
		return model.Rating{}, model.ErrRatingOutOfRange
	}

	target, err := s.userStore.GetByID(ctx, params.ToUserID)
	if err != nil {
		return model.Rating{}, err
	}

	feedback := params.Feedback
	if feedback == "" {
		feedback = fmt.Sprintf("Great experience exchanging skills with %s!", target.Name)
	}

	rating := model.Rating{
		ID:            uuid.New(),
		FromUserID:    params.FromUserID,
		ToUserID:      params.ToUserID,
		SwapRequestID: params.SwapRequestID,
		Rating:        params.Rating,
		Feedback:      feedback,
		CreatedAt:     s.now(),
	}

	rating, err = s.ratingStore.Create(ctx, rating)
	if err != nil {
		s.logger.Error("Exchange service: failed to create rating",
			"to_user_id", params.ToUserID,
			"error", err.Error())
		return model.Rating{}, fmt.Errorf("failed to create rating: %w", err)
	}

	aggregate, err := s.recomputeAggregate(ctx, params.ToUserID)
	if err != nil {
		return model.Rating{}, err
	}

	s.logger.Info("Exchange service: rating added",
		"rating_id", rating.ID,
		"to_user_id", params.ToUserID,
		"aggregate", aggregate)

	return rating, nil
}

func (s *Exchange) recomputeAggregate(ctx context.Context, userID uuid.UUID) (float64, error) {
	ratings, err := s.ratingStore.ListByToUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list ratings: %w", err)
	}

	aggregate := model.DefaultRating
	if len(ratings) > 0 {
		var sum int
		for _, r := range ratings {
			sum += r.Rating
		}
		aggregate = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	if err := s.userStore.UpdateRating(ctx, userID, aggregate); err != nil {
		return 0, fmt.Errorf("failed to write aggregate rating: %w", err)
	}

	return aggregate, nil
}

// SentRequests returns the requests a user created, in creation order.
func (s *Exchange) SentRequests(ctx context.Context, userID uuid.UUID) ([]model.SwapRequest, error) {
	requests, err := s.swapStore.ListByFromUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}

	return requests, nil
}

// ReceivedRequests returns the requests addressed to a user, in creation order.
func (s *Exchange) ReceivedRequests(ctx context.Context, userID uuid.UUID) ([]model.SwapRequest, error) {
	requests, err := s.swapStore.ListByToUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}

	return requests, nil
}

// Overview is the admin dashboard summary.
type Overview struct {
	TotalUsers     int
	PendingCount   int
	AcceptedCount  int
	CompletedCount int
	AverageRating  float64
	Recent         []model.SwapRequest
}

// GetOverview aggregates platform-wide counters, the global mean rating and
// the most recent requests (newest first). The reserved administrator account
// is not a member and stays out of the user count.
func (s *Exchange) GetOverview(ctx context.Context) (Overview, error) {
	overview := Overview{}

	var err error
	if overview.TotalUsers, err = s.userStore.CountExcluding(ctx, s.adminEmail); err != nil {
		return Overview{}, fmt.Errorf("failed to count users: %w", err)
	}
	if overview.PendingCount, err = s.swapStore.CountByStatus(ctx, model.StatusPending); err != nil {
		return Overview{}, fmt.Errorf("failed to count pending requests: %w", err)
	}
	if overview.AcceptedCount, err = s.swapStore.CountByStatus(ctx, model.StatusAccepted); err != nil {
		return Overview{}, fmt.Errorf("failed to count accepted requests: %w", err)
	}
	if overview.CompletedCount, err = s.swapStore.CountByStatus(ctx, model.StatusCompleted); err != nil {
		return Overview{}, fmt.Errorf("failed to count completed requests: %w", err)
	}
	if overview.AverageRating, err = s.ratingStore.Average(ctx); err != nil {
		return Overview{}, fmt.Errorf("failed to average ratings: %w", err)
	}
	if overview.Recent, err = s.swapStore.ListRecent(ctx, overviewRecentLimit); err != nil {
		return Overview{}, fmt.Errorf("failed to list recent requests: %w", err)
	}

	return overview, nil
}
