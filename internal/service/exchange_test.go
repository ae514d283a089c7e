package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-server/internal/mocks"
	"github.com/skillswap/skillswap-server/internal/model"
	"github.com/skillswap/skillswap-server/internal/testutil"
)

func echoSwapRequest(ctx context.Context, request model.SwapRequest) model.SwapRequest {
	return request
}

func echoRating(ctx context.Context, rating model.Rating) model.Rating { return rating }

func newTestExchange(swapStore *mocks.SwapRequestStore, ratingStore *mocks.RatingStore, userStore *mocks.UserStore) *Exchange {
	return NewExchange(swapStore, ratingStore, userStore, adminEmail, testutil.MakeNoopLogger())
}

func TestExchange_CreateRequest_SelfTargeted(t *testing.T) {
	ctx := context.Background()
	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, &mocks.UserStore{})

	id := uuid.New()
	_, err := s.CreateRequest(ctx, CreateRequestParams{FromUserID: id, ToUserID: id})
	require.ErrorIs(t, err, model.ErrInvalidParticipants)
}

func TestExchange_CreateRequest_UnresolvedParticipant(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	from, to := uuid.New(), uuid.New()
	userStore.On("GetByID", mock.Anything, from).Return(model.User{}, model.ErrNotFound)

	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, userStore)

	_, err := s.CreateRequest(ctx, CreateRequestParams{FromUserID: from, ToUserID: to})
	require.ErrorIs(t, err, model.ErrInvalidParticipants)
}

func TestExchange_CreateRequest_SkillNotOffered(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	sender := model.User{ID: uuid.New(), Name: "Alice", SkillsOffered: []string{"React"}}
	receiver := model.User{ID: uuid.New(), Name: "Bob", SkillsOffered: []string{"Python"}}
	userStore.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userStore.On("GetByID", mock.Anything, receiver.ID).Return(receiver, nil)

	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, userStore)

	_, err := s.CreateRequest(ctx, CreateRequestParams{
		FromUserID:     sender.ID,
		ToUserID:       receiver.ID,
		SkillOffered:   "Cooking",
		SkillRequested: "Python",
	})
	require.ErrorIs(t, err, model.ErrSkillNotOffered)

	_, err = s.CreateRequest(ctx, CreateRequestParams{
		FromUserID:     sender.ID,
		ToUserID:       receiver.ID,
		SkillOffered:   "React",
		SkillRequested: "Gardening",
	})
	require.ErrorIs(t, err, model.ErrSkillNotOffered)
}

func TestExchange_CreateRequest_Success(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}
	userStore := &mocks.UserStore{}

	sender := model.User{ID: uuid.New(), Name: "Alice", SkillsOffered: []string{"React"}}
	receiver := model.User{ID: uuid.New(), Name: "Bob", SkillsOffered: []string{"Python"}}
	userStore.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userStore.On("GetByID", mock.Anything, receiver.ID).Return(receiver, nil)
	swapStore.On("Create", mock.Anything, mock.AnythingOfType("model.SwapRequest")).Return(echoSwapRequest, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, userStore)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	request, err := s.CreateRequest(ctx, CreateRequestParams{
		FromUserID:     sender.ID,
		ToUserID:       receiver.ID,
		SkillOffered:   "React",
		SkillRequested: "Python",
	})
	require.NoError(t, err)

	assert.Equal(t, created.UnixNano(), request.ID)
	assert.Equal(t, model.StatusPending, request.Status)
	assert.Equal(t, created, request.CreatedAt)
	assert.Nil(t, request.CompletedAt)
	assert.Equal(t, "Hi Bob! I'd like to exchange React for Python. Let's connect!", request.Message)
}

func TestExchange_UpdateStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}
	userStore := &mocks.UserStore{}

	from, to := uuid.New(), uuid.New()
	pending := model.SwapRequest{ID: 1, FromUserID: from, ToUserID: to, Status: model.StatusPending}

	swapStore.On("GetByID", mock.Anything, int64(1)).Return(pending, nil).Once()
	swapStore.On("Update", mock.Anything, mock.AnythingOfType("model.SwapRequest")).Return(echoSwapRequest, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, userStore)

	accepted, err := s.UpdateStatus(ctx, 1, model.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, accepted.Status)
	assert.Nil(t, accepted.CompletedAt)

	swapStore.On("GetByID", mock.Anything, int64(1)).Return(accepted, nil).Once()
	userStore.On("IncrementTotalSwaps", mock.Anything, from).Return(nil)
	userStore.On("IncrementTotalSwaps", mock.Anything, to).Return(nil)

	completed, err := s.UpdateStatus(ctx, 1, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	userStore.AssertExpectations(t)
}

func TestExchange_UpdateStatus_RejectedIsTerminal(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	rejected := model.SwapRequest{ID: 2, Status: model.StatusRejected}
	swapStore.On("GetByID", mock.Anything, int64(2)).Return(rejected, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	_, err := s.UpdateStatus(ctx, 2, model.StatusCompleted)
	require.ErrorIs(t, err, model.ErrInvalidTransition)
	swapStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExchange_UpdateStatus_PendingCannotComplete(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	pending := model.SwapRequest{ID: 3, Status: model.StatusPending}
	swapStore.On("GetByID", mock.Anything, int64(3)).Return(pending, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	_, err := s.UpdateStatus(ctx, 3, model.StatusCompleted)
	require.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestExchange_UpdateStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, &mocks.UserStore{})

	_, err := s.UpdateStatus(ctx, 4, model.SwapStatus("archived"))
	require.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestExchange_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}
	swapStore.On("GetByID", mock.Anything, int64(404)).Return(model.SwapRequest{}, model.ErrNotFound)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	_, err := s.UpdateStatus(ctx, 404, model.StatusAccepted)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestExchange_DeleteRequest_PendingBySender(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	sender := uuid.New()
	pending := model.SwapRequest{ID: 5, FromUserID: sender, Status: model.StatusPending}
	swapStore.On("GetByID", mock.Anything, int64(5)).Return(pending, nil)
	swapStore.On("Delete", mock.Anything, int64(5)).Return(nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	require.NoError(t, s.DeleteRequest(ctx, 5, sender))
	swapStore.AssertExpectations(t)
}

func TestExchange_DeleteRequest_AcceptedIsProtected(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	sender := uuid.New()
	accepted := model.SwapRequest{ID: 6, FromUserID: sender, Status: model.StatusAccepted}
	swapStore.On("GetByID", mock.Anything, int64(6)).Return(accepted, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	err := s.DeleteRequest(ctx, 6, sender)
	require.ErrorIs(t, err, model.ErrNotDeletable)
	swapStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestExchange_DeleteRequest_OnlySenderMayDelete(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	pending := model.SwapRequest{ID: 7, FromUserID: uuid.New(), Status: model.StatusPending}
	swapStore.On("GetByID", mock.Anything, int64(7)).Return(pending, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	err := s.DeleteRequest(ctx, 7, uuid.New())
	require.ErrorIs(t, err, model.ErrNotDeletable)
}

func TestExchange_AddRating_OutOfRange(t *testing.T) {
	ctx := context.Background()
	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, &mocks.UserStore{})

	for _, value := range []int{0, 6, -1} {
		_, err := s.AddRating(ctx, AddRatingParams{
			FromUserID: uuid.New(),
			ToUserID:   uuid.New(),
			Rating:     value,
		})
		require.ErrorIs(t, err, model.ErrRatingOutOfRange)
	}
}

func TestExchange_AddRating_RecomputesAggregate(t *testing.T) {
	ctx := context.Background()
	ratingStore := &mocks.RatingStore{}
	userStore := &mocks.UserStore{}

	target := model.User{ID: uuid.New(), Name: "Bob"}
	rater := uuid.New()
	userStore.On("GetByID", mock.Anything, target.ID).Return(target, nil)
	ratingStore.On("Create", mock.Anything, mock.AnythingOfType("model.Rating")).Return(echoRating, nil)
	ratingStore.On("ListByToUser", mock.Anything, target.ID).Return([]model.Rating{
		{ToUserID: target.ID, Rating: 5},
		{ToUserID: target.ID, Rating: 4},
	}, nil)
	userStore.On("UpdateRating", mock.Anything, target.ID, 4.5).Return(nil)

	s := newTestExchange(&mocks.SwapRequestStore{}, ratingStore, userStore)

	rating, err := s.AddRating(ctx, AddRatingParams{
		FromUserID:    rater,
		ToUserID:      target.ID,
		SwapRequestID: 1,
		Rating:        4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, rating.Rating)
	assert.Equal(t, "Great experience exchanging skills with Bob!", rating.Feedback)
	userStore.AssertExpectations(t)
}

func TestExchange_AddRating_TargetNotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	target := uuid.New()
	userStore.On("GetByID", mock.Anything, target).Return(model.User{}, model.ErrNotFound)

	s := newTestExchange(&mocks.SwapRequestStore{}, &mocks.RatingStore{}, userStore)

	_, err := s.AddRating(ctx, AddRatingParams{FromUserID: uuid.New(), ToUserID: target, Rating: 3})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestExchange_SentAndReceivedRequests(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}

	user := uuid.New()
	sent := []model.SwapRequest{{ID: 1, FromUserID: user}}
	received := []model.SwapRequest{{ID: 2, ToUserID: user}, {ID: 3, ToUserID: user}}
	swapStore.On("ListByFromUser", mock.Anything, user).Return(sent, nil)
	swapStore.On("ListByToUser", mock.Anything, user).Return(received, nil)

	s := newTestExchange(swapStore, &mocks.RatingStore{}, &mocks.UserStore{})

	gotSent, err := s.SentRequests(ctx, user)
	require.NoError(t, err)
	assert.Len(t, gotSent, 1)

	gotReceived, err := s.ReceivedRequests(ctx, user)
	require.NoError(t, err)
	assert.Len(t, gotReceived, 2)
}

func TestExchange_GetOverview(t *testing.T) {
	ctx := context.Background()
	swapStore := &mocks.SwapRequestStore{}
	ratingStore := &mocks.RatingStore{}
	userStore := &mocks.UserStore{}

	// alice + bob + the reserved admin account; only the two members count
	userStore.On("CountExcluding", mock.Anything, adminEmail).Return(2, nil)
	swapStore.On("CountByStatus", mock.Anything, model.StatusPending).Return(2, nil)
	swapStore.On("CountByStatus", mock.Anything, model.StatusAccepted).Return(1, nil)
	swapStore.On("CountByStatus", mock.Anything, model.StatusCompleted).Return(4, nil)
	ratingStore.On("Average", mock.Anything).Return(4.7, nil)
	swapStore.On("ListRecent", mock.Anything, 8).Return([]model.SwapRequest{{ID: 9}, {ID: 8}}, nil)

	s := newTestExchange(swapStore, ratingStore, userStore)

	overview, err := s.GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalUsers)
	assert.Equal(t, 2, overview.PendingCount)
	assert.Equal(t, 1, overview.AcceptedCount)
	assert.Equal(t, 4, overview.CompletedCount)
	assert.Equal(t, 4.7, overview.AverageRating)
	require.Len(t, overview.Recent, 2)
	assert.Equal(t, int64(9), overview.Recent[0].ID)
	userStore.AssertNotCalled(t, "Count", mock.Anything)
	userStore.AssertExpectations(t)
}
