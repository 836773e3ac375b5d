package moderation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/services/moderation"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}
func (m *RepoMock) GetQuestionForUpdate(ctx context.Context, id int64) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}
func (m *RepoMock) ApproveQuestion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) RejectQuestion(ctx context.Context, id int64, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}
func (m *RepoMock) CreateModerationNotification(ctx context.Context, n models.ModerationNotification) (int64, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ListPendingQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.QuestionListItem), args.Int(1), args.Error(2)
}
func (m *RepoMock) ListApprovedQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.QuestionListItem), args.Int(1), args.Error(2)
}
func (m *RepoMock) ListRejectedQuestions(ctx context.Context, userID int64) ([]models.Question, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Question), args.Error(1)
}
func (m *RepoMock) ListModerationNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.ModerationNotification), args.Error(1)
}
func (m *RepoMock) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, message any) error {
	return m.Called(ctx, routingKey, message).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func pendingQuestion() *models.Question {
	return &models.Question{ID: 5, UserID: 2, Title: "Test Q"}
}

func TestService_Approve(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)

	repo.On("WithinTx", mock.Anything).Once()
	repo.On("GetQuestionForUpdate", mock.Anything, int64(5)).Return(pendingQuestion(), nil)
	repo.On("ApproveQuestion", mock.Anything, int64(5)).Return(nil).Once()
	repo.On("CreateModerationNotification", mock.Anything, models.ModerationNotification{
		UserID:     2,
		QuestionID: 5,
		Status:     models.ModerationApproved,
		Message:    `Your question "Test Q" has been approved by admin.`,
	}).Return(int64(11), nil).Once()
	repo.On("GetUserByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Email: "a@b.c", Username: "alice"}, nil)
	pub.On("Publish", mock.Anything, rabbitmq.RoutingQuestionModerated, mock.MatchedBy(func(e models.NotificationEvent) bool {
		return e.Kind == models.EventQuestionApproved && e.Email == "a@b.c" && e.ID != ""
	})).Return(nil).Once()

	n, err := moderation.New(repo, pub, newNoopLogger()).Approve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n.ID)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestService_Approve_Errors(t *testing.T) {
	approved := pendingQuestion()
	approved.IsApproved = true
	rejected := pendingQuestion()
	rejected.IsRejected, rejected.IsDeleted = true, true
	deleted := pendingQuestion()
	deleted.IsDeleted = true

	tests := []struct {
		name     string
		question *models.Question
		getErr   error
		wantKind apperr.Kind
	}{
		{name: "missing question", getErr: storage.ErrNotFound, wantKind: apperr.NotFound},
		{name: "already approved", question: approved, wantKind: apperr.Conflict},
		{name: "already rejected", question: rejected, wantKind: apperr.Conflict},
		{name: "deleted by author", question: deleted, wantKind: apperr.NotFound},
		{name: "storage failure", getErr: errors.New("db down"), wantKind: apperr.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			pub := new(PublisherMock)
			repo.On("WithinTx", mock.Anything)
			if tt.question != nil {
				repo.On("GetQuestionForUpdate", mock.Anything, int64(5)).Return(tt.question, nil)
			} else {
				repo.On("GetQuestionForUpdate", mock.Anything, int64(5)).Return(nil, tt.getErr)
			}

			_, err := moderation.New(repo, pub, newNoopLogger()).Approve(context.Background(), 5)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			repo.AssertNotCalled(t, "ApproveQuestion", mock.Anything, mock.Anything)
			pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Reject(t *testing.T) {
	t.Run("empty feedback never touches storage", func(t *testing.T) {
		repo := new(RepoMock)
		_, err := moderation.New(repo, new(PublisherMock), newNoopLogger()).Reject(context.Background(), 5, "   ")
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		repo.AssertNotCalled(t, "WithinTx", mock.Anything)
	})

	t.Run("rejects pending question", func(t *testing.T) {
		repo := new(RepoMock)
		pub := new(PublisherMock)
		repo.On("WithinTx", mock.Anything)
		repo.On("GetQuestionForUpdate", mock.Anything, int64(5)).Return(pendingQuestion(), nil)
		repo.On("RejectQuestion", mock.Anything, int64(5), "off topic").Return(nil)
		repo.On("CreateModerationNotification", mock.Anything, mock.MatchedBy(func(n models.ModerationNotification) bool {
			return n.Status == models.ModerationRejected &&
				n.Message == `Your question "Test Q" was rejected by admin. Reason: off topic`
		})).Return(int64(12), nil)
		repo.On("GetUserByID", mock.Anything, int64(2)).Return(nil, storage.ErrNotFound)

		n, err := moderation.New(repo, pub, newNoopLogger()).Reject(context.Background(), 5, " off topic ")
		require.NoError(t, err)
		assert.Equal(t, models.ModerationRejected, n.Status)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		repo := new(RepoMock)
		pub := new(PublisherMock)
		repo.On("WithinTx", mock.Anything)
		repo.On("GetQuestionForUpdate", mock.Anything, int64(5)).Return(pendingQuestion(), nil)
		repo.On("RejectQuestion", mock.Anything, int64(5), "spam").Return(nil)
		repo.On("CreateModerationNotification", mock.Anything, mock.Anything).Return(int64(1), nil)
		repo.On("GetUserByID", mock.Anything, int64(2)).Return(&models.User{ID: 2}, nil)
		pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := moderation.New(repo, pub, newNoopLogger()).Reject(context.Background(), 5, "spam")
		assert.NoError(t, err)
	})
}

func TestService_ListPending(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListPendingQuestions", mock.Anything, 10, 0).Return([]models.QuestionListItem{{}, {}}, 21, nil)

	items, meta, err := moderation.New(repo, new(PublisherMock), newNoopLogger()).ListPending(context.Background(), pagination.New(1, 10))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, meta.TotalPages)
}
