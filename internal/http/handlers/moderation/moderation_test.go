package moderation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Approve(ctx context.Context, questionID int64) (*models.ModerationNotification, error) {
	args := m.Called(ctx, questionID)
	n, _ := args.Get(0).(*models.ModerationNotification)
	return n, args.Error(1)
}

func (m *MockService) Reject(ctx context.Context, questionID int64, feedback string) (*models.ModerationNotification, error) {
	args := m.Called(ctx, questionID, feedback)
	n, _ := args.Get(0).(*models.ModerationNotification)
	return n, args.Error(1)
}

func (m *MockService) ListPending(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]models.QuestionListItem)
	return items, args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockService) ListApproved(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]models.QuestionListItem)
	return items, args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockService) ListMyRejected(ctx context.Context, userID int64) ([]models.Question, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.Question)
	return items, args.Error(1)
}

func (m *MockService) ListMyNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.ModerationNotification)
	return items, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequest(method, target, body, questionID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("questionId", questionID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middlewarectx.WithIdentity(ctx, models.Actor{UserID: 1, UserType: models.UserTypeAdmin})
	return req.WithContext(ctx)
}

func TestApprove(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setupMock  func(*MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "approved",
			id:   "4",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, int64(4)).Return(&models.ModerationNotification{
					QuestionID: 4, Status: models.ModerationApproved,
					Message: `Your question "Q" has been approved by admin.`,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `has been approved by admin.`,
		},
		{
			name: "already moderated",
			id:   "4",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, int64(4)).Return(nil, apperr.ConflictErr("question already moderated"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   "question already moderated",
		},
		{
			name: "missing",
			id:   "404",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, int64(404)).Return(nil, apperr.NotFoundErr("question not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "question not found",
		},
		{
			name:       "bad id",
			id:         "abc",
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "questionId must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			New(newNoopLogger(), svc).Approve(w, newRequest(http.MethodPatch, "/api/questions/approve/"+tt.id, "", tt.id))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestReject_EmptyFeedback(t *testing.T) {
	svc := new(MockService)
	svc.On("Reject", mock.Anything, int64(4), "  ").Return(nil, apperr.ValidationErr("feedback is required"))

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Reject(w, newRequest(http.MethodPost, "/api/questions/reject-question/4", `{"feedback":"  "}`, "4"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "feedback is required")
}

func TestRejected_ListsForCaller(t *testing.T) {
	svc := new(MockService)
	reason := "off-topic"
	svc.On("ListMyRejected", mock.Anything, int64(1)).
		Return([]models.Question{{ID: 2, Title: "Q", IsRejected: true, RejectReason: &reason}}, nil)

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Rejected(w, newRequest(http.MethodGet, "/api/questions/get-rejected-questions", "", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reject_reason":"off-topic"`)
}
