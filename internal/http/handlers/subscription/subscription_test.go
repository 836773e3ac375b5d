package subscription

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

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userID int64, subscriptionType string) (*models.User, error) {
	args := m.Called(ctx, userID, subscriptionType)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockService) List(ctx context.Context, p pagination.Params) ([]models.User, pagination.Meta, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]models.User)
	return items, args.Get(1).(pagination.Meta), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "upgrade",
			body: `{"subscription_type":"pro"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(5), "pro").
					Return(&models.User{ID: 5, SubscriptionType: models.SubscriptionPro}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"subscription_type":"pro"`,
		},
		{
			name:       "unknown type",
			body:       `{"subscription_type":"gold"}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "field subscription_type must be one of [free pro]",
		},
		{
			name: "admin target",
			body: `{"subscription_type":"free"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(5), "free").
					Return(nil, apperr.ForbiddenErr("cannot change subscription of an admin"))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "cannot change subscription of an admin",
		},
		{
			name: "missing user",
			body: `{"subscription_type":"free"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(5), "free").Return(nil, apperr.NotFoundErr("user not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPatch, "/api/userSubscription/subscriptions/5", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "5")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			New(newNoopLogger(), svc).Update(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
