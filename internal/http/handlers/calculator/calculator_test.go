package calculator

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	calculatorservice "github.com/magabrotheeeer/qa-platform/internal/services/calculator"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in calculatorservice.Input) (*models.Calculator, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*models.Calculator)
	return c, args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]models.Calculator, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Calculator)
	return items, args.Error(1)
}

func (m *MockService) ListVisible(ctx context.Context) ([]models.Calculator, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Calculator)
	return items, args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, in calculatorservice.Input) (*models.Calculator, error) {
	args := m.Called(ctx, id, in)
	c, _ := args.Get(0).(*models.Calculator)
	return c, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) ToggleHidden(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) ToggleComingSoon(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func formRequest(t *testing.T, method, target string, fields map[string]string, id string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		setupMock  func(*MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "created",
			fields: map[string]string{"title": "Loan", "coming_soon": "true"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, calculatorservice.Input{Title: "Loan", ComingSoon: "true"}).
					Return(&models.Calculator{ID: 1, Title: "Loan", ComingSoon: true}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"coming_soon":true`,
		},
		{
			name:   "bad flag",
			fields: map[string]string{"title": "Loan", "coming_soon": "maybe"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, apperr.ValidationErr("coming_soon must be true, false, 1 or 0"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "coming_soon must be",
		},
		{
			name:   "duplicate title",
			fields: map[string]string{"title": "Loan"},
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, apperr.ConflictErr("calculator with this title already exists"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			New(newNoopLogger(), svc).Add(w, formRequest(t, http.MethodPost, "/api/calculator/add-calculator", tt.fields, ""))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestToggleComingSoon(t *testing.T) {
	svc := new(MockService)
	svc.On("ToggleComingSoon", mock.Anything, int64(3)).Return(false, nil)

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).ToggleComingSoon(w, formRequest(t, http.MethodPost, "/api/calculator/coming-soon/3", nil, "3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coming_soon":false`)
}

func TestDelete_Missing(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, int64(3)).Return(apperr.NotFoundErr("calculator not found"))

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Delete(w, formRequest(t, http.MethodPost, "/api/calculator/delete-calculator/3", nil, "3"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
