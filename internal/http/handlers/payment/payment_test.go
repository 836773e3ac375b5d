package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	paymentservice "github.com/magabrotheeeer/qa-platform/internal/services/payment"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateIntent(ctx context.Context, userID int64, amount float64, currency string) (*paymentservice.Result, error) {
	args := m.Called(ctx, userID, amount, currency)
	r, _ := args.Get(0).(*paymentservice.Result)
	return r, args.Error(1)
}

func (m *MockService) Confirm(ctx context.Context, userID int64, intentID, paymentMethodID string) (*paymentservice.Result, error) {
	args := m.Called(ctx, userID, intentID, paymentMethodID)
	r, _ := args.Get(0).(*paymentservice.Result)
	return r, args.Error(1)
}

func (m *MockService) CheckStatus(ctx context.Context, intentID string) (*paymentservice.Result, error) {
	args := m.Called(ctx, intentID)
	r, _ := args.Get(0).(*paymentservice.Result)
	return r, args.Error(1)
}

func (m *MockService) History(ctx context.Context, userID int64) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]models.Payment)
	return items, args.Error(1)
}

func (m *MockService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func withUser(req *http.Request) *http.Request {
	actor := models.Actor{UserID: 4, UserType: models.UserTypeVisitor}
	return req.WithContext(middlewarectx.WithIdentity(req.Context(), actor))
}

func TestCreateIntent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"amount":19.99,"currency":"usd"}`,
			setupMock: func(m *MockService) {
				m.On("CreateIntent", mock.Anything, int64(4), 19.99, "usd").
					Return(&paymentservice.Result{PaymentIntentID: "pi_1", ClientSecret: "sec", Status: "requires_payment_method"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero amount",
			body:       `{"amount":0}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider down",
			body: `{"amount":5}`,
			setupMock: func(m *MockService) {
				m.On("CreateIntent", mock.Anything, int64(4), 5.0, "").
					Return(nil, apperr.New(apperr.BadGateway, "payment provider error"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/payments/payment-intent", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			New(newNoopLogger(), svc).CreateIntent(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestConfirm_NotSucceeded(t *testing.T) {
	svc := new(MockService)
	svc.On("Confirm", mock.Anything, int64(4), "pi_1", "pm_card").
		Return(nil, apperr.ValidationErr("Payment not succeeded. Current status: canceled"))

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/payments/confirm-payment",
		strings.NewReader(`{"paymentIntentId":"pi_1","paymentMethodId":"pm_card"}`)))
	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Confirm(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Current status: canceled")
}

func TestStatus_MissingParam(t *testing.T) {
	svc := new(MockService)
	svc.On("CheckStatus", mock.Anything, "").Return(nil, apperr.ValidationErr("paymentIntentId is required"))

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).Status(w, httptest.NewRequest(http.MethodGet, "/api/payments/check-payment-status", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	svc := new(MockService)
	svc.On("History", mock.Anything, int64(4)).Return([]models.Payment{
		{ID: 1, UserID: 4, Amount: "19.99", Currency: "usd", Status: "succeeded", PaymentIntentID: "pi_1"},
	}, nil)

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).History(w, withUser(httptest.NewRequest(http.MethodGet, "/api/payments/history", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []models.Payment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "pi_1", body.Data[0].PaymentIntentID)
	svc.AssertExpectations(t)
}

func TestHistory_Unauthenticated(t *testing.T) {
	svc := new(MockService)

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc).History(w, httptest.NewRequest(http.MethodGet, "/api/payments/history", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
}

func TestWebhook(t *testing.T) {
	payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`

	svc := new(MockService)
	svc.On("HandleWebhook", mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil).Once()
	svc.On("HandleWebhook", mock.Anything, []byte(payload), "bad").
		Return(apperr.ValidationErr("invalid webhook signature")).Once()
	h := New(newNoopLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set(SignatureHeader, "t=1,v1=abc")
	w := httptest.NewRecorder()
	h.Webhook(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var ack WebhookAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.True(t, ack.Received)

	req = httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(payload))
	req.Header.Set(SignatureHeader, "bad")
	w = httptest.NewRecorder()
	h.Webhook(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}
