package payment_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/paymentprovider"
	"github.com/magabrotheeeer/qa-platform/internal/services/payment"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

const webhookSecret = "whsec_test"

type RepoMock struct{ mock.Mock }

func (m *RepoMock) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}
func (m *RepoMock) UpdateSubscriptionType(ctx context.Context, userID int64, subscriptionType string) error {
	return m.Called(ctx, userID, subscriptionType).Error(0)
}
func (m *RepoMock) SavePayment(ctx context.Context, p models.Payment) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) CreateIntent(ctx context.Context, p paymentprovider.CreateIntentParams) (*paymentprovider.PaymentIntent, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.PaymentIntent), args.Error(1)
}
func (m *ProviderMock) RetrieveIntent(ctx context.Context, id string) (*paymentprovider.PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.PaymentIntent), args.Error(1)
}
func (m *ProviderMock) ConfirmIntent(ctx context.Context, id, paymentMethodID string) (*paymentprovider.PaymentIntent, error) {
	args := m.Called(ctx, id, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.PaymentIntent), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(repo *RepoMock, provider *ProviderMock) *payment.Service {
	return payment.New(repo, provider, payment.WebhookConfig{Secret: webhookSecret, Tolerance: 5 * time.Minute}, newNoopLogger())
}

func intent(status string) *paymentprovider.PaymentIntent {
	return &paymentprovider.PaymentIntent{
		ID:           "pi_1",
		Amount:       1999,
		Currency:     "usd",
		Status:       status,
		ClientSecret: "pi_1_secret",
		Metadata:     map[string]string{payment.MetadataUserID: "7"},
	}
}

func TestAmountConversion(t *testing.T) {
	assert.Equal(t, int64(1999), payment.ToMinorUnits(19.99))
	assert.Equal(t, int64(1000), payment.ToMinorUnits(9.999))
	assert.Equal(t, "19.99", payment.FormatAmount(1999))
	assert.Equal(t, "0.05", payment.FormatAmount(5))
}

func TestService_CreateIntent(t *testing.T) {
	t.Run("defaults currency", func(t *testing.T) {
		provider := new(ProviderMock)
		provider.On("CreateIntent", mock.Anything, paymentprovider.CreateIntentParams{
			Amount:   1999,
			Currency: "usd",
			Metadata: map[string]string{"userId": "7"},
		}).Return(intent(paymentprovider.StatusRequiresPaymentMethod), nil)

		res, err := newService(new(RepoMock), provider).CreateIntent(context.Background(), 7, 19.99, "")
		require.NoError(t, err)
		assert.Equal(t, "pi_1", res.PaymentIntentID)
		assert.Equal(t, "pi_1_secret", res.ClientSecret)
	})

	t.Run("non positive amount", func(t *testing.T) {
		provider := new(ProviderMock)
		_, err := newService(new(RepoMock), provider).CreateIntent(context.Background(), 7, 0, "usd")
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		provider.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := new(ProviderMock)
		provider.On("CreateIntent", mock.Anything, mock.Anything).Return(nil, &paymentprovider.ProviderError{StatusCode: 500, Message: "boom"})
		_, err := newService(new(RepoMock), provider).CreateIntent(context.Background(), 7, 5, "usd")
		assert.Equal(t, apperr.BadGateway, apperr.KindOf(err))
		assert.Equal(t, "payment provider error", apperr.MessageOf(err))
	})
}

func TestService_Confirm_Succeeded(t *testing.T) {
	repo := new(RepoMock)
	provider := new(ProviderMock)

	provider.On("RetrieveIntent", mock.Anything, "pi_1").Return(intent(paymentprovider.StatusSucceeded), nil)
	repo.On("WithinTx", mock.Anything).Once()
	repo.On("UpdateSubscriptionType", mock.Anything, int64(7), models.SubscriptionPro).Return(nil).Once()
	repo.On("SavePayment", mock.Anything, models.Payment{
		UserID:          7,
		Amount:          "19.99",
		Currency:        "usd",
		Status:          paymentprovider.StatusSucceeded,
		PaymentIntentID: "pi_1",
	}).Return(true, nil).Once()

	res, err := newService(repo, provider).Confirm(context.Background(), 7, "pi_1", "")
	require.NoError(t, err)
	assert.Equal(t, paymentprovider.StatusSucceeded, res.Status)
	assert.Equal(t, "Payment completed successfully.", res.Message)
	repo.AssertExpectations(t)
}

func TestService_Confirm_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantKind   apperr.Kind
		wantStatus string
		wantMsg    string
	}{
		{name: "requires action", status: paymentprovider.StatusRequiresAction, wantStatus: paymentprovider.StatusRequiresAction},
		{
			name:     "processing",
			status:   paymentprovider.StatusProcessing,
			wantKind: apperr.Validation,
			wantMsg:  "Payment not succeeded. Current status: processing",
		},
		{
			name:     "canceled",
			status:   paymentprovider.StatusCanceled,
			wantKind: apperr.Validation,
			wantMsg:  "Payment not succeeded. Current status: canceled",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			provider := new(ProviderMock)
			provider.On("ConfirmIntent", mock.Anything, "pi_1", "pm_card").Return(intent(tt.status), nil)

			res, err := newService(repo, provider).Confirm(context.Background(), 7, "pi_1", "pm_card")
			if tt.wantStatus != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, "pi_1_secret", res.ClientSecret)
			} else {
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				assert.Equal(t, tt.wantMsg, apperr.MessageOf(err))
			}
			repo.AssertNotCalled(t, "WithinTx", mock.Anything)
		})
	}
}

func TestService_Confirm_ForeignIntent(t *testing.T) {
	provider := new(ProviderMock)
	provider.On("RetrieveIntent", mock.Anything, "pi_1").Return(intent(paymentprovider.StatusSucceeded), nil)

	_, err := newService(new(RepoMock), provider).Confirm(context.Background(), 8, "pi_1", "")
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}

func TestService_Confirm_IntentWithoutOwner(t *testing.T) {
	for name, metadata := range map[string]map[string]string{
		"no metadata":   nil,
		"empty user id": {payment.MetadataUserID: ""},
	} {
		t.Run(name, func(t *testing.T) {
			repo := new(RepoMock)
			provider := new(ProviderMock)
			pi := intent(paymentprovider.StatusSucceeded)
			pi.Metadata = metadata
			provider.On("RetrieveIntent", mock.Anything, "pi_1").Return(pi, nil)

			_, err := newService(repo, provider).Confirm(context.Background(), 7, "pi_1", "")
			assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
			repo.AssertNotCalled(t, "WithinTx", mock.Anything)
			repo.AssertNotCalled(t, "UpdateSubscriptionType", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_History(t *testing.T) {
	repo := new(RepoMock)
	want := []models.Payment{
		{ID: 2, UserID: 7, Amount: "19.99", Currency: "usd", Status: paymentprovider.StatusSucceeded, PaymentIntentID: "pi_2"},
		{ID: 1, UserID: 7, Amount: "19.99", Currency: "usd", Status: paymentprovider.StatusRequiresPaymentMethod, PaymentIntentID: "pi_1"},
	}
	repo.On("ListPayments", mock.Anything, int64(7)).Return(want, nil).Once()
	repo.On("ListPayments", mock.Anything, int64(8)).Return(nil, errors.New("connection reset")).Once()
	svc := newService(repo, new(ProviderMock))

	got, err := svc.History(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.History(context.Background(), 8)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	repo.AssertExpectations(t)
}

func TestService_Confirm_UserMissing(t *testing.T) {
	repo := new(RepoMock)
	provider := new(ProviderMock)
	provider.On("RetrieveIntent", mock.Anything, "pi_1").Return(intent(paymentprovider.StatusSucceeded), nil)
	repo.On("WithinTx", mock.Anything)
	repo.On("UpdateSubscriptionType", mock.Anything, int64(7), models.SubscriptionPro).Return(storage.ErrNotFound)

	_, err := newService(repo, provider).Confirm(context.Background(), 7, "pi_1", "")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	repo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func signedHeader(payload []byte, ts time.Time) string {
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), paymentprovider.ComputeSignature(payload, ts.Unix(), webhookSecret))
}

func webhookPayload(eventType, status string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","type":%q,"data":{"object":{"id":"pi_1","amount":1999,"currency":"usd","status":%q,"metadata":{"userId":"7"}}}}`,
		eventType, status))
}

func TestService_HandleWebhook(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		repo := new(RepoMock)
		payload := webhookPayload(paymentprovider.EventPaymentSucceeded, paymentprovider.StatusSucceeded)
		err := newService(repo, new(ProviderMock)).HandleWebhook(context.Background(), payload, "t=1,v1=deadbeef")
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		repo.AssertNotCalled(t, "WithinTx", mock.Anything)
	})

	t.Run("succeeded upgrades user", func(t *testing.T) {
		repo := new(RepoMock)
		payload := webhookPayload(paymentprovider.EventPaymentSucceeded, paymentprovider.StatusSucceeded)
		repo.On("WithinTx", mock.Anything).Once()
		repo.On("UpdateSubscriptionType", mock.Anything, int64(7), models.SubscriptionPro).Return(nil)
		repo.On("SavePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.Status == paymentprovider.StatusSucceeded && p.Amount == "19.99"
		})).Return(false, nil)

		err := newService(repo, new(ProviderMock)).HandleWebhook(context.Background(), payload, signedHeader(payload, time.Now()))
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("failed payment is only audited", func(t *testing.T) {
		repo := new(RepoMock)
		payload := webhookPayload(paymentprovider.EventPaymentFailed, paymentprovider.StatusRequiresPaymentMethod)
		repo.On("SavePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.Status == paymentprovider.StatusRequiresPaymentMethod
		})).Return(true, nil).Once()

		err := newService(repo, new(ProviderMock)).HandleWebhook(context.Background(), payload, signedHeader(payload, time.Now()))
		require.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateSubscriptionType", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other events ignored", func(t *testing.T) {
		repo := new(RepoMock)
		payload := webhookPayload("charge.refunded", paymentprovider.StatusSucceeded)
		err := newService(repo, new(ProviderMock)).HandleWebhook(context.Background(), payload, signedHeader(payload, time.Now()))
		require.NoError(t, err)
		repo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		repo := new(RepoMock)
		payload := webhookPayload(paymentprovider.EventPaymentSucceeded, paymentprovider.StatusSucceeded)
		repo.On("WithinTx", mock.Anything)
		repo.On("UpdateSubscriptionType", mock.Anything, int64(7), models.SubscriptionPro).Return(errors.New("db down"))

		err := newService(repo, new(ProviderMock)).HandleWebhook(context.Background(), payload, signedHeader(payload, time.Now()))
		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	})
}
