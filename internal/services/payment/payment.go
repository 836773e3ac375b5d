// Package payment проводит оплату подписки pro через платёжного провайдера.
//
// Повышение тарифа и запись в журнал платежей выполняются в одной транзакции.
// Подтверждение клиентом и вебхук провайдера могут прийти оба: журнал
// уникален по паре (intent, status), поэтому повтор не создаёт вторую запись.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/metrics"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/paymentprovider"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// MetadataUserID ключ метаданных с ID пользователя.
const MetadataUserID = "userId"

// Repository операции хранилища, нужные оплате.
type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	UpdateSubscriptionType(ctx context.Context, userID int64, subscriptionType string) error
	SavePayment(ctx context.Context, p models.Payment) (bool, error)
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
}

// Provider клиент платёжного провайдера.
type Provider interface {
	CreateIntent(ctx context.Context, p paymentprovider.CreateIntentParams) (*paymentprovider.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*paymentprovider.PaymentIntent, error)
	ConfirmIntent(ctx context.Context, id, paymentMethodID string) (*paymentprovider.PaymentIntent, error)
}

// WebhookConfig параметры проверки вебхуков.
type WebhookConfig struct {
	Secret          string
	Tolerance       time.Duration
	DefaultCurrency string
}

// Result состояние платёжного намерения для клиента.
type Result struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret,omitempty"`
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
}

// Service бизнес-логика оплаты.
type Service struct {
	repo     Repository
	provider Provider
	cfg      WebhookConfig
	now      func() time.Time
	log      *slog.Logger
}

// New создаёт сервис оплаты.
func New(repo Repository, provider Provider, cfg WebhookConfig, log *slog.Logger) *Service {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "usd"
	}
	return &Service{repo: repo, provider: provider, cfg: cfg, now: time.Now, log: log}
}

func providerErr(err error) error {
	return apperr.Wrap(apperr.BadGateway, "payment provider error", err)
}

// ToMinorUnits переводит сумму в минимальные единицы валюты с округлением.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatAmount форматирует сумму в минимальных единицах как десятичную с двумя знаками.
func FormatAmount(minor int64) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}

// CreateIntent создаёт платёжное намерение на сумму amount в валюте currency.
func (s *Service) CreateIntent(ctx context.Context, userID int64, amount float64, currency string) (*Result, error) {
	const op = "services.payment.CreateIntent"

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperr.ValidationErr("amount must be greater than zero")
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	intent, err := s.provider.CreateIntent(ctx, paymentprovider.CreateIntentParams{
		Amount:   ToMinorUnits(amount),
		Currency: currency,
		Metadata: map[string]string{MetadataUserID: strconv.FormatInt(userID, 10)},
	})
	if err != nil {
		s.log.Error("failed to create payment intent", slog.String("op", op), sl.Err(err))
		return nil, providerErr(err)
	}
	return &Result{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Status:          intent.Status,
	}, nil
}

// Confirm подтверждает оплату. При успехе пользователь получает тариф pro.
func (s *Service) Confirm(ctx context.Context, userID int64, intentID, paymentMethodID string) (*Result, error) {
	const op = "services.payment.Confirm"

	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return nil, apperr.ValidationErr("paymentIntentId is required")
	}

	var (
		intent *paymentprovider.PaymentIntent
		err    error
	)
	if pm := strings.TrimSpace(paymentMethodID); pm != "" {
		intent, err = s.provider.ConfirmIntent(ctx, intentID, pm)
	} else {
		intent, err = s.provider.RetrieveIntent(ctx, intentID)
	}
	if err != nil {
		s.log.Error("failed to confirm payment intent", slog.String("op", op), sl.Err(err))
		return nil, providerErr(err)
	}

	// намерение без владельца создано не через этот API и никому не засчитывается
	if intent.Metadata[MetadataUserID] != strconv.FormatInt(userID, 10) {
		return nil, apperr.ForbiddenErr("payment intent belongs to another user")
	}

	switch intent.Status {
	case paymentprovider.StatusSucceeded:
	case paymentprovider.StatusRequiresAction:
		return &Result{
			PaymentIntentID: intent.ID,
			ClientSecret:    intent.ClientSecret,
			Status:          intent.Status,
			Message:         paymentprovider.StatusMessage(intent.Status),
		}, nil
	default:
		return nil, apperr.ValidationErr("Payment not succeeded. Current status: " + intent.Status)
	}

	if err := s.upgrade(ctx, userID, intent); err != nil {
		return nil, err
	}
	return &Result{
		PaymentIntentID: intent.ID,
		Status:          intent.Status,
		Message:         paymentprovider.StatusMessage(intent.Status),
	}, nil
}

func paymentRecord(userID int64, intent *paymentprovider.PaymentIntent) models.Payment {
	return models.Payment{
		UserID:          userID,
		Amount:          FormatAmount(intent.Amount),
		Currency:        intent.Currency,
		Status:          intent.Status,
		PaymentIntentID: intent.ID,
	}
}

// upgrade переводит пользователя на pro и пишет журнал в одной транзакции.
func (s *Service) upgrade(ctx context.Context, userID int64, intent *paymentprovider.PaymentIntent) error {
	const op = "services.payment.upgrade"

	var created bool
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateSubscriptionType(ctx, userID, models.SubscriptionPro); err != nil {
			return err
		}
		var err error
		created, err = s.repo.SavePayment(ctx, paymentRecord(userID, intent))
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("user not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if created {
		metrics.PaymentRecorded(intent.Status)
		s.log.Info("subscription upgraded", slog.Int64("user_id", userID), slog.String("payment_intent_id", intent.ID))
	}
	return nil
}

// CheckStatus возвращает текущий статус платёжного намерения.
func (s *Service) CheckStatus(ctx context.Context, intentID string) (*Result, error) {
	const op = "services.payment.CheckStatus"

	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return nil, apperr.ValidationErr("paymentIntentId is required")
	}
	intent, err := s.provider.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.log.Error("failed to retrieve payment intent", slog.String("op", op), sl.Err(err))
		return nil, providerErr(err)
	}
	return &Result{
		PaymentIntentID: intent.ID,
		Status:          intent.Status,
		Message:         paymentprovider.StatusMessage(intent.Status),
	}, nil
}

// History возвращает журнал платежей пользователя, новые первыми.
func (s *Service) History(ctx context.Context, userID int64) ([]models.Payment, error) {
	const op = "services.payment.History"
	payments, err := s.repo.ListPayments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payments, nil
}

// HandleWebhook проверяет подпись и обрабатывает событие провайдера.
// Неизвестные события игнорируются.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	const op = "services.payment.HandleWebhook"
	log := s.log.With(slog.String("op", op))

	event, err := paymentprovider.ParseEvent(payload, signature, s.cfg.Secret, s.cfg.Tolerance, s.now())
	if err != nil {
		log.Warn("rejected webhook", sl.Err(err))
		return apperr.Wrap(apperr.Validation, "invalid webhook signature", err)
	}
	log = log.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))

	intent := &event.Data.Object
	switch event.Type {
	case paymentprovider.EventPaymentSucceeded, paymentprovider.EventPaymentFailed:
	default:
		log.Debug("ignoring webhook event")
		return nil
	}

	userID, err := strconv.ParseInt(intent.Metadata[MetadataUserID], 10, 64)
	if err != nil {
		log.Warn("webhook intent has no user id", slog.String("payment_intent_id", intent.ID))
		return nil
	}

	if event.Type == paymentprovider.EventPaymentFailed {
		created, err := s.repo.SavePayment(ctx, paymentRecord(userID, intent))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Warn("payment for unknown user", slog.Int64("user_id", userID))
				return nil
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		if created {
			metrics.PaymentRecorded(intent.Status)
		}
		return nil
	}

	if err := s.upgrade(ctx, userID, intent); err != nil {
		if apperr.Is(err, apperr.NotFound) {
			log.Warn("payment for unknown user", slog.Int64("user_id", userID))
			return nil
		}
		return err
	}
	return nil
}
