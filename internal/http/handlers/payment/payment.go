// Package payment реализует HTTP-обработчики оплаты подписки.
package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	paymentservice "github.com/magabrotheeeer/qa-platform/internal/services/payment"
)

// SignatureHeader заголовок с подписью вебхука.
const SignatureHeader = "Stripe-Signature"

const maxWebhookBody = 1 << 16

type Service interface {
	CreateIntent(ctx context.Context, userID int64, amount float64, currency string) (*paymentservice.Result, error)
	Confirm(ctx context.Context, userID int64, intentID, paymentMethodID string) (*paymentservice.Result, error)
	CheckStatus(ctx context.Context, intentID string) (*paymentservice.Result, error)
	History(ctx context.Context, userID int64) ([]models.Payment, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// IntentRequest запрос на создание платёжного намерения.
type IntentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

// ConfirmRequest запрос на подтверждение оплаты.
type ConfirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// WebhookAck ответ провайдеру.
type WebhookAck struct {
	Received bool `json:"received"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// CreateIntent godoc
// @Summary Создать платёжное намерение
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IntentRequest true "Сумма и валюта"
// @Success 200 {object} response.Envelope{data=paymentservice.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /payments/payment-intent [post]
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.payment.CreateIntent")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req IntentRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	res, err := h.service.CreateIntent(r.Context(), actor.UserID, req.Amount, req.Currency)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "payment intent created", res)
}

// Confirm godoc
// @Summary Подтвердить оплату
// @Description При статусе succeeded пользователь переводится на pro.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmRequest true "Платёжное намерение"
// @Success 200 {object} response.Envelope{data=paymentservice.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /payments/confirm-payment [post]
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.payment.Confirm")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req ConfirmRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	res, err := h.service.Confirm(r.Context(), actor.UserID, req.PaymentIntentID, req.PaymentMethodID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	msg := res.Message
	if msg == "" {
		msg = "payment processed"
	}
	response.OK(w, r, http.StatusOK, msg, res)
}

// Status godoc
// @Summary Статус оплаты
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param paymentIntentId query string true "ID платёжного намерения"
// @Success 200 {object} response.Envelope{data=paymentservice.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /payments/check-payment-status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.payment.Status")

	res, err := h.service.CheckStatus(r.Context(), r.URL.Query().Get("paymentIntentId"))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, res.Message, res)
}

// History godoc
// @Summary История платежей
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Payment}
// @Failure 401 {object} response.ErrorResponse
// @Router /payments/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.payment.History")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, err := h.service.History(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "payments fetched successfully", items)
}

// Webhook godoc
// @Summary Вебхук платёжного провайдера
// @Tags Payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Подпись"
// @Success 200 {object} WebhookAck
// @Failure 400 {object} response.ErrorResponse
// @Router /payments/webhook [post]
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.payment.Webhook")

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		log.Info("failed to read webhook body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to read request body")
		return
	}
	if err := h.service.HandleWebhook(r.Context(), payload, r.Header.Get(SignatureHeader)); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	render.JSON(w, r, WebhookAck{Received: true})
}
