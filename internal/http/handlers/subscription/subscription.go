// Package subscription реализует HTTP-обработчики управления подписками пользователей.
package subscription

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

type Service interface {
	Update(ctx context.Context, userID int64, subscriptionType string) (*models.User, error)
	List(ctx context.Context, p pagination.Params) ([]models.User, pagination.Meta, error)
}

// Request новый тип подписки.
type Request struct {
	SubscriptionType string `json:"subscription_type" validate:"required,oneof=free pro"`
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

// Update godoc
// @Summary Изменить подписку пользователя
// @Tags Subscription
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param request body Request true "Тип подписки"
// @Success 200 {object} response.Envelope{data=models.User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Нельзя менять подписку администратора"
// @Failure 404 {object} response.ErrorResponse
// @Router /userSubscription/subscriptions/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.subscription.Update")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	var req Request
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	user, err := h.service.Update(r.Context(), id, req.SubscriptionType)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "subscription updated successfully", user)
}

// List godoc
// @Summary Подписки пользователей
// @Tags Subscription
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.User}
// @Router /userSubscription/get-subscriptionsUsers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.subscription.List")

	items, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "subscriptions fetched successfully", items, meta)
}
