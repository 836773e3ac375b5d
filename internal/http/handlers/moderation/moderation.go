// Package moderation реализует HTTP-обработчики одобрения и отклонения вопросов
// и списков, связанных с модерацией.
package moderation

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

// Service описывает интерфейс бизнес-логики модерации.
type Service interface {
	Approve(ctx context.Context, questionID int64) (*models.ModerationNotification, error)
	Reject(ctx context.Context, questionID int64, feedback string) (*models.ModerationNotification, error)
	ListPending(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error)
	ListApproved(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error)
	ListMyRejected(ctx context.Context, userID int64) ([]models.Question, error)
	ListMyNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error)
}

// RejectRequest причина отклонения. Пустая причина проверяется сервисом после обрезки пробелов.
type RejectRequest struct {
	Feedback string `json:"feedback"`
}

// Handler обрабатывает HTTP-запросы модерации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: request.NewValidator(),
	}
}

// Approve godoc
// @Summary Одобрить вопрос
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "ID вопроса"
// @Success 200 {object} response.Envelope{data=models.ModerationNotification}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Вопрос уже прошёл модерацию"
// @Router /questions/approve/{questionId} [patch]
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Approve")

	id, ok := request.PathID(w, r, "questionId")
	if !ok {
		return
	}
	n, err := h.service.Approve(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	log.Info("question approved", slog.Int64("question_id", id))
	response.OK(w, r, http.StatusOK, "question approved successfully", n)
}

// Reject godoc
// @Summary Отклонить вопрос
// @Tags Moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "ID вопроса"
// @Param request body RejectRequest true "Причина"
// @Success 200 {object} response.Envelope{data=models.ModerationNotification}
// @Failure 400 {object} response.ErrorResponse "Пустая причина"
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /questions/reject-question/{questionId} [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Reject")

	id, ok := request.PathID(w, r, "questionId")
	if !ok {
		return
	}
	var req RejectRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	n, err := h.service.Reject(r.Context(), id, req.Feedback)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	log.Info("question rejected", slog.Int64("question_id", id))
	response.OK(w, r, http.StatusOK, "question rejected successfully", n)
}

// Pending godoc
// @Summary Вопросы на модерации
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionListItem}
// @Router /questions/get-pending-questions [get]
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Pending")

	items, meta, err := h.service.ListPending(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "pending questions fetched successfully", items, meta)
}

// Approved godoc
// @Summary Одобренные вопросы
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionListItem}
// @Router /questions/get-approved-questions [get]
func (h *Handler) Approved(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Approved")

	items, meta, err := h.service.ListApproved(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "approved questions fetched successfully", items, meta)
}

// Rejected godoc
// @Summary Мои отклонённые вопросы
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Question}
// @Router /questions/get-rejected-questions [get]
func (h *Handler) Rejected(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Rejected")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, err := h.service.ListMyRejected(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "rejected questions fetched successfully", items)
}

// Notifications godoc
// @Summary Мои уведомления о модерации
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.ModerationNotification}
// @Router /questions/get-notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.moderation.Notifications")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, err := h.service.ListMyNotifications(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "notifications fetched successfully", items)
}
