// Package support реализует HTTP-обработчики обращений в поддержку и уведомлений.
package support

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
	Create(ctx context.Context, userID int64, subject, message string) (*models.Inquiry, error)
	List(ctx context.Context, p pagination.Params) ([]models.Inquiry, pagination.Meta, error)
	Reply(ctx context.Context, actor models.Actor, inquiryID int64, message string) (*models.InquiryReply, error)
	Replies(ctx context.Context, actor models.Actor, inquiryID int64) ([]models.InquiryReply, error)
	MarkRead(ctx context.Context, actor models.Actor, notificationID int64) error
	Notifications(ctx context.Context, userID int64) ([]models.Notification, error)
}

// InquiryRequest новое обращение.
type InquiryRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ReplyRequest ответ в переписке.
type ReplyRequest struct {
	Message string `json:"message" validate:"required"`
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

// AddInquiry godoc
// @Summary Создать обращение
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InquiryRequest true "Обращение"
// @Success 201 {object} response.Envelope{data=models.Inquiry}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Такое обращение уже есть"
// @Router /support/add-inquiry [post]
func (h *Handler) AddInquiry(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.AddInquiry")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req InquiryRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	inquiry, err := h.service.Create(r.Context(), actor.UserID, req.Subject, req.Message)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "inquiry submitted successfully", inquiry)
}

// Inquiries godoc
// @Summary Все обращения
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.Inquiry}
// @Failure 403 {object} response.ErrorResponse
// @Router /support/get-inquiries [get]
func (h *Handler) Inquiries(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.Inquiries")

	items, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "inquiries fetched successfully", items, meta)
}

// Reply godoc
// @Summary Ответить на обращение
// @Description Ответ администратора закрывает обращение и уведомляет автора.
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inquiryId path int true "ID обращения"
// @Param request body ReplyRequest true "Ответ"
// @Success 201 {object} response.Envelope{data=models.InquiryReply}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /support/reply-inquiry/{inquiryId} [post]
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.Reply")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "inquiryId")
	if !ok {
		return
	}
	var req ReplyRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	reply, err := h.service.Reply(r.Context(), actor, id, req.Message)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "reply sent successfully", reply)
}

// Replies godoc
// @Summary Переписка по обращению
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Param inquiryId path int true "ID обращения"
// @Success 200 {object} response.Envelope{data=[]models.InquiryReply}
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /support/get-replies/{inquiryId} [get]
func (h *Handler) Replies(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.Replies")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "inquiryId")
	if !ok {
		return
	}
	items, err := h.service.Replies(r.Context(), actor, id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "replies fetched successfully", items)
}

// MarkRead godoc
// @Summary Отметить уведомление прочитанным
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Param notificationId path int true "ID уведомления"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /support/notification/{notificationId} [patch]
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.MarkRead")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "notificationId")
	if !ok {
		return
	}
	if err := h.service.MarkRead(r.Context(), actor, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "notification marked as read", nil)
}

// Notifications godoc
// @Summary Мои уведомления
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Notification}
// @Router /support/notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.support.Notifications")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, err := h.service.Notifications(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "notifications fetched successfully", items)
}
