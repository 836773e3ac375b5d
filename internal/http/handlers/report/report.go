// Package report реализует HTTP-обработчики жалоб на комментарии.
package report

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
	Create(ctx context.Context, reporterID, commentID int64, reason string) (int64, error)
	List(ctx context.Context, p pagination.Params) ([]models.ReportedComment, pagination.Meta, error)
}

// Request жалоба на комментарий.
type Request struct {
	CommentID int64  `json:"commentId" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
}

// Created идентификатор созданной жалобы.
type Created struct {
	ReportID int64 `json:"reportId"`
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

// Add godoc
// @Summary Пожаловаться на комментарий
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Жалоба"
// @Success 201 {object} response.Envelope{data=Created}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/addReportComment [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.report.Add")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req Request
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	id, err := h.service.Create(r.Context(), actor.UserID, req.CommentID, req.Reason)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "comment reported successfully", Created{ReportID: id})
}

// List godoc
// @Summary Жалобы на комментарии
// @Description Номер страницы за последней страницей заменяется последней.
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.ReportedComment}
// @Failure 403 {object} response.ErrorResponse
// @Router /reports/getReportedComment [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.report.List")

	items, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "reported comments fetched successfully", items, meta)
}
