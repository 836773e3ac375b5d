// Package education реализует HTTP-обработчики обучающих материалов.
package education

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
	Create(ctx context.Context, title, description string) (*models.EducationContent, error)
	List(ctx context.Context, p pagination.Params) ([]models.EducationContent, pagination.Meta, error)
}

// Request новый обучающий материал.
type Request struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
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
// @Summary Добавить обучающий материал
// @Tags Education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Материал"
// @Success 201 {object} response.Envelope{data=models.EducationContent}
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /education/addEducationResource [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.education.Add")

	var req Request
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	item, err := h.service.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "education resource added successfully", item)
}

// List godoc
// @Summary Обучающие материалы
// @Tags Education
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.EducationContent}
// @Router /education/getEducationResources [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.education.List")

	items, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "education resources fetched successfully", items, meta)
}
