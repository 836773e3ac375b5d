// Package template реализует HTTP-обработчики загружаемых шаблонов.
// Список зависит от пользователя: администратор видит все шаблоны,
// подписчик pro видит free и pro, остальные только free.
package template

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	templateservice "github.com/magabrotheeeer/qa-platform/internal/services/template"
)

// FileField имя поля формы с файлом.
const FileField = "pdf"

type Service interface {
	Create(ctx context.Context, in templateservice.Input) (*models.TemplatePdf, error)
	List(ctx context.Context, userID int64) ([]models.TemplatePdf, error)
	Update(ctx context.Context, id int64, in templateservice.Input) (*models.TemplatePdf, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func input(r *http.Request) templateservice.Input {
	return templateservice.Input{
		Name:   r.PostFormValue("name"),
		Type:   r.PostFormValue("type"),
		Access: r.PostFormValue("access"),
		File:   request.File(r, FileField),
	}
}

// Upload godoc
// @Summary Загрузить шаблон
// @Tags Template
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Название"
// @Param type formData string true "Тип"
// @Param access formData string false "free или pro, по умолчанию free"
// @Param pdf formData file true "Файл: pdf, mp4, webm, jpeg или png"
// @Success 201 {object} response.Envelope{data=models.TemplatePdf}
// @Failure 400 {object} response.ErrorResponse
// @Router /template/upload-temp-pdf [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.template.Upload")

	if !request.ParseForm(w, r, log) {
		return
	}
	t, err := h.service.Create(r.Context(), input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "template uploaded successfully", t)
}

// List godoc
// @Summary Доступные шаблоны
// @Tags Template
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.TemplatePdf}
// @Router /template/get-temp-pdf [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.template.List")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, err := h.service.List(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "templates fetched successfully", items)
}

// Update godoc
// @Summary Изменить шаблон
// @Tags Template
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id formData int true "ID шаблона"
// @Param name formData string true "Название"
// @Param type formData string true "Тип"
// @Param access formData string true "free или pro"
// @Param pdf formData file false "Новый файл"
// @Success 200 {object} response.Envelope{data=models.TemplatePdf}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /template/update-temp-pdf [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.template.Update")

	if !request.ParseForm(w, r, log) {
		return
	}
	id, ok := request.FormID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.service.Update(r.Context(), id, input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "template updated successfully", t)
}

// Delete godoc
// @Summary Удалить шаблон
// @Tags Template
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID шаблона"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /template/delete-temp-pdf/{id} [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.template.Delete")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "template deleted successfully", nil)
}
