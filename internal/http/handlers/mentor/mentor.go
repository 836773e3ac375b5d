// Package mentor реализует HTTP-обработчики программ наставничества.
package mentor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	mentorservice "github.com/magabrotheeeer/qa-platform/internal/services/mentor"
)

// IconField имя поля формы с иконкой.
const IconField = "icon"

type Service interface {
	Create(ctx context.Context, in mentorservice.Input) (*models.MentorProgram, error)
	List(ctx context.Context, p pagination.Params) ([]models.MentorProgram, pagination.Meta, error)
	ListVisible(ctx context.Context, p pagination.Params) ([]models.MentorProgram, pagination.Meta, error)
	Update(ctx context.Context, id int64, in mentorservice.Input) (*models.MentorProgram, error)
	Delete(ctx context.Context, id int64) error
	ToggleHidden(ctx context.Context, id int64) (bool, error)
}

// HiddenState состояние видимости после переключения.
type HiddenState struct {
	ID       int64 `json:"id"`
	IsHidden bool  `json:"is_hidden"`
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func input(r *http.Request) mentorservice.Input {
	return mentorservice.Input{
		Title:             r.PostFormValue("title"),
		Subtitle:          r.PostFormValue("subtitle"),
		AccessType:        r.PostFormValue("access_type"),
		Status:            r.PostFormValue("status"),
		SkillTiers:        r.PostFormValue("skill_tiers"),
		Modules:           r.PostFormValue("modules"),
		NewContentMonthly: r.PostFormValue("new_content_monthly"),
		Icon:              request.File(r, IconField),
	}
}

// Add godoc
// @Summary Создать программу наставничества
// @Tags Mentor
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param subtitle formData string true "Подзаголовок"
// @Param access_type formData string true "Тип доступа"
// @Param status formData string true "Статус"
// @Param skill_tiers formData string false "Уровни"
// @Param modules formData string false "Модули"
// @Param new_content_monthly formData string false "true или 1"
// @Param icon formData file false "Иконка"
// @Success 201 {object} response.Envelope{data=models.MentorProgram}
// @Failure 400 {object} response.ErrorResponse
// @Router /mentor/add-mentor-program [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.Add")

	if !request.ParseForm(w, r, log) {
		return
	}
	m, err := h.service.Create(r.Context(), input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "mentor program added successfully", m)
}

// List godoc
// @Summary Все программы (для администратора)
// @Tags Mentor
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.MentorProgram}
// @Router /mentor/get-mentor-programs [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.List")

	items, meta, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "mentor programs fetched successfully", items, meta)
}

// ListVisible godoc
// @Summary Видимые программы
// @Tags Mentor
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.MentorProgram}
// @Router /mentor/get-unhide-mentor-program [get]
func (h *Handler) ListVisible(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.ListVisible")

	items, meta, err := h.service.ListVisible(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "mentor programs fetched successfully", items, meta)
}

// Update godoc
// @Summary Изменить программу
// @Tags Mentor
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id formData int true "ID программы"
// @Param title formData string true "Заголовок"
// @Param subtitle formData string true "Подзаголовок"
// @Param access_type formData string true "Тип доступа"
// @Param status formData string true "Статус"
// @Param icon formData file false "Иконка"
// @Success 200 {object} response.Envelope{data=models.MentorProgram}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /mentor/update-mentor-program [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.Update")

	if !request.ParseForm(w, r, log) {
		return
	}
	id, ok := request.FormID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.service.Update(r.Context(), id, input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "mentor program updated successfully", m)
}

// Delete godoc
// @Summary Удалить программу
// @Tags Mentor
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID программы"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /mentor/delete-mentor-program/{id} [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.Delete")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "mentor program deleted successfully", nil)
}

// ToggleHidden godoc
// @Summary Скрыть или показать программу
// @Tags Mentor
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID программы"
// @Success 200 {object} response.Envelope{data=HiddenState}
// @Failure 404 {object} response.ErrorResponse
// @Router /mentor/mentor-program-hide-unhide/{id} [patch]
func (h *Handler) ToggleHidden(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.mentor.ToggleHidden")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	hidden, err := h.service.ToggleHidden(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "mentor program visibility updated", HiddenState{ID: id, IsHidden: hidden})
}
