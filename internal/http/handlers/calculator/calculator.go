// Package calculator реализует HTTP-обработчики карточек калькуляторов.
package calculator

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	calculatorservice "github.com/magabrotheeeer/qa-platform/internal/services/calculator"
)

// IconField имя поля формы с иконкой.
const IconField = "icon"

type Service interface {
	Create(ctx context.Context, in calculatorservice.Input) (*models.Calculator, error)
	List(ctx context.Context) ([]models.Calculator, error)
	ListVisible(ctx context.Context) ([]models.Calculator, error)
	Update(ctx context.Context, id int64, in calculatorservice.Input) (*models.Calculator, error)
	Delete(ctx context.Context, id int64) error
	ToggleHidden(ctx context.Context, id int64) (bool, error)
	ToggleComingSoon(ctx context.Context, id int64) (bool, error)
}

// HiddenState видимость после переключения.
type HiddenState struct {
	ID       int64 `json:"id"`
	IsHidden bool  `json:"is_hidden"`
}

// ComingSoonState флаг "скоро" после переключения.
type ComingSoonState struct {
	ID         int64 `json:"id"`
	ComingSoon bool  `json:"coming_soon"`
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func input(r *http.Request) calculatorservice.Input {
	return calculatorservice.Input{
		Title:      r.PostFormValue("title"),
		Subtitle:   r.PostFormValue("subtitle"),
		ComingSoon: r.PostFormValue("coming_soon"),
		Icon:       request.File(r, IconField),
	}
}

// Add godoc
// @Summary Создать калькулятор
// @Tags Calculator
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок, 3-100 символов"
// @Param subtitle formData string false "Подзаголовок, до 200 символов"
// @Param coming_soon formData string false "true/false/1/0"
// @Param icon formData file false "Иконка"
// @Success 201 {object} response.Envelope{data=models.Calculator}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Заголовок занят"
// @Router /calculator/add-calculator [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.Add")

	if !request.ParseForm(w, r, log) {
		return
	}
	c, err := h.service.Create(r.Context(), input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "calculator added successfully", c)
}

// List godoc
// @Summary Все калькуляторы
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Calculator}
// @Router /calculator/get-calculators [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.List")

	items, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculators fetched successfully", items)
}

// ListVisible godoc
// @Summary Видимые калькуляторы
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Calculator}
// @Router /calculator/get-unhide-calculator [get]
func (h *Handler) ListVisible(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.ListVisible")

	items, err := h.service.ListVisible(r.Context())
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculators fetched successfully", items)
}

// Update godoc
// @Summary Изменить калькулятор
// @Tags Calculator
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID калькулятора"
// @Param title formData string true "Заголовок"
// @Param subtitle formData string false "Подзаголовок"
// @Param coming_soon formData string false "true/false/1/0"
// @Param icon formData file false "Иконка"
// @Success 200 {object} response.Envelope{data=models.Calculator}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /calculator/update-calculator/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.Update")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if !request.ParseForm(w, r, log) {
		return
	}
	c, err := h.service.Update(r.Context(), id, input(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculator updated successfully", c)
}

// Delete godoc
// @Summary Удалить калькулятор
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID калькулятора"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /calculator/delete-calculator/{id} [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.Delete")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculator deleted successfully", nil)
}

// ToggleHidden godoc
// @Summary Скрыть или показать калькулятор
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID калькулятора"
// @Success 200 {object} response.Envelope{data=HiddenState}
// @Failure 404 {object} response.ErrorResponse
// @Router /calculator/hide-and-unhide/{id} [patch]
func (h *Handler) ToggleHidden(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.ToggleHidden")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	hidden, err := h.service.ToggleHidden(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculator visibility updated", HiddenState{ID: id, IsHidden: hidden})
}

// ToggleComingSoon godoc
// @Summary Переключить флаг "скоро"
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID калькулятора"
// @Success 200 {object} response.Envelope{data=ComingSoonState}
// @Failure 404 {object} response.ErrorResponse
// @Router /calculator/coming-soon/{id} [post]
func (h *Handler) ToggleComingSoon(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.calculator.ToggleComingSoon")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	soon, err := h.service.ToggleComingSoon(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "calculator coming soon updated", ComingSoonState{ID: id, ComingSoon: soon})
}
