// Package ads реализует HTTP-обработчики рекламных баннеров.
// Запись идёт multipart-формой с изображением в поле image_url.
package ads

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	adsservice "github.com/magabrotheeeer/qa-platform/internal/services/ads"
)

// ImageField имя поля формы с изображением.
const ImageField = "image_url"

type Service interface {
	Create(ctx context.Context, in adsservice.CreateInput) (*models.Ad, error)
	List(ctx context.Context) ([]models.Ad, error)
	Update(ctx context.Context, id int64, in adsservice.UpdateInput) (*models.Ad, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// Add godoc
// @Summary Создать баннер
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param subtitle formData string true "Подзаголовок"
// @Param button_text formData string true "Текст кнопки"
// @Param button_url formData string true "Ссылка кнопки"
// @Param start_date formData string true "Начало показа YYYY-MM-DD"
// @Param end_date formData string true "Конец показа YYYY-MM-DD"
// @Param image_url formData file true "Изображение"
// @Success 201 {object} response.Envelope{data=models.Ad}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /ads/addAds [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.ads.Add")

	if !request.ParseForm(w, r, log) {
		return
	}
	ad, err := h.service.Create(r.Context(), adsservice.CreateInput{
		Title:      r.PostFormValue("title"),
		Subtitle:   r.PostFormValue("subtitle"),
		ButtonText: r.PostFormValue("button_text"),
		ButtonURL:  r.PostFormValue("button_url"),
		StartDate:  r.PostFormValue("start_date"),
		EndDate:    r.PostFormValue("end_date"),
		Image:      request.File(r, ImageField),
	})
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	log.Info("ad created", slog.Int64("ad_id", ad.ID))
	response.OK(w, r, http.StatusCreated, "ad added successfully", ad)
}

// List godoc
// @Summary Баннеры
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]models.Ad}
// @Router /ads/getAds [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.ads.List")

	items, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "ads fetched successfully", items)
}

// Update godoc
// @Summary Изменить баннер
// @Description Меняются только переданные поля; новое изображение заменяет старое.
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID баннера"
// @Param title formData string false "Заголовок"
// @Param subtitle formData string false "Подзаголовок"
// @Param button_text formData string false "Текст кнопки"
// @Param button_url formData string false "Ссылка кнопки"
// @Param start_date formData string false "Начало показа YYYY-MM-DD"
// @Param end_date formData string false "Конец показа YYYY-MM-DD"
// @Param image_url formData file false "Изображение"
// @Success 200 {object} response.Envelope{data=models.Ad}
// @Failure 400 {object} response.ErrorResponse "Нечего обновлять"
// @Failure 404 {object} response.ErrorResponse
// @Router /ads/updateAds/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.ads.Update")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if !request.ParseForm(w, r, log) {
		return
	}
	ad, err := h.service.Update(r.Context(), id, adsservice.UpdateInput{
		Title:      request.OptionalValue(r, "title"),
		Subtitle:   request.OptionalValue(r, "subtitle"),
		ButtonText: request.OptionalValue(r, "button_text"),
		ButtonURL:  request.OptionalValue(r, "button_url"),
		StartDate:  request.OptionalValue(r, "start_date"),
		EndDate:    request.OptionalValue(r, "end_date"),
		Image:      request.File(r, ImageField),
	})
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "ad updated successfully", ad)
}

// Delete godoc
// @Summary Удалить баннер
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID баннера"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /ads/deleteAds/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.ads.Delete")

	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "ad deleted successfully", nil)
}
