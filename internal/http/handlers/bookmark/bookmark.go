// Package bookmark реализует HTTP-обработчики закладок на вопросы и обучающие материалы.
package bookmark

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

// Service описывает интерфейс бизнес-логики закладок.
type Service interface {
	AddQuestion(ctx context.Context, userID, questionID int64) error
	RemoveQuestion(ctx context.Context, userID, questionID int64) error
	ListQuestions(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionBookmark, pagination.Meta, error)
	AddContent(ctx context.Context, userID, contentID int64) error
	RemoveContent(ctx context.Context, userID, contentID int64) error
	ListContent(ctx context.Context, userID int64, p pagination.Params) ([]models.ContentBookmark, pagination.Meta, error)
}

// QuestionRequest закладка на вопрос.
type QuestionRequest struct {
	QuestionID int64 `json:"questionId" validate:"required,gt=0"`
}

// ContentRequest закладка на обучающий материал.
type ContentRequest struct {
	EducationContentID int64 `json:"educationContentId" validate:"required,gt=0"`
}

// Handler обрабатывает HTTP-запросы закладок.
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

// AddQuestion godoc
// @Summary Добавить вопрос в закладки
// @Tags Bookmark
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "Вопрос"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Уже в закладках"
// @Router /bookmark/addBookmarkQuestions [post]
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.AddQuestion")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req QuestionRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	if err := h.service.AddQuestion(r.Context(), actor.UserID, req.QuestionID); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "question bookmarked successfully", nil)
}

// ListQuestions godoc
// @Summary Закладки на вопросы
// @Tags Bookmark
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionBookmark}
// @Router /bookmark/getbookmarkQuestions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.ListQuestions")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, meta, err := h.service.ListQuestions(r.Context(), actor.UserID, pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "bookmarks fetched successfully", items, meta)
}

// RemoveQuestion godoc
// @Summary Убрать вопрос из закладок
// @Tags Bookmark
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "ID вопроса"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /bookmark/deletebookmarkQuestion/{questionId} [delete]
func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.RemoveQuestion")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "questionId")
	if !ok {
		return
	}
	if err := h.service.RemoveQuestion(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "bookmark removed successfully", nil)
}

// AddContent godoc
// @Summary Добавить обучающий материал в закладки
// @Tags Bookmark
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ContentRequest true "Материал"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /bookmark/addBookmarkEducationContent [post]
func (h *Handler) AddContent(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.AddContent")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req ContentRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}
	if err := h.service.AddContent(r.Context(), actor.UserID, req.EducationContentID); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "education content bookmarked successfully", nil)
}

// ListContent godoc
// @Summary Закладки на обучающие материалы
// @Tags Bookmark
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.ContentBookmark}
// @Router /bookmark/getBookmarkEducationContent [get]
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.ListContent")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, meta, err := h.service.ListContent(r.Context(), actor.UserID, pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "bookmarks fetched successfully", items, meta)
}

// RemoveContent godoc
// @Summary Убрать обучающий материал из закладок
// @Tags Bookmark
// @Produce json
// @Security BearerAuth
// @Param educationContentId path int true "ID материала"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /bookmark/removeBookmarkEducationContent/{educationContentId} [post]
func (h *Handler) RemoveContent(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.bookmark.RemoveContent")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "educationContentId")
	if !ok {
		return
	}
	if err := h.service.RemoveContent(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "bookmark removed successfully", nil)
}
