// Package question реализует HTTP-обработчики вопросов, просмотров, лайков и комментариев.
package question

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	questionservice "github.com/magabrotheeeer/qa-platform/internal/services/question"
)

// Service описывает интерфейс бизнес-логики вопросов.
type Service interface {
	Create(ctx context.Context, userID int64, in questionservice.Input) (*models.Question, error)
	Update(ctx context.Context, userID, id int64, in questionservice.Input) (*models.Question, error)
	Delete(ctx context.Context, userID, id int64) error
	ListAdmin(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error)
	ListPosted(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error)
	ListMine(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error)
	AddView(ctx context.Context, userID, questionID int64) error
	AddLike(ctx context.Context, userID, questionID int64) error
	RemoveLike(ctx context.Context, userID, questionID int64) error
	Likes(ctx context.Context, questionID int64) (*models.Likes, error)
	AddComment(ctx context.Context, userID, questionID int64, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, actor models.Actor, commentID int64) error
	Comments(ctx context.Context, questionID int64) ([]models.Comment, error)
	AddCommentLike(ctx context.Context, userID, commentID int64) error
	RemoveCommentLike(ctx context.Context, userID, commentID int64) error
	CommentLikes(ctx context.Context, commentID int64) (*models.Likes, error)
}

// Request тело создания и правки вопроса. tags принимает массив или строку через запятую.
type Request struct {
	Title   string               `json:"title" validate:"required,max=255"`
	Details string               `json:"details" validate:"required"`
	Tags    questionservice.Tags `json:"tags"`
}

// CommentRequest тело нового комментария.
type CommentRequest struct {
	QuestionID int64  `json:"questionId" validate:"required,gt=0"`
	Comment    string `json:"comment" validate:"required"`
}

// Created ответ на создание вопроса.
type Created struct {
	QuestionID int64    `json:"questionId"`
	Title      string   `json:"title"`
	Details    string   `json:"details"`
	Tags       []string `json:"tags"`
}

// QuestionLikes лайки вопроса.
type QuestionLikes struct {
	QuestionID int64 `json:"questionId"`
	models.Likes
}

// CommentLikes лайки комментария.
type CommentLikes struct {
	CommentID int64 `json:"commentId"`
	models.Likes
}

// Handler обрабатывает HTTP-запросы вопросов.
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

func (req Request) input() questionservice.Input {
	return questionservice.Input{Title: req.Title, Details: req.Details, Tags: req.Tags}
}

// Add godoc
// @Summary Создать вопрос
// @Tags Question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Вопрос"
// @Success 201 {object} response.Envelope{data=Created}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Вопрос с таким заголовком уже есть"
// @Router /question/addQuestion [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.Add")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req Request
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	q, err := h.service.Create(r.Context(), actor.UserID, req.input())
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	log.Info("question created", slog.Int64("question_id", q.ID))
	response.OK(w, r, http.StatusCreated, "question added successfully", Created{
		QuestionID: q.ID,
		Title:      q.Title,
		Details:    q.Details,
		Tags:       q.Tags,
	})
}

// ListAdmin godoc
// @Summary Все вопросы для администратора
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionListItem}
// @Failure 403 {object} response.ErrorResponse
// @Router /question/getQuestionAdmin [get]
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.ListAdmin")

	items, meta, err := h.service.ListAdmin(r.Context(), pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "questions fetched successfully", items, meta)
}

// Update godoc
// @Summary Изменить свой вопрос
// @Tags Question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вопроса"
// @Param request body Request true "Вопрос"
// @Success 200 {object} response.Envelope{data=models.Question}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /question/updateQuestion/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.Update")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}
	var req Request
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	q, err := h.service.Update(r.Context(), actor.UserID, id, req.input())
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "question updated successfully", q)
}

// Delete godoc
// @Summary Удалить свой вопрос (мягкое удаление)
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID вопроса"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /question/deleteQuestion/{id} [post]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.Delete")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "question deleted successfully", nil)
}

// record общий код для просмотров и лайков: questionId из query, 201 при успехе.
func (h *Handler) record(w http.ResponseWriter, r *http.Request, op, param, msg string,
	fn func(ctx context.Context, userID, id int64) error) {
	log := request.Logger(h.log, r, op)

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.QueryID(w, r, param)
	if !ok {
		return
	}
	if err := fn(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, msg, nil)
}

// AddView godoc
// @Summary Отметить просмотр вопроса
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param questionId query int true "ID вопроса"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Уже просмотрен"
// @Router /question/addQuestionsViews [post]
func (h *Handler) AddView(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, "handlers.question.AddView", "questionId", "view added successfully", h.service.AddView)
}

// AddLike godoc
// @Summary Лайкнуть вопрос
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param questionId query int true "ID вопроса"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Уже лайкнут"
// @Router /question/addQuestionLikes [post]
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, "handlers.question.AddLike", "questionId", "like added successfully", h.service.AddLike)
}

// RemoveLike godoc
// @Summary Убрать лайк вопроса
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param questionId query int true "ID вопроса"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /question/removeQuestionLikes [post]
func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.RemoveLike")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.QueryID(w, r, "questionId")
	if !ok {
		return
	}
	if err := h.service.RemoveLike(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "like removed successfully", nil)
}

// Likes godoc
// @Summary Лайки вопроса
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param questionId query int true "ID вопроса"
// @Success 200 {object} response.Envelope{data=QuestionLikes}
// @Failure 404 {object} response.ErrorResponse
// @Router /question/getQuestionLikes [get]
func (h *Handler) Likes(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.Likes")

	id, ok := request.QueryID(w, r, "questionId")
	if !ok {
		return
	}
	likes, err := h.service.Likes(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "likes fetched successfully", QuestionLikes{QuestionID: id, Likes: *likes})
}

// AddComment godoc
// @Summary Прокомментировать вопрос
// @Tags Question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CommentRequest true "Комментарий"
// @Success 201 {object} response.Envelope{data=models.Comment}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /question/addQuestionComments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.AddComment")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	var req CommentRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	c, err := h.service.AddComment(r.Context(), actor.UserID, req.QuestionID, req.Comment)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusCreated, "comment added successfully", c)
}

// DeleteComment godoc
// @Summary Удалить комментарий
// @Description Автор комментария или администратор.
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "ID комментария"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /question/deleteComment/{commentId} [post]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.DeleteComment")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.PathID(w, r, "commentId")
	if !ok {
		return
	}
	if err := h.service.DeleteComment(r.Context(), actor, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "comment deleted successfully", nil)
}

// Comments godoc
// @Summary Комментарии вопроса
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param questionId query int true "ID вопроса"
// @Success 200 {object} response.Envelope{data=[]models.Comment}
// @Failure 404 {object} response.ErrorResponse
// @Router /question/getQuestionComments [get]
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.Comments")

	id, ok := request.QueryID(w, r, "questionId")
	if !ok {
		return
	}
	comments, err := h.service.Comments(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "comments fetched successfully", comments)
}

// AddCommentLike godoc
// @Summary Лайкнуть комментарий
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param commentId query int true "ID комментария"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /question/addCommentsLike [post]
func (h *Handler) AddCommentLike(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, "handlers.question.AddCommentLike", "commentId", "like added successfully", h.service.AddCommentLike)
}

// RemoveCommentLike godoc
// @Summary Убрать лайк комментария
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param commentId query int true "ID комментария"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse
// @Router /question/removeCommentLike [post]
func (h *Handler) RemoveCommentLike(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.RemoveCommentLike")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	id, ok := request.QueryID(w, r, "commentId")
	if !ok {
		return
	}
	if err := h.service.RemoveCommentLike(r.Context(), actor.UserID, id); err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "like removed successfully", nil)
}

// CommentLikes godoc
// @Summary Лайки комментария
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param commentId query int true "ID комментария"
// @Success 200 {object} response.Envelope{data=CommentLikes}
// @Failure 404 {object} response.ErrorResponse
// @Router /question/getCommentLikes [get]
func (h *Handler) CommentLikes(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.CommentLikes")

	id, ok := request.QueryID(w, r, "commentId")
	if !ok {
		return
	}
	likes, err := h.service.CommentLikes(r.Context(), id)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "likes fetched successfully", CommentLikes{CommentID: id, Likes: *likes})
}

// ListPosted godoc
// @Summary Мои вопросы со счётчиками и статусом модерации
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionListItem}
// @Router /question/getCurrentUserPostedQuestions [get]
func (h *Handler) ListPosted(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.ListPosted")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, meta, err := h.service.ListPosted(r.Context(), actor.UserID, pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "questions fetched successfully", items, meta)
}

// ListMine godoc
// @Summary Мои неудалённые вопросы
// @Tags Question
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} response.Envelope{data=[]models.QuestionListItem}
// @Router /question/get-my-questions [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.question.ListMine")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}
	items, meta, err := h.service.ListMine(r.Context(), actor.UserID, pagination.FromRequest(r))
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.Page(w, r, "questions fetched successfully", items, meta)
}
