// Package question содержит логику вопросов: публикация, правка, удаление,
// просмотры, лайки и комментарии.
package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// Repository хранилище вопросов и активности по ним.
type Repository interface {
	CreateQuestion(ctx context.Context, q models.Question) (int64, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	UpdateQuestion(ctx context.Context, q models.Question) error
	SoftDeleteQuestion(ctx context.Context, userID, id int64) error
	ListQuestionsAdmin(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error)
	ListUserPostedQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error)
	ListUserQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error)

	AddQuestionView(ctx context.Context, questionID, userID int64) error
	AddQuestionLike(ctx context.Context, questionID, userID int64) error
	RemoveQuestionLike(ctx context.Context, questionID, userID int64) error
	ListQuestionLikes(ctx context.Context, questionID int64) ([]models.UserRef, error)

	AddComment(ctx context.Context, c models.Comment) (int64, error)
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	SoftDeleteComment(ctx context.Context, id int64) error
	ListComments(ctx context.Context, questionID int64) ([]models.Comment, error)
	AddCommentLike(ctx context.Context, commentID, userID int64) error
	RemoveCommentLike(ctx context.Context, commentID, userID int64) error
	ListCommentLikes(ctx context.Context, commentID int64) ([]models.UserRef, error)
}

// Input поля вопроса при создании и правке.
type Input struct {
	Title   string
	Details string
	Tags    []string
}

// Service бизнес-логика вопросов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис вопросов.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func normalize(in Input) (Input, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Details = strings.TrimSpace(in.Details)
	if in.Title == "" || in.Details == "" {
		return in, apperr.ValidationErr("title and details are required")
	}
	if utf8.RuneCountInString(in.Title) > models.MaxTitleLen {
		return in, apperr.ValidationErr(fmt.Sprintf("title must be at most %d characters", models.MaxTitleLen))
	}
	tags, err := NormalizeTags(in.Tags)
	if err != nil {
		return in, err
	}
	in.Tags = tags
	return in, nil
}

// Create публикует вопрос от имени пользователя. Вопрос попадает на модерацию.
func (s *Service) Create(ctx context.Context, userID int64, in Input) (*models.Question, error) {
	const op = "services.question.Create"

	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	q := models.Question{UserID: userID, Title: in.Title, Details: in.Details, Tags: in.Tags}
	id, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.ConflictErr("you have already posted a question with this title")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	q.ID = id
	return &q, nil
}

// Update правит собственный неудалённый вопрос.
func (s *Service) Update(ctx context.Context, userID, id int64, in Input) (*models.Question, error) {
	const op = "services.question.Update"

	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	q := models.Question{ID: id, UserID: userID, Title: in.Title, Details: in.Details, Tags: in.Tags}
	if err := s.repo.UpdateQuestion(ctx, q); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperr.NotFoundErr("question not found")
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, apperr.ConflictErr("you have already posted a question with this title")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &q, nil
}

// Delete мягко удаляет собственный вопрос.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	const op = "services.question.Delete"

	if err := s.repo.SoftDeleteQuestion(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("question not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type listFunc func(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error)

func (s *Service) page(ctx context.Context, op string, p pagination.Params, list listFunc) ([]models.QuestionListItem, pagination.Meta, error) {
	items, total, err := list(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

// ListAdmin возвращает все неудалённые вопросы для администратора.
func (s *Service) ListAdmin(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	return s.page(ctx, "services.question.ListAdmin", p, s.repo.ListQuestionsAdmin)
}

// ListPosted возвращает вопросы пользователя со статусом модерации и счётчиками.
func (s *Service) ListPosted(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	return s.page(ctx, "services.question.ListPosted", p, func(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
		return s.repo.ListUserPostedQuestions(ctx, userID, limit, offset)
	})
}

// ListMine возвращает неудалённые вопросы пользователя.
func (s *Service) ListMine(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	return s.page(ctx, "services.question.ListMine", p, func(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
		return s.repo.ListUserQuestions(ctx, userID, limit, offset)
	})
}

// activeQuestion возвращает неудалённый вопрос или NotFound.
func (s *Service) activeQuestion(ctx context.Context, op string, id int64) (*models.Question, error) {
	q, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("question not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if q.IsDeleted {
		return nil, apperr.NotFoundErr("question not found")
	}
	return q, nil
}

// activeComment возвращает неудалённый комментарий или NotFound.
func (s *Service) activeComment(ctx context.Context, op string, id int64) (*models.Comment, error) {
	c, err := s.repo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("comment not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// recordOnce переводит ошибки однократной записи в ошибки API.
func recordOnce(op string, err error, duplicateMsg, missingMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperr.ConflictErr(duplicateMsg)
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFoundErr(missingMsg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// AddView фиксирует просмотр вопроса. Повторный просмотр даёт Conflict.
func (s *Service) AddView(ctx context.Context, userID, questionID int64) error {
	const op = "services.question.AddView"
	if _, err := s.activeQuestion(ctx, op, questionID); err != nil {
		return err
	}
	return recordOnce(op, s.repo.AddQuestionView(ctx, questionID, userID),
		"question already viewed", "question not found")
}

// AddLike отмечает вопрос. Повторный лайк даёт Conflict.
func (s *Service) AddLike(ctx context.Context, userID, questionID int64) error {
	const op = "services.question.AddLike"
	if _, err := s.activeQuestion(ctx, op, questionID); err != nil {
		return err
	}
	return recordOnce(op, s.repo.AddQuestionLike(ctx, questionID, userID),
		"question already liked", "question not found")
}

// RemoveLike снимает лайк с вопроса.
func (s *Service) RemoveLike(ctx context.Context, userID, questionID int64) error {
	const op = "services.question.RemoveLike"
	if err := s.repo.RemoveQuestionLike(ctx, questionID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("like not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Likes возвращает список отметивших вопрос.
func (s *Service) Likes(ctx context.Context, questionID int64) (*models.Likes, error) {
	const op = "services.question.Likes"
	if _, err := s.activeQuestion(ctx, op, questionID); err != nil {
		return nil, err
	}
	users, err := s.repo.ListQuestionLikes(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Likes{TotalLikes: len(users), Users: users}, nil
}

// AddComment добавляет комментарий к вопросу.
func (s *Service) AddComment(ctx context.Context, userID, questionID int64, text string) (*models.Comment, error) {
	const op = "services.question.AddComment"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.ValidationErr("comment is required")
	}
	if _, err := s.activeQuestion(ctx, op, questionID); err != nil {
		return nil, err
	}
	c := models.Comment{QuestionID: questionID, UserID: userID, Comment: text}
	id, err := s.repo.AddComment(ctx, c)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("question not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.ID = id
	return &c, nil
}

// DeleteComment мягко удаляет комментарий. Удалять может автор или администратор.
func (s *Service) DeleteComment(ctx context.Context, actor models.Actor, commentID int64) error {
	const op = "services.question.DeleteComment"

	c, err := s.activeComment(ctx, op, commentID)
	if err != nil {
		return err
	}
	if c.UserID != actor.UserID && !actor.IsAdmin() {
		return apperr.ForbiddenErr("you can delete only your own comments")
	}
	if err := s.repo.SoftDeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("comment not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Comments возвращает комментарии к вопросу.
func (s *Service) Comments(ctx context.Context, questionID int64) ([]models.Comment, error) {
	const op = "services.question.Comments"
	if _, err := s.activeQuestion(ctx, op, questionID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListComments(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return comments, nil
}

// AddCommentLike отмечает комментарий. Повторный лайк даёт Conflict.
func (s *Service) AddCommentLike(ctx context.Context, userID, commentID int64) error {
	const op = "services.question.AddCommentLike"
	if _, err := s.activeComment(ctx, op, commentID); err != nil {
		return err
	}
	return recordOnce(op, s.repo.AddCommentLike(ctx, commentID, userID),
		"comment already liked", "comment not found")
}

// RemoveCommentLike снимает лайк с комментария.
func (s *Service) RemoveCommentLike(ctx context.Context, userID, commentID int64) error {
	const op = "services.question.RemoveCommentLike"
	if err := s.repo.RemoveCommentLike(ctx, commentID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("like not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CommentLikes возвращает список отметивших комментарий.
func (s *Service) CommentLikes(ctx context.Context, commentID int64) (*models.Likes, error) {
	const op = "services.question.CommentLikes"
	if _, err := s.activeComment(ctx, op, commentID); err != nil {
		return nil, err
	}
	users, err := s.repo.ListCommentLikes(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Likes{TotalLikes: len(users), Users: users}, nil
}
