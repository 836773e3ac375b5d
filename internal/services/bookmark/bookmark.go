// Package bookmark управляет закладками на вопросы и обучающие материалы.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// Repository хранилище закладок.
type Repository interface {
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	AddQuestionBookmark(ctx context.Context, userID, questionID int64) error
	DeleteQuestionBookmark(ctx context.Context, userID, questionID int64) error
	ListQuestionBookmarks(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionBookmark, int, error)

	GetEducationContent(ctx context.Context, id int64) (*models.EducationContent, error)
	AddContentBookmark(ctx context.Context, userID, contentID int64) error
	DeleteContentBookmark(ctx context.Context, userID, contentID int64) error
	ListContentBookmarks(ctx context.Context, userID int64, limit, offset int) ([]models.ContentBookmark, int, error)
}

// Service бизнес-логика закладок.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис закладок.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// AddQuestion добавляет неудалённый вопрос в закладки.
func (s *Service) AddQuestion(ctx context.Context, userID, questionID int64) error {
	const op = "services.bookmark.AddQuestion"

	q, err := s.repo.GetQuestion(ctx, questionID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFoundErr("question not found")
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	case q.IsDeleted:
		return apperr.NotFoundErr("question not found")
	}

	return addError(op, s.repo.AddQuestionBookmark(ctx, userID, questionID),
		"question already bookmarked", "question not found")
}

// RemoveQuestion удаляет вопрос из закладок.
func (s *Service) RemoveQuestion(ctx context.Context, userID, questionID int64) error {
	const op = "services.bookmark.RemoveQuestion"
	if err := s.repo.DeleteQuestionBookmark(ctx, userID, questionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("bookmark not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListQuestions возвращает страницу закладок на вопросы.
func (s *Service) ListQuestions(ctx context.Context, userID int64, p pagination.Params) ([]models.QuestionBookmark, pagination.Meta, error) {
	const op = "services.bookmark.ListQuestions"
	items, total, err := s.repo.ListQuestionBookmarks(ctx, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

// AddContent добавляет обучающий материал в закладки.
func (s *Service) AddContent(ctx context.Context, userID, contentID int64) error {
	const op = "services.bookmark.AddContent"

	if _, err := s.repo.GetEducationContent(ctx, contentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("education content not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return addError(op, s.repo.AddContentBookmark(ctx, userID, contentID),
		"education content already bookmarked", "education content not found")
}

// RemoveContent удаляет материал из закладок.
func (s *Service) RemoveContent(ctx context.Context, userID, contentID int64) error {
	const op = "services.bookmark.RemoveContent"
	if err := s.repo.DeleteContentBookmark(ctx, userID, contentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("bookmark not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListContent возвращает страницу закладок на материалы.
func (s *Service) ListContent(ctx context.Context, userID int64, p pagination.Params) ([]models.ContentBookmark, pagination.Meta, error) {
	const op = "services.bookmark.ListContent"
	items, total, err := s.repo.ListContentBookmarks(ctx, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

func addError(op string, err error, duplicateMsg, missingMsg string) error {
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
