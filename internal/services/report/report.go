// Package report принимает жалобы на комментарии и отдаёт их администратору.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// Repository хранилище жалоб.
type Repository interface {
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	CreateReport(ctx context.Context, commentID, reportedBy int64, reason string) (int64, error)
	CountReports(ctx context.Context) (int, error)
	ListReports(ctx context.Context, limit, offset int) ([]models.ReportedComment, error)
}

// Service бизнес-логика жалоб.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис жалоб.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create сохраняет жалобу на существующий комментарий.
func (s *Service) Create(ctx context.Context, reporterID, commentID int64, reason string) (int64, error) {
	const op = "services.report.Create"

	reason = strings.TrimSpace(reason)
	if commentID <= 0 || reason == "" {
		return 0, apperr.ValidationErr("commentId and reason are required")
	}
	if _, err := s.repo.GetComment(ctx, commentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, apperr.NotFoundErr("comment not found")
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateReport(ctx, commentID, reporterID, reason)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, apperr.NotFoundErr("comment not found")
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает страницу жалоб. Страница за концом списка сдвигается на последнюю.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]models.ReportedComment, pagination.Meta, error) {
	const op = "services.report.List"

	total, err := s.repo.CountReports(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	p = p.Clamp(total)
	items, err := s.repo.ListReports(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}
