// Package education управляет обучающими материалами.
package education

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// Repository хранилище материалов.
type Repository interface {
	CreateEducationContent(ctx context.Context, c models.EducationContent) (int64, error)
	ListEducationContent(ctx context.Context, limit, offset int) ([]models.EducationContent, int, error)
}

// Service бизнес-логика материалов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create добавляет материал.
func (s *Service) Create(ctx context.Context, title, description string) (*models.EducationContent, error) {
	const op = "services.education.Create"

	c := models.EducationContent{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if c.Title == "" {
		return nil, apperr.ValidationErr("title is required")
	}
	if utf8.RuneCountInString(c.Title) > models.MaxTitleLen {
		return nil, apperr.ValidationErr(fmt.Sprintf("title must be at most %d characters", models.MaxTitleLen))
	}
	id, err := s.repo.CreateEducationContent(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.ID = id
	return &c, nil
}

// List возвращает страницу материалов.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]models.EducationContent, pagination.Meta, error) {
	const op = "services.education.List"
	items, total, err := s.repo.ListEducationContent(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}
