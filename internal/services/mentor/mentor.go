// Package mentor управляет программами наставничества.
// Список видимых программ кэшируется постранично в redis.
package mentor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/lib/upload"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// VisibleCachePrefix префикс ключей кэша видимых программ.
const VisibleCachePrefix = "mentor:visible:"

// Repository хранилище программ.
type Repository interface {
	CreateMentorProgram(ctx context.Context, m models.MentorProgram) (int64, error)
	GetMentorProgram(ctx context.Context, id int64) (*models.MentorProgram, error)
	ListMentorPrograms(ctx context.Context, limit, offset int) ([]models.MentorProgram, int, error)
	ListVisibleMentorPrograms(ctx context.Context, limit, offset int) ([]models.MentorProgram, int, error)
	UpdateMentorProgram(ctx context.Context, m models.MentorProgram) error
	DeleteMentorProgram(ctx context.Context, id int64) (*string, error)
	ToggleMentorProgramHidden(ctx context.Context, id int64) (bool, error)
}

// FileStore хранилище загруженных иконок.
type FileStore interface {
	Save(category string, fh *multipart.FileHeader, allowed ...string) (string, error)
	Remove(publicPath string)
}

// Cache кэш видимых программ.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Input поля программы из multipart-формы.
type Input struct {
	Title             string
	Subtitle          string
	AccessType        string
	Status            string
	SkillTiers        string
	Modules           string
	NewContentMonthly string
	Icon              *multipart.FileHeader
}

type cachedPage struct {
	Items []models.MentorProgram `json:"items"`
	Total int                    `json:"total"`
}

// Service бизнес-логика программ наставничества.
type Service struct {
	repo  Repository
	files FileStore
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// New создаёт сервис.
func New(repo Repository, files FileStore, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{repo: repo, files: files, cache: cache, ttl: ttl, log: log}
}

// ParseFlag разбирает булево поле формы: "true" и "1" дают true.
func ParseFlag(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	return v == "true" || v == "1"
}

func (in Input) program() (models.MentorProgram, error) {
	m := models.MentorProgram{
		Title:             strings.TrimSpace(in.Title),
		Subtitle:          strings.TrimSpace(in.Subtitle),
		AccessType:        strings.TrimSpace(in.AccessType),
		Status:            strings.TrimSpace(in.Status),
		SkillTiers:        strings.TrimSpace(in.SkillTiers),
		Modules:           strings.TrimSpace(in.Modules),
		NewContentMonthly: ParseFlag(in.NewContentMonthly),
	}
	if m.Title == "" || m.Subtitle == "" || m.AccessType == "" || m.Status == "" {
		return m, apperr.ValidationErr("title, subtitle, access_type and status are required")
	}
	return m, nil
}

// Create сохраняет программу с необязательной иконкой.
func (s *Service) Create(ctx context.Context, in Input) (*models.MentorProgram, error) {
	const op = "services.mentor.Create"

	m, err := in.program()
	if err != nil {
		return nil, err
	}
	if in.Icon != nil {
		path, err := s.files.Save(upload.MentorIcons, in.Icon, upload.ImageTypes...)
		if err != nil {
			return nil, err
		}
		m.Icon = &path
	}

	m.ID, err = s.repo.CreateMentorProgram(ctx, m)
	if err != nil {
		if m.Icon != nil {
			s.files.Remove(*m.Icon)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)
	return &m, nil
}

// List возвращает страницу всех программ для администратора.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]models.MentorProgram, pagination.Meta, error) {
	const op = "services.mentor.List"
	items, total, err := s.repo.ListMentorPrograms(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

// ListVisible возвращает страницу нескрытых программ, сначала из кэша.
func (s *Service) ListVisible(ctx context.Context, p pagination.Params) ([]models.MentorProgram, pagination.Meta, error) {
	const op = "services.mentor.ListVisible"
	log := s.log.With(slog.String("op", op))

	key := fmt.Sprintf("%s%d:%d", VisibleCachePrefix, p.Page, p.Limit)
	var page cachedPage
	found, err := s.cache.Get(ctx, key, &page)
	if err != nil {
		log.Warn("failed to read cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return page.Items, pagination.NewMeta(p, page.Total), nil
	}

	items, total, err := s.repo.ListVisibleMentorPrograms(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, cachedPage{Items: items, Total: total}, s.ttl); err != nil {
		log.Warn("failed to write cache", slog.String("key", key), sl.Err(err))
	}
	return items, pagination.NewMeta(p, total), nil
}

// Update перезаписывает программу. Новая иконка заменяет старую.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*models.MentorProgram, error) {
	const op = "services.mentor.Update"

	if id <= 0 {
		return nil, apperr.ValidationErr("id is required")
	}
	m, err := in.program()
	if err != nil {
		return nil, err
	}
	current, err := s.repo.GetMentorProgram(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("mentor program not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.ID = id
	m.Icon = current.Icon
	m.IsHidden = current.IsHidden
	m.CreatedAt = current.CreatedAt
	if in.Icon != nil {
		path, err := s.files.Save(upload.MentorIcons, in.Icon, upload.ImageTypes...)
		if err != nil {
			return nil, err
		}
		m.Icon = &path
	}

	if err := s.repo.UpdateMentorProgram(ctx, m); err != nil {
		if in.Icon != nil {
			s.files.Remove(*m.Icon)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("mentor program not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if in.Icon != nil && current.Icon != nil {
		s.files.Remove(*current.Icon)
	}
	s.invalidate(ctx)
	return &m, nil
}

// Delete удаляет программу и её иконку.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "services.mentor.Delete"
	icon, err := s.repo.DeleteMentorProgram(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("mentor program not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if icon != nil {
		s.files.Remove(*icon)
	}
	s.invalidate(ctx)
	return nil
}

// ToggleHidden скрывает или показывает программу и возвращает новое состояние.
func (s *Service) ToggleHidden(ctx context.Context, id int64) (bool, error) {
	const op = "services.mentor.ToggleHidden"
	hidden, err := s.repo.ToggleMentorProgramHidden(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, apperr.NotFoundErr("mentor program not found")
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)
	return hidden, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidatePrefix(ctx, VisibleCachePrefix); err != nil {
		s.log.Warn("failed to invalidate mentor cache", sl.Err(err))
	}
}
