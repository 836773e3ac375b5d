// Package template управляет загружаемыми шаблонами и доступом к ним по подписке.
package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/lib/upload"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// CachePrefix префикс ключей кэша списков шаблонов.
const CachePrefix = "templates:"

// Уровни видимости списка.
const (
	TierAll  = "all"
	TierPro  = models.AccessPro
	TierFree = models.AccessFree
)

// Repository хранилище шаблонов.
type Repository interface {
	CreateTemplate(ctx context.Context, t models.TemplatePdf) (int64, error)
	GetTemplate(ctx context.Context, id int64) (*models.TemplatePdf, error)
	ListTemplates(ctx context.Context, access []string) ([]models.TemplatePdf, error)
	UpdateTemplate(ctx context.Context, t models.TemplatePdf) error
	DeleteTemplate(ctx context.Context, id int64) (string, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// FileStore хранилище файлов шаблонов.
type FileStore interface {
	Save(category string, fh *multipart.FileHeader, allowed ...string) (string, error)
	Remove(publicPath string)
}

// Cache кэш списков по уровню доступа.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// Input поля шаблона из multipart-формы.
type Input struct {
	Name   string
	Type   string
	Access string
	File   *multipart.FileHeader
}

// Service бизнес-логика шаблонов.
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

func (in Input) template(defaultAccess bool) (models.TemplatePdf, error) {
	t := models.TemplatePdf{
		Name:   strings.TrimSpace(in.Name),
		Type:   strings.TrimSpace(in.Type),
		Access: strings.ToLower(strings.TrimSpace(in.Access)),
	}
	if t.Access == "" && defaultAccess {
		t.Access = models.AccessFree
	}
	if t.Name == "" || t.Type == "" || t.Access == "" {
		return t, apperr.ValidationErr("name, type and access are required")
	}
	if t.Access != models.AccessFree && t.Access != models.AccessPro {
		return t, apperr.ValidationErr("access must be free or pro")
	}
	return t, nil
}

// Create загружает файл шаблона и сохраняет запись.
func (s *Service) Create(ctx context.Context, in Input) (*models.TemplatePdf, error) {
	const op = "services.template.Create"

	if in.File == nil {
		return nil, apperr.ValidationErr("file is required")
	}
	t, err := in.template(true)
	if err != nil {
		return nil, err
	}
	if t.FilePath, err = s.files.Save(upload.TemplatesPdf, in.File, upload.TemplateTypes...); err != nil {
		return nil, err
	}

	t.ID, err = s.repo.CreateTemplate(ctx, t)
	if err != nil {
		s.files.Remove(t.FilePath)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)
	return &t, nil
}

// TierFor определяет уровень видимости: администратор видит всё,
// подписчик pro видит free и pro, остальные только free.
func TierFor(user *models.User) string {
	switch {
	case user.UserType == models.UserTypeAdmin:
		return TierAll
	case user.SubscriptionType == models.SubscriptionPro:
		return TierPro
	default:
		return TierFree
	}
}

func accessFor(tier string) []string {
	switch tier {
	case TierAll:
		return nil
	case TierPro:
		return []string{models.AccessFree, models.AccessPro}
	default:
		return []string{models.AccessFree}
	}
}

// List возвращает шаблоны, доступные пользователю, новые первыми.
func (s *Service) List(ctx context.Context, userID int64) ([]models.TemplatePdf, error) {
	const op = "services.template.List"
	log := s.log.With(slog.String("op", op))

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("user not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tier := TierFor(user)
	key := CachePrefix + tier

	var items []models.TemplatePdf
	found, err := s.cache.Get(ctx, key, &items)
	if err != nil {
		log.Warn("failed to read cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return items, nil
	}

	items, err = s.repo.ListTemplates(ctx, accessFor(tier))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, items, s.ttl); err != nil {
		log.Warn("failed to write cache", slog.String("key", key), sl.Err(err))
	}
	return items, nil
}

// Update перезаписывает шаблон. Новый файл заменяет старый.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*models.TemplatePdf, error) {
	const op = "services.template.Update"

	if id <= 0 {
		return nil, apperr.ValidationErr("id is required")
	}
	t, err := in.template(false)
	if err != nil {
		return nil, err
	}
	current, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("template not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	t.ID = id
	t.FilePath = current.FilePath
	t.UploadedAt = current.UploadedAt
	if in.File != nil {
		if t.FilePath, err = s.files.Save(upload.TemplatesPdf, in.File, upload.TemplateTypes...); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		if in.File != nil {
			s.files.Remove(t.FilePath)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("template not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if in.File != nil {
		s.files.Remove(current.FilePath)
	}
	s.invalidate(ctx)
	return &t, nil
}

// Delete удаляет шаблон и его файл.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "services.template.Delete"
	path, err := s.repo.DeleteTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("template not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.files.Remove(path)
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.InvalidatePrefix(ctx, CachePrefix); err != nil {
		s.log.Warn("failed to invalidate template cache", sl.Err(err))
	}
}
