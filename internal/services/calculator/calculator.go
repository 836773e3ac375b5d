// Package calculator управляет карточками калькуляторов.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/lib/upload"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// VisibleCacheKey ключ кэша видимых калькуляторов.
const VisibleCacheKey = "calculators:visible"

const (
	minTitleLen    = 3
	maxTitleLen    = 100
	maxSubtitleLen = 200
)

// Repository хранилище калькуляторов.
type Repository interface {
	CreateCalculator(ctx context.Context, c models.Calculator) (int64, error)
	GetCalculator(ctx context.Context, id int64) (*models.Calculator, error)
	ListCalculators(ctx context.Context, onlyVisible bool) ([]models.Calculator, error)
	UpdateCalculator(ctx context.Context, c models.Calculator) error
	DeleteCalculator(ctx context.Context, id int64) (*string, error)
	ToggleCalculatorHidden(ctx context.Context, id int64) (bool, error)
	ToggleCalculatorComingSoon(ctx context.Context, id int64) (bool, error)
}

// FileStore хранилище иконок.
type FileStore interface {
	Save(category string, fh *multipart.FileHeader, allowed ...string) (string, error)
	Remove(publicPath string)
}

// Cache кэш видимых калькуляторов.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Input поля калькулятора из multipart-формы.
type Input struct {
	Title      string
	Subtitle   string
	ComingSoon string
	Icon       *multipart.FileHeader
}

// Service бизнес-логика калькуляторов.
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

// ParseComingSoon принимает true/false/1/0, пустое значение означает false.
func ParseComingSoon(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "false", "0":
		return false, nil
	case "true", "1":
		return true, nil
	}
	return false, apperr.ValidationErr("coming_soon must be true, false, 1 or 0")
}

func (in Input) calculator() (models.Calculator, error) {
	c := models.Calculator{
		Title:    strings.TrimSpace(in.Title),
		Subtitle: strings.TrimSpace(in.Subtitle),
	}
	if n := utf8.RuneCountInString(c.Title); n < minTitleLen || n > maxTitleLen {
		return c, apperr.ValidationErr(fmt.Sprintf("title must be between %d and %d characters", minTitleLen, maxTitleLen))
	}
	if utf8.RuneCountInString(c.Subtitle) > maxSubtitleLen {
		return c, apperr.ValidationErr(fmt.Sprintf("subtitle must be at most %d characters", maxSubtitleLen))
	}
	var err error
	c.ComingSoon, err = ParseComingSoon(in.ComingSoon)
	return c, err
}

func writeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperr.ConflictErr("calculator with this title already exists")
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NotFoundErr("calculator not found")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Create сохраняет калькулятор.
func (s *Service) Create(ctx context.Context, in Input) (*models.Calculator, error) {
	const op = "services.calculator.Create"

	c, err := in.calculator()
	if err != nil {
		return nil, err
	}
	if in.Icon != nil {
		path, err := s.files.Save(upload.CalculatorIcons, in.Icon, upload.ImageTypes...)
		if err != nil {
			return nil, err
		}
		c.Icon = &path
	}

	c.ID, err = s.repo.CreateCalculator(ctx, c)
	if err != nil {
		if c.Icon != nil {
			s.files.Remove(*c.Icon)
		}
		return nil, writeError(op, err)
	}
	s.invalidate(ctx)
	return &c, nil
}

// List возвращает все калькуляторы.
func (s *Service) List(ctx context.Context) ([]models.Calculator, error) {
	const op = "services.calculator.List"
	items, err := s.repo.ListCalculators(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListVisible возвращает нескрытые калькуляторы, сначала из кэша.
func (s *Service) ListVisible(ctx context.Context) ([]models.Calculator, error) {
	const op = "services.calculator.ListVisible"
	log := s.log.With(slog.String("op", op))

	var items []models.Calculator
	found, err := s.cache.Get(ctx, VisibleCacheKey, &items)
	if err != nil {
		log.Warn("failed to read cache", sl.Err(err))
	}
	if found {
		return items, nil
	}

	items, err = s.repo.ListCalculators(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, VisibleCacheKey, items, s.ttl); err != nil {
		log.Warn("failed to write cache", sl.Err(err))
	}
	return items, nil
}

// Update перезаписывает калькулятор. Новая иконка заменяет старую.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*models.Calculator, error) {
	const op = "services.calculator.Update"

	c, err := in.calculator()
	if err != nil {
		return nil, err
	}
	current, err := s.repo.GetCalculator(ctx, id)
	if err != nil {
		return nil, writeError(op, err)
	}

	c.ID = id
	c.Icon = current.Icon
	c.IsHidden = current.IsHidden
	c.CreatedAt = current.CreatedAt
	if in.Icon != nil {
		path, err := s.files.Save(upload.CalculatorIcons, in.Icon, upload.ImageTypes...)
		if err != nil {
			return nil, err
		}
		c.Icon = &path
	}

	if err := s.repo.UpdateCalculator(ctx, c); err != nil {
		if in.Icon != nil {
			s.files.Remove(*c.Icon)
		}
		return nil, writeError(op, err)
	}
	if in.Icon != nil && current.Icon != nil {
		s.files.Remove(*current.Icon)
	}
	s.invalidate(ctx)
	return &c, nil
}

// Delete удаляет калькулятор и его иконку.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "services.calculator.Delete"
	icon, err := s.repo.DeleteCalculator(ctx, id)
	if err != nil {
		return writeError(op, err)
	}
	if icon != nil {
		s.files.Remove(*icon)
	}
	s.invalidate(ctx)
	return nil
}

// ToggleHidden инвертирует флаг скрытия.
func (s *Service) ToggleHidden(ctx context.Context, id int64) (bool, error) {
	const op = "services.calculator.ToggleHidden"
	v, err := s.repo.ToggleCalculatorHidden(ctx, id)
	if err != nil {
		return false, writeError(op, err)
	}
	s.invalidate(ctx)
	return v, nil
}

// ToggleComingSoon инвертирует флаг "скоро".
func (s *Service) ToggleComingSoon(ctx context.Context, id int64) (bool, error) {
	const op = "services.calculator.ToggleComingSoon"
	v, err := s.repo.ToggleCalculatorComingSoon(ctx, id)
	if err != nil {
		return false, writeError(op, err)
	}
	s.invalidate(ctx)
	return v, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, VisibleCacheKey); err != nil {
		s.log.Warn("failed to invalidate calculator cache", sl.Err(err))
	}
}
