// Package ads управляет рекламными баннерами.
package ads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/upload"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// DateLayout формат дат показа баннера.
const DateLayout = "2006-01-02"

// Repository хранилище баннеров.
type Repository interface {
	CreateAd(ctx context.Context, a models.Ad) (int64, error)
	GetAd(ctx context.Context, id int64) (*models.Ad, error)
	ListAds(ctx context.Context) ([]models.Ad, error)
	UpdateAd(ctx context.Context, id int64, p models.AdPatch) error
	DeleteAd(ctx context.Context, id int64) (string, error)
}

// FileStore хранилище загруженных файлов.
type FileStore interface {
	Save(category string, fh *multipart.FileHeader, allowed ...string) (string, error)
	Remove(publicPath string)
}

// CreateInput поля нового баннера.
type CreateInput struct {
	Title      string
	Subtitle   string
	ButtonText string
	ButtonURL  string
	StartDate  string
	EndDate    string
	Image      *multipart.FileHeader
}

// UpdateInput частичное обновление: nil означает "не менять".
type UpdateInput struct {
	Title      *string
	Subtitle   *string
	ButtonText *string
	ButtonURL  *string
	StartDate  *string
	EndDate    *string
	Image      *multipart.FileHeader
}

// Service бизнес-логика баннеров.
type Service struct {
	repo  Repository
	files FileStore
	log   *slog.Logger
}

// New создаёт сервис баннеров.
func New(repo Repository, files FileStore, log *slog.Logger) *Service {
	return &Service{repo: repo, files: files, log: log}
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperr.ValidationErr(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return t, nil
}

// Create сохраняет баннер с изображением.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Ad, error) {
	const op = "services.ads.Create"

	a := models.Ad{
		Title:      strings.TrimSpace(in.Title),
		Subtitle:   strings.TrimSpace(in.Subtitle),
		ButtonText: strings.TrimSpace(in.ButtonText),
		ButtonURL:  strings.TrimSpace(in.ButtonURL),
	}
	if a.Title == "" || a.Subtitle == "" || a.ButtonText == "" || a.ButtonURL == "" ||
		in.StartDate == "" || in.EndDate == "" || in.Image == nil {
		return nil, apperr.ValidationErr("all fields are required")
	}
	var err error
	if a.StartDate, err = parseDate("start_date", in.StartDate); err != nil {
		return nil, err
	}
	if a.EndDate, err = parseDate("end_date", in.EndDate); err != nil {
		return nil, err
	}
	if a.EndDate.Before(a.StartDate) {
		return nil, apperr.ValidationErr("end_date must not be before start_date")
	}

	if a.ImageURL, err = s.files.Save(upload.AdsImages, in.Image, upload.ImageTypes...); err != nil {
		return nil, err
	}

	a.ID, err = s.repo.CreateAd(ctx, a)
	if err != nil {
		s.files.Remove(a.ImageURL)
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.ConflictErr("ad with this title and period already exists")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

// List возвращает все баннеры, новые первыми.
func (s *Service) List(ctx context.Context) ([]models.Ad, error) {
	const op = "services.ads.List"
	items, err := s.repo.ListAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

// Update меняет переданные поля баннера. Старое изображение удаляется после успешной замены.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*models.Ad, error) {
	const op = "services.ads.Update"

	patch := models.AdPatch{
		Title:      trimmed(in.Title),
		Subtitle:   trimmed(in.Subtitle),
		ButtonText: trimmed(in.ButtonText),
		ButtonURL:  trimmed(in.ButtonURL),
	}
	if v := trimmed(in.StartDate); v != nil {
		t, err := parseDate("start_date", *v)
		if err != nil {
			return nil, err
		}
		patch.StartDate = &t
	}
	if v := trimmed(in.EndDate); v != nil {
		t, err := parseDate("end_date", *v)
		if err != nil {
			return nil, err
		}
		patch.EndDate = &t
	}
	if patch.Empty() && in.Image == nil {
		return nil, apperr.ValidationErr("nothing to update")
	}

	current, err := s.repo.GetAd(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("ad not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.Image != nil {
		path, err := s.files.Save(upload.AdsImages, in.Image, upload.ImageTypes...)
		if err != nil {
			return nil, err
		}
		patch.ImageURL = &path
	}

	if err := s.repo.UpdateAd(ctx, id, patch); err != nil {
		if patch.ImageURL != nil {
			s.files.Remove(*patch.ImageURL)
		}
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperr.NotFoundErr("ad not found")
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, apperr.ConflictErr("ad with this title and period already exists")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if patch.ImageURL != nil && current.ImageURL != *patch.ImageURL {
		s.files.Remove(current.ImageURL)
	}

	updated, err := s.repo.GetAd(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete удаляет баннер и его изображение.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "services.ads.Delete"
	image, err := s.repo.DeleteAd(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("ad not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.files.Remove(image)
	return nil
}
