package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const adColumns = `id, title, subtitle, button_text, button_url, image_url, start_date, end_date, created_at, updated_at`

func scanAd(row rowScanner) (*models.Ad, error) {
	var (
		a         models.Ad
		updatedAt sql.NullTime
	)
	if err := row.Scan(&a.ID, &a.Title, &a.Subtitle, &a.ButtonText, &a.ButtonURL, &a.ImageURL,
		&a.StartDate, &a.EndDate, &a.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}
	return &a, nil
}

// CreateAd сохраняет баннер. Совпадение заголовка и периода показа даёт storage.ErrAlreadyExists.
func (s *Storage) CreateAd(ctx context.Context, a models.Ad) (int64, error) {
	const op = "storage.CreateAd"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO ads (title, subtitle, button_text, button_url, image_url, start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx, query, a.Title, a.Subtitle, a.ButtonText, a.ButtonURL,
		a.ImageURL, a.StartDate, a.EndDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetAd возвращает баннер по ID.
func (s *Storage) GetAd(ctx context.Context, id int64) (*models.Ad, error) {
	const op = "storage.GetAd"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	a, err := scanAd(s.executor(ctx).QueryRowContext(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return a, nil
}

// ListAds возвращает все баннеры, новые первыми.
func (s *Storage) ListAds(ctx context.Context) ([]models.Ad, error) {
	const op = "storage.ListAds"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.executor(ctx).QueryContext(ctx, `SELECT `+adColumns+` FROM ads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Ad{}
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateAd обновляет только переданные в патче поля.
func (s *Storage) UpdateAd(ctx context.Context, id int64, p models.AdPatch) error {
	const op = "storage.UpdateAd"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Subtitle != nil {
		add("subtitle", *p.Subtitle)
	}
	if p.ButtonText != nil {
		add("button_text", *p.ButtonText)
	}
	if p.ButtonURL != nil {
		add("button_url", *p.ButtonURL)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.StartDate != nil {
		add("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		add("end_date", *p.EndDate)
	}
	if len(sets) == 0 {
		return fmt.Errorf("%s: empty patch", op)
	}

	args = append(args, id)
	query := `UPDATE ads SET ` + strings.Join(sets, ", ") + `, updated_at = NOW() WHERE id = $` + strconv.Itoa(len(args))
	res, err := s.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteAd удаляет баннер и возвращает путь к его изображению.
func (s *Storage) DeleteAd(ctx context.Context, id int64) (string, error) {
	const op = "storage.DeleteAd"
	if err := ctxErr(ctx, op); err != nil {
		return "", err
	}

	var imageURL string
	if err := s.executor(ctx).QueryRowContext(ctx,
		`DELETE FROM ads WHERE id = $1 RETURNING image_url`, id).Scan(&imageURL); err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return imageURL, nil
}
