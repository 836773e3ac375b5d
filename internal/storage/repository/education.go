package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// CreateEducationContent сохраняет обучающий материал.
func (s *Storage) CreateEducationContent(ctx context.Context, c models.EducationContent) (int64, error) {
	const op = "storage.CreateEducationContent"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO education_content (title, description) VALUES ($1, $2) RETURNING id`,
		c.Title, c.Description).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetEducationContent возвращает обучающий материал по ID.
func (s *Storage) GetEducationContent(ctx context.Context, id int64) (*models.EducationContent, error) {
	const op = "storage.GetEducationContent"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	var c models.EducationContent
	if err := s.executor(ctx).QueryRowContext(ctx,
		`SELECT id, title, description, created_at FROM education_content WHERE id = $1`, id).Scan(
		&c.ID, &c.Title, &c.Description, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &c, nil
}

// ListEducationContent возвращает страницу обучающих материалов, новые первыми.
func (s *Storage) ListEducationContent(ctx context.Context, limit, offset int) ([]models.EducationContent, int, error) {
	const op = "storage.ListEducationContent"
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM education_content`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.executor(ctx).QueryContext(ctx,
		`SELECT id, title, description, created_at FROM education_content
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.EducationContent, 0, limit)
	for rows.Next() {
		var c models.EducationContent
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}
