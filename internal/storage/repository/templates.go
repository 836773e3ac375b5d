package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const templateColumns = `id, name, type, access, file_path, uploaded_at`

func scanTemplate(row rowScanner) (*models.TemplatePdf, error) {
	var t models.TemplatePdf
	if err := row.Scan(&t.ID, &t.Name, &t.Type, &t.Access, &t.FilePath, &t.UploadedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTemplate сохраняет шаблон.
func (s *Storage) CreateTemplate(ctx context.Context, t models.TemplatePdf) (int64, error) {
	const op = "storage.CreateTemplate"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO templates_pdf (name, type, access, file_path) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.Type, t.Access, t.FilePath).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetTemplate возвращает шаблон по ID.
func (s *Storage) GetTemplate(ctx context.Context, id int64) (*models.TemplatePdf, error) {
	const op = "storage.GetTemplate"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	t, err := scanTemplate(s.executor(ctx).QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM templates_pdf WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return t, nil
}

// ListTemplates возвращает шаблоны с указанными уровнями доступа, новые первыми.
// Пустой список уровней означает все шаблоны.
func (s *Storage) ListTemplates(ctx context.Context, access []string) ([]models.TemplatePdf, error) {
	const op = "storage.ListTemplates"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + templateColumns + ` FROM templates_pdf`
	args := make([]any, 0, len(access))
	if len(access) > 0 {
		placeholders := make([]string, 0, len(access))
		for _, a := range access {
			args = append(args, a)
			placeholders = append(placeholders, "$"+strconv.Itoa(len(args)))
		}
		query += ` WHERE access IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY uploaded_at DESC, id DESC`

	rows, err := s.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.TemplatePdf{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTemplate перезаписывает поля шаблона.
func (s *Storage) UpdateTemplate(ctx context.Context, t models.TemplatePdf) error {
	const op = "storage.UpdateTemplate"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.executor(ctx).ExecContext(ctx,
		`UPDATE templates_pdf SET name = $1, type = $2, access = $3, file_path = $4 WHERE id = $5`,
		t.Name, t.Type, t.Access, t.FilePath, t.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteTemplate удаляет шаблон и возвращает путь к его файлу.
func (s *Storage) DeleteTemplate(ctx context.Context, id int64) (string, error) {
	const op = "storage.DeleteTemplate"
	if err := ctxErr(ctx, op); err != nil {
		return "", err
	}

	var filePath string
	if err := s.executor(ctx).QueryRowContext(ctx,
		`DELETE FROM templates_pdf WHERE id = $1 RETURNING file_path`, id).Scan(&filePath); err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return filePath, nil
}
