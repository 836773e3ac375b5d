package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const calculatorColumns = `id, title, subtitle, icon, coming_soon, is_hidden, created_at, updated_at`

func scanCalculator(row rowScanner) (*models.Calculator, error) {
	var (
		c         models.Calculator
		icon      sql.NullString
		updatedAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Subtitle, &icon, &c.ComingSoon, &c.IsHidden,
		&c.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if icon.Valid {
		c.Icon = &icon.String
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}
	return &c, nil
}

// CreateCalculator сохраняет калькулятор. Занятый заголовок даёт storage.ErrAlreadyExists.
func (s *Storage) CreateCalculator(ctx context.Context, c models.Calculator) (int64, error) {
	const op = "storage.CreateCalculator"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO calculators (title, subtitle, icon, coming_soon) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Title, c.Subtitle, c.Icon, c.ComingSoon).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetCalculator возвращает калькулятор по ID.
func (s *Storage) GetCalculator(ctx context.Context, id int64) (*models.Calculator, error) {
	const op = "storage.GetCalculator"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	c, err := scanCalculator(s.executor(ctx).QueryRowContext(ctx,
		`SELECT `+calculatorColumns+` FROM calculators WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return c, nil
}

// ListCalculators возвращает калькуляторы; onlyVisible отбрасывает скрытые.
func (s *Storage) ListCalculators(ctx context.Context, onlyVisible bool) ([]models.Calculator, error) {
	const op = "storage.ListCalculators"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + calculatorColumns + ` FROM calculators`
	if onlyVisible {
		query += ` WHERE is_hidden = FALSE`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.executor(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Calculator{}
	for rows.Next() {
		c, err := scanCalculator(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCalculator перезаписывает поля калькулятора.
func (s *Storage) UpdateCalculator(ctx context.Context, c models.Calculator) error {
	const op = "storage.UpdateCalculator"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.executor(ctx).ExecContext(ctx,
		`UPDATE calculators SET title = $1, subtitle = $2, icon = $3, coming_soon = $4, updated_at = NOW()
		 WHERE id = $5`, c.Title, c.Subtitle, c.Icon, c.ComingSoon, c.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteCalculator удаляет калькулятор и возвращает путь к его иконке, если он был.
func (s *Storage) DeleteCalculator(ctx context.Context, id int64) (*string, error) {
	const op = "storage.DeleteCalculator"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	var icon sql.NullString
	if err := s.executor(ctx).QueryRowContext(ctx,
		`DELETE FROM calculators WHERE id = $1 RETURNING icon`, id).Scan(&icon); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	if !icon.Valid {
		return nil, nil
	}
	return &icon.String, nil
}

// ToggleCalculatorHidden инвертирует флаг скрытия и возвращает новое значение.
func (s *Storage) ToggleCalculatorHidden(ctx context.Context, id int64) (bool, error) {
	return s.toggleCalculatorFlag(ctx, "storage.ToggleCalculatorHidden", "is_hidden", id)
}

// ToggleCalculatorComingSoon инвертирует флаг "скоро" и возвращает новое значение.
func (s *Storage) ToggleCalculatorComingSoon(ctx context.Context, id int64) (bool, error) {
	return s.toggleCalculatorFlag(ctx, "storage.ToggleCalculatorComingSoon", "coming_soon", id)
}

func (s *Storage) toggleCalculatorFlag(ctx context.Context, op, column string, id int64) (bool, error) {
	if err := ctxErr(ctx, op); err != nil {
		return false, err
	}

	var value bool
	if err := s.executor(ctx).QueryRowContext(ctx,
		`UPDATE calculators SET `+column+` = NOT `+column+`, updated_at = NOW()
		 WHERE id = $1 RETURNING `+column, id).Scan(&value); err != nil {
		return false, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return value, nil
}
