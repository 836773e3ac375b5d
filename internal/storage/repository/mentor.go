package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const mentorColumns = `id, title, subtitle, icons, access_type, status, skill_tiers, modules,
	new_content_monthly, is_hidden, created_at, updated_at`

func scanMentorProgram(row rowScanner) (*models.MentorProgram, error) {
	var (
		m         models.MentorProgram
		icon      sql.NullString
		updatedAt sql.NullTime
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Subtitle, &icon, &m.AccessType, &m.Status, &m.SkillTiers,
		&m.Modules, &m.NewContentMonthly, &m.IsHidden, &m.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if icon.Valid {
		m.Icon = &icon.String
	}
	if updatedAt.Valid {
		m.UpdatedAt = &updatedAt.Time
	}
	return &m, nil
}

// CreateMentorProgram сохраняет программу наставничества.
func (s *Storage) CreateMentorProgram(ctx context.Context, m models.MentorProgram) (int64, error) {
	const op = "storage.CreateMentorProgram"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO mentor_programs
			      (title, subtitle, icons, access_type, status, skill_tiers, modules, new_content_monthly)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx, query, m.Title, m.Subtitle, m.Icon, m.AccessType,
		m.Status, m.SkillTiers, m.Modules, m.NewContentMonthly).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetMentorProgram возвращает программу по ID.
func (s *Storage) GetMentorProgram(ctx context.Context, id int64) (*models.MentorProgram, error) {
	const op = "storage.GetMentorProgram"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	m, err := scanMentorProgram(s.executor(ctx).QueryRowContext(ctx,
		`SELECT `+mentorColumns+` FROM mentor_programs WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return m, nil
}

func (s *Storage) listMentorPrograms(ctx context.Context, op string, onlyVisible bool, limit, offset int) ([]models.MentorProgram, int, error) {
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	where := `TRUE`
	if onlyVisible {
		where = `is_hidden = FALSE`
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mentor_programs WHERE `+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.executor(ctx).QueryContext(ctx,
		`SELECT `+mentorColumns+` FROM mentor_programs WHERE `+where+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.MentorProgram, 0, limit)
	for rows.Next() {
		m, err := scanMentorProgram(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// ListMentorPrograms возвращает страницу всех программ.
func (s *Storage) ListMentorPrograms(ctx context.Context, limit, offset int) ([]models.MentorProgram, int, error) {
	return s.listMentorPrograms(ctx, "storage.ListMentorPrograms", false, limit, offset)
}

// ListVisibleMentorPrograms возвращает страницу нескрытых программ.
func (s *Storage) ListVisibleMentorPrograms(ctx context.Context, limit, offset int) ([]models.MentorProgram, int, error) {
	return s.listMentorPrograms(ctx, "storage.ListVisibleMentorPrograms", true, limit, offset)
}

// UpdateMentorProgram перезаписывает поля программы.
func (s *Storage) UpdateMentorProgram(ctx context.Context, m models.MentorProgram) error {
	const op = "storage.UpdateMentorProgram"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE mentor_programs
			  SET title = $1, subtitle = $2, icons = $3, access_type = $4, status = $5,
			      skill_tiers = $6, modules = $7, new_content_monthly = $8, updated_at = NOW()
			  WHERE id = $9`
	res, err := s.executor(ctx).ExecContext(ctx, query, m.Title, m.Subtitle, m.Icon, m.AccessType, m.Status,
		m.SkillTiers, m.Modules, m.NewContentMonthly, m.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteMentorProgram удаляет программу и возвращает путь к её иконке, если он был.
func (s *Storage) DeleteMentorProgram(ctx context.Context, id int64) (*string, error) {
	const op = "storage.DeleteMentorProgram"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	var icon sql.NullString
	if err := s.executor(ctx).QueryRowContext(ctx,
		`DELETE FROM mentor_programs WHERE id = $1 RETURNING icons`, id).Scan(&icon); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	if !icon.Valid {
		return nil, nil
	}
	return &icon.String, nil
}

// ToggleMentorProgramHidden инвертирует флаг скрытия и возвращает новое значение.
func (s *Storage) ToggleMentorProgramHidden(ctx context.Context, id int64) (bool, error) {
	const op = "storage.ToggleMentorProgramHidden"
	if err := ctxErr(ctx, op); err != nil {
		return false, err
	}

	var hidden bool
	if err := s.executor(ctx).QueryRowContext(ctx,
		`UPDATE mentor_programs SET is_hidden = NOT is_hidden, updated_at = NOW()
		 WHERE id = $1 RETURNING is_hidden`, id).Scan(&hidden); err != nil {
		return false, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return hidden, nil
}
