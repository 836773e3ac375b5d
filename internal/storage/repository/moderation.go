package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// ApproveQuestion одобряет вопрос, ожидающий модерации.
func (s *Storage) ApproveQuestion(ctx context.Context, id int64) error {
	const op = "storage.ApproveQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE questions
			  SET is_approved = TRUE, updated_at = NOW()
			  WHERE id = $1 AND is_approved = FALSE AND is_reject = FALSE AND is_deleted = FALSE`
	res, err := s.executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RejectQuestion отклоняет вопрос с указанием причины и скрывает его.
func (s *Storage) RejectQuestion(ctx context.Context, id int64, reason string) error {
	const op = "storage.RejectQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE questions
			  SET is_approved = FALSE, is_reject = TRUE, is_deleted = TRUE,
			      reject_reason = $1, deleted_at = NOW(), updated_at = NOW()
			  WHERE id = $2 AND is_approved = FALSE AND is_reject = FALSE AND is_deleted = FALSE`
	res, err := s.executor(ctx).ExecContext(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CreateModerationNotification сохраняет уведомление автору о решении модерации.
func (s *Storage) CreateModerationNotification(ctx context.Context, n models.ModerationNotification) (int64, error) {
	const op = "storage.CreateModerationNotification"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO approve_reject_notifications (user_id, question_id, status, message)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx, query, n.UserID, n.QuestionID, n.Status, n.Message).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// ListModerationNotifications возвращает уведомления модерации пользователя, новые первыми.
func (s *Storage) ListModerationNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error) {
	const op = "storage.ListModerationNotifications"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, question_id, status, message, is_read, created_at
			  FROM approve_reject_notifications
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.ModerationNotification{}
	for rows.Next() {
		var n models.ModerationNotification
		if err := rows.Scan(&n.ID, &n.UserID, &n.QuestionID, &n.Status, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
