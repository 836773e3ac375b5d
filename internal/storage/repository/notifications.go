package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// CreateNotification сохраняет уведомление пользователю.
func (s *Storage) CreateNotification(ctx context.Context, n models.Notification) (int64, error) {
	const op = "storage.CreateNotification"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO notifications (user_id, title, message) VALUES ($1, $2, $3) RETURNING id`,
		n.UserID, n.Title, n.Message).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// MarkNotificationRead отмечает уведомление прочитанным.
// Если ownerID не nil, обновляется только уведомление этого пользователя.
func (s *Storage) MarkNotificationRead(ctx context.Context, id int64, ownerID *int64) error {
	const op = "storage.MarkNotificationRead"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND user_id = $2`
		args = append(args, *ownerID)
	}
	res, err := s.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListNotifications возвращает уведомления пользователя, новые первыми.
func (s *Storage) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	const op = "storage.ListNotifications"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.executor(ctx).QueryContext(ctx,
		`SELECT id, user_id, title, message, is_read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
