package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// SavePayment пишет строку журнала платежей. Повтор пары (intent, status)
// не считается ошибкой: возвращается false.
func (s *Storage) SavePayment(ctx context.Context, p models.Payment) (bool, error) {
	const op = "storage.SavePayment"
	if err := ctxErr(ctx, op); err != nil {
		return false, err
	}

	res, err := s.executor(ctx).ExecContext(ctx,
		`INSERT INTO payments (user_id, amount, currency, status, payment_intent_id)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (payment_intent_id, status) DO NOTHING`,
		p.UserID, p.Amount, p.Currency, p.Status, p.PaymentIntentID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

// ListPayments возвращает платежи пользователя, новые первыми.
func (s *Storage) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	const op = "storage.ListPayments"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.executor(ctx).QueryContext(ctx,
		`SELECT id, user_id, amount::text, currency, status, payment_intent_id, created_at
		 FROM payments
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.Amount, &p.Currency, &p.Status,
			&p.PaymentIntentID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
