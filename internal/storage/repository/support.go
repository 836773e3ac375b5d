package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// CreateInquiry сохраняет обращение. Повтор темы и текста у того же пользователя даёт storage.ErrAlreadyExists.
func (s *Storage) CreateInquiry(ctx context.Context, in models.Inquiry) (int64, error) {
	const op = "storage.CreateInquiry"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO support_inquiries (user_id, subject, message) VALUES ($1, $2, $3) RETURNING id`,
		in.UserID, in.Subject, in.Message).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetInquiry возвращает обращение вместе с контактами автора.
func (s *Storage) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	const op = "storage.GetInquiry"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT i.id, i.user_id, u.username, u.email, i.subject, i.message, i.status, i.created_at
			  FROM support_inquiries i
			  JOIN users u ON u.id = i.user_id
			  WHERE i.id = $1`
	var in models.Inquiry
	if err := s.executor(ctx).QueryRowContext(ctx, query, id).Scan(&in.ID, &in.UserID, &in.Username,
		&in.Email, &in.Subject, &in.Message, &in.Status, &in.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &in, nil
}

// ListInquiries возвращает страницу обращений с автором и числом ответов.
func (s *Storage) ListInquiries(ctx context.Context, limit, offset int) ([]models.Inquiry, int, error) {
	const op = "storage.ListInquiries"
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM support_inquiries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT i.id, i.user_id, u.username, u.email, i.subject, i.message, i.status, i.created_at,
			      (SELECT COUNT(*) FROM support_inquiry_replies r WHERE r.inquiry_id = i.id)
			  FROM support_inquiries i
			  JOIN users u ON u.id = i.user_id
			  ORDER BY i.created_at DESC, i.id DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.executor(ctx).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Inquiry, 0, limit)
	for rows.Next() {
		var in models.Inquiry
		if err := rows.Scan(&in.ID, &in.UserID, &in.Username, &in.Email, &in.Subject, &in.Message,
			&in.Status, &in.CreatedAt, &in.ReplyCount); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, in)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// CreateInquiryReply сохраняет ответ в переписке по обращению.
func (s *Storage) CreateInquiryReply(ctx context.Context, r models.InquiryReply) (int64, error) {
	const op = "storage.CreateInquiryReply"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO support_inquiry_replies (inquiry_id, sender_type, sender_id, message)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		r.InquiryID, r.SenderType, r.SenderID, r.Message).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// SetInquiryStatus меняет статус обращения.
func (s *Storage) SetInquiryStatus(ctx context.Context, id int64, status string) error {
	const op = "storage.SetInquiryStatus"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.executor(ctx).ExecContext(ctx, `UPDATE support_inquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListInquiryReplies возвращает ответы по обращению, старые первыми.
func (s *Storage) ListInquiryReplies(ctx context.Context, inquiryID int64) ([]models.InquiryReply, error) {
	const op = "storage.ListInquiryReplies"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.executor(ctx).QueryContext(ctx,
		`SELECT id, inquiry_id, sender_type, sender_id, message, created_at
		 FROM support_inquiry_replies
		 WHERE inquiry_id = $1
		 ORDER BY created_at, id`, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.InquiryReply{}
	for rows.Next() {
		var r models.InquiryReply
		if err := rows.Scan(&r.ID, &r.InquiryID, &r.SenderType, &r.SenderID, &r.Message, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
