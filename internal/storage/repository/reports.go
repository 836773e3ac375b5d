package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// CreateReport сохраняет жалобу на комментарий.
func (s *Storage) CreateReport(ctx context.Context, commentID, reportedBy int64, reason string) (int64, error) {
	const op = "storage.CreateReport"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx,
		`INSERT INTO reported_comments (comment_id, reported_by, reason) VALUES ($1, $2, $3) RETURNING id`,
		commentID, reportedBy, reason).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// CountReports возвращает общее число жалоб.
func (s *Storage) CountReports(ctx context.Context) (int, error) {
	const op = "storage.CountReports"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM reported_comments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListReports возвращает страницу жалоб с текстом комментария и именем автора жалобы.
func (s *Storage) ListReports(ctx context.Context, limit, offset int) ([]models.ReportedComment, error) {
	const op = "storage.ListReports"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT r.id, r.comment_id, c.comment, r.reported_by, u.username, r.reason, r.created_at
			  FROM reported_comments r
			  JOIN question_comments c ON c.id = r.comment_id
			  JOIN users u ON u.id = r.reported_by
			  ORDER BY r.created_at DESC, r.id DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.executor(ctx).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.ReportedComment, 0, limit)
	for rows.Next() {
		var r models.ReportedComment
		if err := rows.Scan(&r.ID, &r.CommentID, &r.Comment, &r.ReportedBy, &r.ReporterName,
			&r.Reason, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
