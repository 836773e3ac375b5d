package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

const questionColumns = `q.id, q.user_id, q.title, q.details, q.tags, q.is_approved, q.is_reject,
	q.reject_reason, q.is_deleted, q.posted_at, q.updated_at, q.deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func scanQuestion(row rowScanner, extra ...any) (*models.Question, error) {
	var (
		q            models.Question
		tags         []byte
		rejectReason sql.NullString
		updatedAt    sql.NullTime
		deletedAt    sql.NullTime
	)
	dest := []any{&q.ID, &q.UserID, &q.Title, &q.Details, &tags, &q.IsApproved, &q.IsRejected,
		&rejectReason, &q.IsDeleted, &q.PostedAt, &updatedAt, &deletedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	q.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &q.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	if rejectReason.Valid {
		q.RejectReason = &rejectReason.String
	}
	if updatedAt.Valid {
		q.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		q.DeletedAt = &deletedAt.Time
	}
	return &q, nil
}

// CreateQuestion сохраняет вопрос и возвращает его ID.
// Повтор заголовка у того же автора даёт storage.ErrAlreadyExists.
func (s *Storage) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	const op = "storage.CreateQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	tags, err := encodeTags(q.Tags)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	query := `INSERT INTO questions (user_id, title, details, tags)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx, query, q.UserID, q.Title, q.Details, tags).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetQuestion возвращает вопрос по ID, включая удалённые.
func (s *Storage) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	const op = "storage.GetQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + questionColumns + ` FROM questions q WHERE q.id = $1`
	q, err := scanQuestion(s.executor(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return q, nil
}

// GetQuestionForUpdate блокирует строку вопроса до конца текущей транзакции.
func (s *Storage) GetQuestionForUpdate(ctx context.Context, id int64) (*models.Question, error) {
	const op = "storage.GetQuestionForUpdate"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + questionColumns + ` FROM questions q WHERE q.id = $1 FOR UPDATE`
	q, err := scanQuestion(s.executor(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return q, nil
}

// UpdateQuestion обновляет неудалённый вопрос автора.
func (s *Storage) UpdateQuestion(ctx context.Context, q models.Question) error {
	const op = "storage.UpdateQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	tags, err := encodeTags(q.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	query := `UPDATE questions
			  SET title = $1, details = $2, tags = $3, updated_at = NOW()
			  WHERE id = $4 AND user_id = $5 AND is_deleted = FALSE`
	res, err := s.executor(ctx).ExecContext(ctx, query, q.Title, q.Details, tags, q.ID, q.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SoftDeleteQuestion помечает вопрос автора удалённым.
func (s *Storage) SoftDeleteQuestion(ctx context.Context, userID, id int64) error {
	const op = "storage.SoftDeleteQuestion"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE questions
			  SET is_deleted = TRUE, deleted_at = NOW()
			  WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE`
	res, err := s.executor(ctx).ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// listQuestionItems выбирает страницу вопросов с автором и счётчиками активности.
// where ссылается на таблицу questions под псевдонимом q и использует плейсхолдеры $1..$len(args).
func (s *Storage) listQuestionItems(ctx context.Context, op, where string, args []any,
	limit, offset int) ([]models.QuestionListItem, int, error) {
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions q WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	n := len(args)
	query := `SELECT ` + questionColumns + `,
			      COALESCE(NULLIF(u.full_name, ''), u.username),
			      (SELECT COUNT(*) FROM question_likes l WHERE l.question_id = q.id),
			      (SELECT COUNT(*) FROM question_views v WHERE v.question_id = q.id),
			      (SELECT COUNT(*) FROM question_comments c WHERE c.question_id = q.id AND c.is_deleted = FALSE)
			  FROM questions q
			  JOIN users u ON u.id = q.user_id
			  WHERE ` + where + `
			  ORDER BY q.posted_at DESC, q.id DESC
			  LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	rows, err := s.executor(ctx).QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.QuestionListItem, 0, limit)
	for rows.Next() {
		var item models.QuestionListItem
		q, err := scanQuestion(rows, &item.AuthorName, &item.TotalLikes, &item.TotalViews, &item.TotalComments)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		item.Question = *q
		item.Status = q.Status()
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// ListQuestionsAdmin возвращает все неудалённые вопросы.
func (s *Storage) ListQuestionsAdmin(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	return s.listQuestionItems(ctx, "storage.ListQuestionsAdmin",
		`q.is_deleted = FALSE`, nil, limit, offset)
}

// ListPendingQuestions возвращает вопросы, ожидающие модерации.
func (s *Storage) ListPendingQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	return s.listQuestionItems(ctx, "storage.ListPendingQuestions",
		`q.is_approved = FALSE AND q.is_reject = FALSE AND q.is_deleted = FALSE`, nil, limit, offset)
}

// ListApprovedQuestions возвращает одобренные вопросы.
func (s *Storage) ListApprovedQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error) {
	return s.listQuestionItems(ctx, "storage.ListApprovedQuestions",
		`q.is_approved = TRUE AND q.is_deleted = FALSE`, nil, limit, offset)
}

// ListUserPostedQuestions возвращает вопросы автора вместе с отклонёнными, чтобы был виден итог модерации.
func (s *Storage) ListUserPostedQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error) {
	return s.listQuestionItems(ctx, "storage.ListUserPostedQuestions",
		`q.user_id = $1 AND (q.is_deleted = FALSE OR q.is_reject = TRUE)`, []any{userID}, limit, offset)
}

// ListUserQuestions возвращает неудалённые вопросы автора.
func (s *Storage) ListUserQuestions(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionListItem, int, error) {
	return s.listQuestionItems(ctx, "storage.ListUserQuestions",
		`q.user_id = $1 AND q.is_deleted = FALSE`, []any{userID}, limit, offset)
}

// ListRejectedQuestions возвращает отклонённые вопросы автора.
func (s *Storage) ListRejectedQuestions(ctx context.Context, userID int64) ([]models.Question, error) {
	const op = "storage.ListRejectedQuestions"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + questionColumns + ` FROM questions q
			  WHERE q.user_id = $1 AND q.is_reject = TRUE
			  ORDER BY q.deleted_at DESC NULLS LAST, q.id DESC`
	rows, err := s.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
