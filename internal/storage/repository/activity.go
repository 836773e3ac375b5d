package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// insertOnce выполняет INSERT ... ON CONFLICT DO NOTHING и сообщает о дубликате через storage.ErrAlreadyExists.
func (s *Storage) insertOnce(ctx context.Context, op, query string, args ...any) error {
	if err := ctxErr(ctx, op); err != nil {
		return err
	}
	res, err := s.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}
	return nil
}

func (s *Storage) deleteOne(ctx context.Context, op, query string, args ...any) error {
	if err := ctxErr(ctx, op); err != nil {
		return err
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

func (s *Storage) listLikes(ctx context.Context, op, query string, id int64) ([]models.UserRef, error) {
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}
	rows, err := s.executor(ctx).QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.UserRef{}
	for rows.Next() {
		var u models.UserRef
		if err := rows.Scan(&u.UserID, &u.Username, &u.FullName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AddQuestionView фиксирует просмотр вопроса пользователем. Повтор даёт storage.ErrAlreadyExists.
func (s *Storage) AddQuestionView(ctx context.Context, questionID, userID int64) error {
	return s.insertOnce(ctx, "storage.AddQuestionView",
		`INSERT INTO question_views (question_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (question_id, user_id) DO NOTHING`, questionID, userID)
}

// AddQuestionLike фиксирует лайк вопроса. Повтор даёт storage.ErrAlreadyExists.
func (s *Storage) AddQuestionLike(ctx context.Context, questionID, userID int64) error {
	return s.insertOnce(ctx, "storage.AddQuestionLike",
		`INSERT INTO question_likes (question_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (question_id, user_id) DO NOTHING`, questionID, userID)
}

// RemoveQuestionLike снимает лайк вопроса.
func (s *Storage) RemoveQuestionLike(ctx context.Context, questionID, userID int64) error {
	return s.deleteOne(ctx, "storage.RemoveQuestionLike",
		`DELETE FROM question_likes WHERE question_id = $1 AND user_id = $2`, questionID, userID)
}

// ListQuestionLikes возвращает пользователей, отметивших вопрос.
func (s *Storage) ListQuestionLikes(ctx context.Context, questionID int64) ([]models.UserRef, error) {
	return s.listLikes(ctx, "storage.ListQuestionLikes",
		`SELECT u.id, u.username, u.full_name
		 FROM question_likes l
		 JOIN users u ON u.id = l.user_id
		 WHERE l.question_id = $1
		 ORDER BY l.liked_at`, questionID)
}

// AddComment сохраняет комментарий к вопросу.
func (s *Storage) AddComment(ctx context.Context, c models.Comment) (int64, error) {
	const op = "storage.AddComment"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO question_comments (question_id, user_id, comment)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var id int64
	if err := s.executor(ctx).QueryRowContext(ctx, query, c.QuestionID, c.UserID, c.Comment).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return id, nil
}

// GetComment возвращает неудалённый комментарий.
func (s *Storage) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "storage.GetComment"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, question_id, user_id, comment, created_at
			  FROM question_comments
			  WHERE id = $1 AND is_deleted = FALSE`
	var c models.Comment
	if err := s.executor(ctx).QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.QuestionID, &c.UserID, &c.Comment, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &c, nil
}

// SoftDeleteComment помечает комментарий удалённым.
func (s *Storage) SoftDeleteComment(ctx context.Context, id int64) error {
	const op = "storage.SoftDeleteComment"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	query := `UPDATE question_comments SET is_deleted = TRUE, deleted_at = NOW()
			  WHERE id = $1 AND is_deleted = FALSE`
	res, err := s.executor(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListComments возвращает неудалённые комментарии к вопросу, старые первыми.
func (s *Storage) ListComments(ctx context.Context, questionID int64) ([]models.Comment, error) {
	const op = "storage.ListComments"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT c.id, c.question_id, c.user_id, u.username, u.full_name, c.comment, c.created_at
			  FROM question_comments c
			  JOIN users u ON u.id = c.user_id
			  WHERE c.question_id = $1 AND c.is_deleted = FALSE
			  ORDER BY c.created_at, c.id`
	rows, err := s.executor(ctx).QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.UserID, &c.Username, &c.FullName,
			&c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AddCommentLike фиксирует лайк комментария. Повтор даёт storage.ErrAlreadyExists.
func (s *Storage) AddCommentLike(ctx context.Context, commentID, userID int64) error {
	return s.insertOnce(ctx, "storage.AddCommentLike",
		`INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (comment_id, user_id) DO NOTHING`, commentID, userID)
}

// RemoveCommentLike снимает лайк комментария.
func (s *Storage) RemoveCommentLike(ctx context.Context, commentID, userID int64) error {
	return s.deleteOne(ctx, "storage.RemoveCommentLike",
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
}

// ListCommentLikes возвращает пользователей, отметивших комментарий.
func (s *Storage) ListCommentLikes(ctx context.Context, commentID int64) ([]models.UserRef, error) {
	return s.listLikes(ctx, "storage.ListCommentLikes",
		`SELECT u.id, u.username, u.full_name
		 FROM comment_likes l
		 JOIN users u ON u.id = l.user_id
		 WHERE l.comment_id = $1
		 ORDER BY l.liked_at`, commentID)
}
