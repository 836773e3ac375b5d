package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// AddQuestionBookmark добавляет вопрос в закладки. Повтор даёт storage.ErrAlreadyExists.
func (s *Storage) AddQuestionBookmark(ctx context.Context, userID, questionID int64) error {
	return s.insertOnce(ctx, "storage.AddQuestionBookmark",
		`INSERT INTO bookmark_questions (user_id, question_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, question_id) DO NOTHING`, userID, questionID)
}

// DeleteQuestionBookmark удаляет вопрос из закладок.
func (s *Storage) DeleteQuestionBookmark(ctx context.Context, userID, questionID int64) error {
	return s.deleteOne(ctx, "storage.DeleteQuestionBookmark",
		`DELETE FROM bookmark_questions WHERE user_id = $1 AND question_id = $2`, userID, questionID)
}

// ListQuestionBookmarks возвращает страницу закладок на неудалённые вопросы.
func (s *Storage) ListQuestionBookmarks(ctx context.Context, userID int64, limit, offset int) ([]models.QuestionBookmark, int, error) {
	const op = "storage.ListQuestionBookmarks"
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookmark_questions b
		 JOIN questions q ON q.id = b.question_id
		 WHERE b.user_id = $1 AND q.is_deleted = FALSE`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT q.id, q.title, q.details, q.tags, b.created_at
			  FROM bookmark_questions b
			  JOIN questions q ON q.id = b.question_id
			  WHERE b.user_id = $1 AND q.is_deleted = FALSE
			  ORDER BY b.created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.executor(ctx).QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.QuestionBookmark, 0, limit)
	for rows.Next() {
		var (
			b    models.QuestionBookmark
			tags []byte
		)
		if err := rows.Scan(&b.QuestionID, &b.Title, &b.Details, &tags, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		b.Tags = []string{}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &b.Tags); err != nil {
				return nil, 0, fmt.Errorf("%s: decode tags: %w", op, err)
			}
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// AddContentBookmark добавляет обучающий материал в закладки. Повтор даёт storage.ErrAlreadyExists.
func (s *Storage) AddContentBookmark(ctx context.Context, userID, contentID int64) error {
	return s.insertOnce(ctx, "storage.AddContentBookmark",
		`INSERT INTO bookmarks_education_contents (user_id, education_content_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, education_content_id) DO NOTHING`, userID, contentID)
}

// DeleteContentBookmark удаляет обучающий материал из закладок.
func (s *Storage) DeleteContentBookmark(ctx context.Context, userID, contentID int64) error {
	return s.deleteOne(ctx, "storage.DeleteContentBookmark",
		`DELETE FROM bookmarks_education_contents WHERE user_id = $1 AND education_content_id = $2`,
		userID, contentID)
}

// ListContentBookmarks возвращает страницу закладок на обучающие материалы.
func (s *Storage) ListContentBookmarks(ctx context.Context, userID int64, limit, offset int) ([]models.ContentBookmark, int, error) {
	const op = "storage.ListContentBookmarks"
	if err := ctxErr(ctx, op); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.executor(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookmarks_education_contents WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT e.id, e.title, e.description, b.created_at
			  FROM bookmarks_education_contents b
			  JOIN education_content e ON e.id = b.education_content_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.executor(ctx).QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.ContentBookmark, 0, limit)
	for rows.Next() {
		var b models.ContentBookmark
		if err := rows.Scan(&b.EducationContentID, &b.Title, &b.Description, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}
