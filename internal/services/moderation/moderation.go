// Package moderation реализует одобрение и отклонение вопросов администратором.
//
// Смена флагов вопроса и уведомление автору пишутся в одной транзакции.
// Событие для почтовой рассылки публикуется только после фиксации.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/metrics"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// Repository операции хранилища, нужные модерации.
type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetQuestionForUpdate(ctx context.Context, id int64) (*models.Question, error)
	ApproveQuestion(ctx context.Context, id int64) error
	RejectQuestion(ctx context.Context, id int64, reason string) error
	CreateModerationNotification(ctx context.Context, n models.ModerationNotification) (int64, error)
	ListPendingQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error)
	ListApprovedQuestions(ctx context.Context, limit, offset int) ([]models.QuestionListItem, int, error)
	ListRejectedQuestions(ctx context.Context, userID int64) ([]models.Question, error)
	ListModerationNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Publisher отправляет события в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service бизнес-логика модерации.
type Service struct {
	repo      Repository
	publisher Publisher
	log       *slog.Logger
}

// New создаёт сервис модерации.
func New(repo Repository, publisher Publisher, log *slog.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, log: log}
}

// ApprovedMessage текст уведомления об одобрении.
func ApprovedMessage(title string) string {
	return fmt.Sprintf("Your question \"%s\" has been approved by admin.", title)
}

// RejectedMessage текст уведомления об отклонении.
func RejectedMessage(title, feedback string) string {
	return fmt.Sprintf("Your question \"%s\" was rejected by admin. Reason: %s", title, feedback)
}

// Approve одобряет вопрос, ожидающий модерации.
func (s *Service) Approve(ctx context.Context, questionID int64) (*models.ModerationNotification, error) {
	const op = "services.moderation.Approve"

	var n models.ModerationNotification
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		q, err := s.pending(ctx, questionID)
		if err != nil {
			return err
		}
		if err := s.repo.ApproveQuestion(ctx, questionID); err != nil {
			return err
		}
		n = models.ModerationNotification{
			UserID:     q.UserID,
			QuestionID: q.ID,
			Status:     models.ModerationApproved,
			Message:    ApprovedMessage(q.Title),
		}
		n.ID, err = s.repo.CreateModerationNotification(ctx, n)
		return err
	})
	if err != nil {
		return nil, s.txError(op, err)
	}

	metrics.ModerationDecision(models.ModerationApproved)
	s.notify(ctx, models.EventQuestionApproved, n)
	return &n, nil
}

// Reject отклоняет вопрос с обязательной причиной. Отклонённый вопрос скрывается.
func (s *Service) Reject(ctx context.Context, questionID int64, feedback string) (*models.ModerationNotification, error) {
	const op = "services.moderation.Reject"

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, apperr.ValidationErr("feedback is required")
	}

	var n models.ModerationNotification
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		q, err := s.pending(ctx, questionID)
		if err != nil {
			return err
		}
		if err := s.repo.RejectQuestion(ctx, questionID, feedback); err != nil {
			return err
		}
		n = models.ModerationNotification{
			UserID:     q.UserID,
			QuestionID: q.ID,
			Status:     models.ModerationRejected,
			Message:    RejectedMessage(q.Title, feedback),
		}
		n.ID, err = s.repo.CreateModerationNotification(ctx, n)
		return err
	})
	if err != nil {
		return nil, s.txError(op, err)
	}

	metrics.ModerationDecision(models.ModerationRejected)
	s.notify(ctx, models.EventQuestionRejected, n)
	return &n, nil
}

// pending блокирует строку вопроса и проверяет, что решение ещё не принято.
func (s *Service) pending(ctx context.Context, id int64) (*models.Question, error) {
	q, err := s.repo.GetQuestionForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("question not found")
		}
		return nil, err
	}
	if q.Status() != models.ModerationPending {
		return nil, apperr.ConflictErr("question already moderated")
	}
	if q.IsDeleted {
		return nil, apperr.NotFoundErr("question not found")
	}
	return q, nil
}

func (s *Service) txError(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.ConflictErr("question already moderated")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// notify публикует событие автору. Ошибки не влияют на результат модерации.
func (s *Service) notify(ctx context.Context, kind string, n models.ModerationNotification) {
	log := s.log.With(slog.String("op", "services.moderation.notify"), slog.Int64("question_id", n.QuestionID))

	user, err := s.repo.GetUserByID(ctx, n.UserID)
	if err != nil {
		log.Warn("failed to load question author", sl.Err(err))
		return
	}
	event := models.NotificationEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Title:     "Your question has been " + n.Status,
		Message:   n.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingQuestionModerated, event); err != nil {
		log.Warn("failed to publish moderation event", sl.Err(err))
	}
}

// ListPending возвращает вопросы, ожидающие модерации.
func (s *Service) ListPending(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	const op = "services.moderation.ListPending"
	items, total, err := s.repo.ListPendingQuestions(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

// ListApproved возвращает одобренные вопросы со счётчиками активности.
func (s *Service) ListApproved(ctx context.Context, p pagination.Params) ([]models.QuestionListItem, pagination.Meta, error) {
	const op = "services.moderation.ListApproved"
	items, total, err := s.repo.ListApprovedQuestions(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

// ListMyRejected возвращает отклонённые вопросы пользователя с причиной.
func (s *Service) ListMyRejected(ctx context.Context, userID int64) ([]models.Question, error) {
	const op = "services.moderation.ListMyRejected"
	items, err := s.repo.ListRejectedQuestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// ListMyNotifications возвращает уведомления модерации пользователя.
func (s *Service) ListMyNotifications(ctx context.Context, userID int64) ([]models.ModerationNotification, error) {
	const op = "services.moderation.ListMyNotifications"
	items, err := s.repo.ListModerationNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
