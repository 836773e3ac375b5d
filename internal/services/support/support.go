// Package support реализует обращения в поддержку, переписку по ним и уведомления.
package support

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// ResolvedTitle заголовок уведомления о решённом обращении.
const ResolvedTitle = "Your support inquiry has been resolved"

// Repository хранилище обращений и уведомлений.
type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateInquiry(ctx context.Context, in models.Inquiry) (int64, error)
	GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, limit, offset int) ([]models.Inquiry, int, error)
	CreateInquiryReply(ctx context.Context, r models.InquiryReply) (int64, error)
	SetInquiryStatus(ctx context.Context, id int64, status string) error
	ListInquiryReplies(ctx context.Context, inquiryID int64) ([]models.InquiryReply, error)
	CreateNotification(ctx context.Context, n models.Notification) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64, ownerID *int64) error
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
}

// Publisher отправляет события в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service бизнес-логика поддержки.
type Service struct {
	repo      Repository
	publisher Publisher
	log       *slog.Logger
}

// New создаёт сервис поддержки.
func New(repo Repository, publisher Publisher, log *slog.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, log: log}
}

// Create регистрирует обращение. Повтор той же темы и текста даёт Conflict.
func (s *Service) Create(ctx context.Context, userID int64, subject, message string) (*models.Inquiry, error) {
	const op = "services.support.Create"

	in := models.Inquiry{
		UserID:  userID,
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
		Status:  models.InquiryPending,
	}
	if in.Subject == "" || in.Message == "" {
		return nil, apperr.ValidationErr("subject and message are required")
	}
	if utf8.RuneCountInString(in.Subject) > models.MaxTitleLen {
		return nil, apperr.ValidationErr(fmt.Sprintf("subject must be at most %d characters", models.MaxTitleLen))
	}
	if utf8.RuneCountInString(in.Message) > models.MaxInquiryMessageLen {
		return nil, apperr.ValidationErr(fmt.Sprintf("message must be at most %d characters", models.MaxInquiryMessageLen))
	}

	id, err := s.repo.CreateInquiry(ctx, in)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.ConflictErr("you have already submitted this inquiry")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	in.ID = id
	return &in, nil
}

// List возвращает страницу обращений для администратора.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]models.Inquiry, pagination.Meta, error) {
	const op = "services.support.List"
	items, total, err := s.repo.ListInquiries(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return items, pagination.NewMeta(p, total), nil
}

func (s *Service) accessible(ctx context.Context, actor models.Actor, id int64) (*models.Inquiry, error) {
	inquiry, err := s.repo.GetInquiry(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("inquiry not found")
		}
		return nil, err
	}
	if !actor.IsAdmin() && inquiry.UserID != actor.UserID {
		return nil, apperr.ForbiddenErr("access denied")
	}
	return inquiry, nil
}

// Reply добавляет ответ в переписку. Ответ администратора закрывает обращение
// и создаёт уведомление владельцу в той же транзакции.
func (s *Service) Reply(ctx context.Context, actor models.Actor, inquiryID int64, message string) (*models.InquiryReply, error) {
	const op = "services.support.Reply"

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperr.ValidationErr("message is required")
	}

	reply := models.InquiryReply{
		InquiryID:  inquiryID,
		SenderType: models.SenderVisitor,
		SenderID:   actor.UserID,
		Message:    message,
	}
	if actor.IsAdmin() {
		reply.SenderType = models.SenderAdmin
	}

	var (
		inquiry      *models.Inquiry
		notification models.Notification
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if inquiry, err = s.accessible(ctx, actor, inquiryID); err != nil {
			return err
		}
		if reply.ID, err = s.repo.CreateInquiryReply(ctx, reply); err != nil {
			return err
		}
		if !actor.IsAdmin() {
			return nil
		}
		if err = s.repo.SetInquiryStatus(ctx, inquiryID, models.InquiryResolved); err != nil {
			return err
		}
		notification = models.Notification{
			UserID:  inquiry.UserID,
			Title:   ResolvedTitle,
			Message: fmt.Sprintf("Admin replied to your inquiry \"%s\": %s", inquiry.Subject, message),
		}
		notification.ID, err = s.repo.CreateNotification(ctx, notification)
		return err
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("inquiry not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if actor.IsAdmin() {
		s.notify(ctx, inquiry, notification)
	}
	return &reply, nil
}

func (s *Service) notify(ctx context.Context, inquiry *models.Inquiry, n models.Notification) {
	event := models.NotificationEvent{
		ID:        uuid.NewString(),
		Kind:      models.EventSupportResolved,
		UserID:    inquiry.UserID,
		Email:     inquiry.Email,
		Username:  inquiry.Username,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, rabbitmq.RoutingSupportResolved, event); err != nil {
		s.log.Warn("failed to publish support event", slog.Int64("inquiry_id", inquiry.ID), sl.Err(err))
	}
}

// Replies возвращает переписку по обращению владельцу или администратору.
func (s *Service) Replies(ctx context.Context, actor models.Actor, inquiryID int64) ([]models.InquiryReply, error) {
	const op = "services.support.Replies"
	if _, err := s.accessible(ctx, actor, inquiryID); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	replies, err := s.repo.ListInquiryReplies(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return replies, nil
}

// MarkRead отмечает уведомление прочитанным. Администратор может отметить любое,
// пользователь только своё.
func (s *Service) MarkRead(ctx context.Context, actor models.Actor, notificationID int64) error {
	const op = "services.support.MarkRead"

	var owner *int64
	if !actor.IsAdmin() {
		owner = &actor.UserID
	}
	if err := s.repo.MarkNotificationRead(ctx, notificationID, owner); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFoundErr("notification not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Notifications возвращает уведомления пользователя.
func (s *Service) Notifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	const op = "services.support.Notifications"
	items, err := s.repo.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
