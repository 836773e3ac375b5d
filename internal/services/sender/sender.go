// Package sender рассылает email-уведомления о решениях модерации и ответах поддержки.
package sender

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/lib/smtp"
	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// ErrNoRecipient событие без адреса получателя.
var ErrNoRecipient = errors.New("notification event has no recipient email")

// Transport устанавливает соединение с SMTP сервером.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// Service отправляет письма по событиям из брокера.
type Service struct {
	transport Transport
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport Transport, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// HandleNotification разбирает NotificationEvent и отправляет письмо пользователю.
// Событие без email подтверждается без отправки, повтор ничего не изменит.
func (s *Service) HandleNotification(body []byte) error {
	const op = "services.sender.HandleNotification"

	var event models.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}
	if event.Email == "" {
		s.log.Warn("skipping notification", slog.String("event_id", event.ID), sl.Err(ErrNoRecipient))
		return nil
	}

	subject, text := Compose(event)
	return s.sendEmail([]string{event.Email}, subject, text)
}

// Compose формирует тему и текст письма по виду события.
func Compose(event models.NotificationEvent) (string, string) {
	name := event.Username
	if name == "" {
		name = "there"
	}

	var subject string
	switch event.Kind {
	case models.EventQuestionApproved:
		subject = "Your question has been approved"
	case models.EventQuestionRejected:
		subject = "Your question has been rejected"
	case models.EventSupportResolved:
		subject = "Your support inquiry has been resolved"
	default:
		subject = event.Title
	}

	text := fmt.Sprintf("Hello, %s!\n\n%s\n", name, event.Message)
	return subject, text
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
