package models

import "time"

// Виды событий уведомлений.
const (
	EventQuestionApproved = "question.approved"
	EventQuestionRejected = "question.rejected"
	EventSupportResolved  = "support.resolved"
)

// NotificationEvent сообщение для notification-sender.
type NotificationEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
