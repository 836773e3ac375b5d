package models

import "time"

// Статусы обращения в поддержку.
const (
	InquiryPending  = "pending"
	InquiryResolved = "resolved"
)

// MaxInquiryMessageLen предельная длина текста обращения в символах.
const MaxInquiryMessageLen = 2000

// Отправитель ответа на обращение.
const (
	SenderAdmin   = "admin"
	SenderVisitor = "visitor"
)

// Inquiry обращение пользователя в поддержку.
type Inquiry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	Email      string    `json:"email,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// InquiryReply ответ в переписке по обращению.
type InquiryReply struct {
	ID         int64     `json:"id"`
	InquiryID  int64     `json:"inquiry_id"`
	SenderType string    `json:"sender_type"`
	SenderID   int64     `json:"sender_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification уведомление пользователю.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
