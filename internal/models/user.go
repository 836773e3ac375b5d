// Package models содержит доменные сущности платформы, общие для хранилища, сервисов и HTTP-слоя.
package models

import "time"

// Типы пользователя.
const (
	UserTypeAdmin   = "admin"
	UserTypeVisitor = "visitor"
)

// Типы подписки.
const (
	SubscriptionFree = "free"
	SubscriptionPro  = "pro"
)

// User зарегистрированный пользователь.
type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	FullName         string    `json:"full_name"`
	UserType         string    `json:"user_type"`
	SubscriptionType string    `json:"subscription_type"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserRef краткие сведения о пользователе в списках лайков и т.п.
type UserRef struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}

// Actor пользователь, от имени которого выполняется операция.
type Actor struct {
	UserID   int64
	UserType string
}

// IsAdmin сообщает, что действует администратор.
func (a Actor) IsAdmin() bool {
	return a.UserType == UserTypeAdmin
}
