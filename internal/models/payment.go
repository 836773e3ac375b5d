package models

import "time"

// Payment строка журнала платежей.
type Payment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"payment_intent_id"`
	CreatedAt       time.Time `json:"created_at"`
}
