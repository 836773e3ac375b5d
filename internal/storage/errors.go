// Package storage объявляет ошибки слоя хранения, общие для всех репозиториев.
package storage

import "errors"

var (
	// ErrNotFound запись не найдена или не затронута запросом.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput значение не прошло ограничения схемы: длина, CHECK, размер индекса.
	ErrInvalidInput = errors.New("invalid input")
)
