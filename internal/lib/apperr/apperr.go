// Package apperr описывает таксономию ошибок бизнес-логики.
//
// Сервисы возвращают *Error с видом ошибки и сообщением для клиента,
// HTTP-слой по виду выбирает статус ответа. Ошибки без вида считаются внутренними.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind вид ошибки.
type Kind int

const (
	// Internal неожиданная ошибка хранилища или инфраструктуры.
	Internal Kind = iota
	// Validation некорректные или отсутствующие входные данные.
	Validation
	// Unauthenticated нет токена или он не прошёл проверку.
	Unauthenticated
	// Forbidden недостаточно прав.
	Forbidden
	// NotFound ресурс не найден.
	NotFound
	// Conflict нарушение уникальности или недопустимый переход состояния.
	Conflict
	// BadGateway ошибка внешнего платёжного провайдера.
	BadGateway
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case BadGateway:
		return "bad_gateway"
	default:
		return "internal"
	}
}

// HTTPStatus возвращает HTTP-статус для вида ошибки.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case BadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error ошибка с видом и сообщением для клиента.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создаёт ошибку заданного вида.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap создаёт ошибку заданного вида с причиной.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// ValidationErr ошибка входных данных, 400.
func ValidationErr(msg string) *Error { return New(Validation, msg) }

// UnauthenticatedErr ошибка аутентификации, 401.
func UnauthenticatedErr(msg string) *Error { return New(Unauthenticated, msg) }

// ForbiddenErr отказ в доступе, 403.
func ForbiddenErr(msg string) *Error { return New(Forbidden, msg) }

// NotFoundErr ресурс не найден, 404.
func NotFoundErr(msg string) *Error { return New(NotFound, msg) }

// ConflictErr конфликт с существующими данными, 409.
func ConflictErr(msg string) *Error { return New(Conflict, msg) }

// KindOf возвращает вид ошибки из цепочки или Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf возвращает сообщение для клиента.
// Для внутренних ошибок сообщение всегда общее, причина не раскрывается.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "internal server error"
}

// Is проверяет вид ошибки.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
