// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Все ответы, включая ошибки,
// отдаются в конверте Envelope, а HTTP-статус всегда совпадает с полем statusCode.
package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

const (
	// StatusSuccess значение статуса для успешного ответа.
	StatusSuccess = "success"
	// StatusError значение статуса для ответа с ошибкой.
	StatusError = "error"
)

// Envelope описывает стандартную структуру JSON‑ответа сервера.
type Envelope struct {
	Status     string           `json:"status" example:"success"`
	Message    string           `json:"message" example:"ok"`
	Data       any              `json:"data,omitempty"`
	StatusCode int              `json:"statusCode" example:"200"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// ErrorResponse структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Status     string `json:"status" example:"error"`
	Message    string `json:"message" example:"invalid request body"`
	StatusCode int    `json:"statusCode" example:"400"`
}

// пустой список отдаётся как [], а не null
func normalize(data any) any {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return []any{}
	}
	return data
}

func write(w http.ResponseWriter, r *http.Request, env Envelope) {
	render.Status(r, env.StatusCode)
	render.JSON(w, r, env)
}

// OK отдаёт успешный ответ с кодом code.
func OK(w http.ResponseWriter, r *http.Request, code int, msg string, data any) {
	write(w, r, Envelope{
		Status:     StatusSuccess,
		Message:    msg,
		Data:       normalize(data),
		StatusCode: code,
	})
}

// Page отдаёт страницу списка с блоком пагинации.
func Page(w http.ResponseWriter, r *http.Request, msg string, data any, meta pagination.Meta) {
	write(w, r, Envelope{
		Status:     StatusSuccess,
		Message:    msg,
		Data:       normalize(data),
		StatusCode: http.StatusOK,
		Pagination: &meta,
	})
}

// Fail отдаёт ошибку с кодом code.
func Fail(w http.ResponseWriter, r *http.Request, code int, msg string) {
	write(w, r, Envelope{
		Status:     StatusError,
		Message:    msg,
		StatusCode: code,
	})
}

// FromError выбирает статус по виду ошибки. Внутренние ошибки логируются,
// клиент получает только общее сообщение.
func FromError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, storage.ErrInvalidInput) && apperr.KindOf(err) == apperr.Internal {
		err = apperr.Wrap(apperr.Validation, "value is too long or out of range", err)
	}
	kind := apperr.KindOf(err)
	if kind == apperr.Internal || kind == apperr.BadGateway {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Info("request rejected", slog.String("kind", kind.String()), sl.Err(err))
	}
	Fail(w, r, kind.HTTPStatus(), apperr.MessageOf(err))
}

// Invalid отдаёт 400 по ошибке валидатора.
func Invalid(w http.ResponseWriter, r *http.Request, err error) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		Fail(w, r, http.StatusBadRequest, ValidationError(errs))
		return
	}
	Fail(w, r, http.StatusBadRequest, "invalid request")
}

// ValidationError формирует текст ошибки из нарушений валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) string {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return strings.Join(errsMsgs, ", ")
}
