// Package request собирает общие для обработчиков операции разбора запроса:
// JSON-тело, идентификаторы из пути и query, поля multipart-формы.
package request

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
)

// MaxMemory объём multipart-формы, который держится в памяти; остальное уходит во временные файлы.
const MaxMemory = 32 << 20

// NewValidator создаёт валидатор, который называет поля по json-тегам.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Logger добавляет к логгеру op и request_id.
func Logger(log *slog.Logger, r *http.Request, op string) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// Decode разбирает JSON-тело и проверяет его валидатором.
// При ошибке ответ уже отправлен и возвращается false.
func Decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to decode request")
		return false
	}
	if err := v.Struct(dst); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.Invalid(w, r, err)
		return false
	}
	return true
}

// Identity возвращает пользователя из контекста. Без него отвечает 401.
func Identity(w http.ResponseWriter, r *http.Request) (middlewarectx.Identity, bool) {
	id, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, "access denied, no token provided")
	}
	return id, ok
}

func parseID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// PathID читает числовой параметр пути. При ошибке отвечает 400.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(name, chi.URLParam(r, name))
	if err != nil {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// QueryID читает числовой query-параметр. При ошибке отвечает 400.
func QueryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(name, r.URL.Query().Get(name))
	if err != nil {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// ParseForm разбирает multipart-форму. При ошибке отвечает 400.
func ParseForm(w http.ResponseWriter, r *http.Request, log *slog.Logger) bool {
	err := r.ParseMultipartForm(MaxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Info("failed to parse multipart form", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to parse form")
		return false
	}
	if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			response.Fail(w, r, http.StatusBadRequest, "failed to parse form")
			return false
		}
	}
	return true
}

// File возвращает первый файл поля формы или nil.
func File(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// OptionalValue возвращает значение поля формы или nil, если поле не передано.
func OptionalValue(r *http.Request, field string) *string {
	values, ok := r.PostForm[field]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// FormID читает числовое поле формы. При ошибке отвечает 400.
func FormID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parseID(name, strings.TrimSpace(r.PostFormValue(name)))
	if err != nil {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}
