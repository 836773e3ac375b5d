// Package user реализует HTTP-обработчики регистрации, входа, выхода и профиля.
//
// При входе JWT возвращается в теле ответа и дополнительно кладётся в HttpOnly cookie,
// которую JWTMiddleware принимает наравне с заголовком Authorization.
package user

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-platform/internal/http/request"
	"github.com/magabrotheeeer/qa-platform/internal/http/response"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	authservice "github.com/magabrotheeeer/qa-platform/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

// CookieConfig параметры cookie с токеном.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// SignupRequest входные данные регистрации.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=255"`
}

// LoginRequest учётные данные для входа.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse токен и профиль пользователя.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Handler обрабатывает HTTP-запросы пользователей.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookie   CookieConfig
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, cookie CookieConfig) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookie:   cookie,
		validate: request.NewValidator(),
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с типом visitor и бесплатной подпиской.
// @Tags User
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Данные пользователя"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} response.ErrorResponse "Имя или email заняты"
// @Router /user/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.user.Signup")

	var req SignupRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), authservice.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	response.OK(w, r, http.StatusCreated, "user registered successfully", user)
}

// Login godoc
// @Summary Вход пользователя
// @Description Проверяет email и пароль, возвращает JWT и ставит HttpOnly cookie.
// @Tags User
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Учетные данные"
// @Success 200 {object} response.Envelope{data=LoginResponse}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Router /user/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.user.Login")

	var req LoginRequest
	if !request.Decode(w, r, log, h.validate, &req) {
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("login success", slog.Int64("user_id", user.ID))
	response.OK(w, r, http.StatusOK, "login successful", LoginResponse{Token: token, User: user})
}

// Logout godoc
// @Summary Выход пользователя
// @Description Очищает cookie с токеном.
// @Tags User
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /user/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	response.OK(w, r, http.StatusOK, "logout successful", nil)
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.User}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user/getProfile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	log := request.Logger(h.log, r, "handlers.user.Profile")

	actor, ok := request.Identity(w, r)
	if !ok {
		return
	}

	user, err := h.service.Profile(r.Context(), actor.UserID)
	if err != nil {
		response.FromError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, "profile fetched successfully", user)
}
