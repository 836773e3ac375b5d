// Package auth содержит регистрацию, вход и профиль пользователя,
// а также создание учётной записи администратора при старте.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/qa-platform/internal/config"
	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/password"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByEmail возвращает пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenMaker выпускает токены доступа.
type TokenMaker interface {
	GenerateToken(userID int64, userType string) (string, error)
}

// RegisterInput данные для регистрации.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Service отвечает за регистрацию и вход.
type Service struct {
	users UserRepository
	maker TokenMaker
	log   *slog.Logger
}

// New создаёт сервис аутентификации.
func New(users UserRepository, maker TokenMaker, log *slog.Logger) *Service {
	return &Service{
		users: users,
		maker: maker,
		log:   log,
	}
}

// Register создаёт пользователя visitor с бесплатной подпиской.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:         strings.TrimSpace(in.Username),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:     hashed,
		FullName:         strings.TrimSpace(in.FullName),
		UserType:         models.UserTypeVisitor,
		SubscriptionType: models.SubscriptionFree,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.ConflictErr("username or email already registered")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	return &user, nil
}

// Login проверяет пароль и выпускает токен.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, apperr.UnauthenticatedErr("invalid email or password")
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", nil, apperr.UnauthenticatedErr("invalid email or password")
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.maker.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Profile возвращает профиль пользователя.
func (s *Service) Profile(ctx context.Context, userID int64) (*models.User, error) {
	const op = "services.auth.Profile"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("user not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// EnsureAdmin создаёт администратора из конфига, если его ещё нет.
// Пустой email означает, что создавать никого не нужно.
func (s *Service) EnsureAdmin(ctx context.Context, cfg config.Admin) error {
	const op = "services.auth.EnsureAdmin"

	if cfg.AdminEmail == "" {
		return nil
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("%s: admin password is empty", op)
	}
	hashed, err := password.GetHash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.users.CreateUser(ctx, models.User{
		Username:         cfg.AdminUsername,
		Email:            strings.ToLower(cfg.AdminEmail),
		PasswordHash:     hashed,
		FullName:         "Administrator",
		UserType:         models.UserTypeAdmin,
		SubscriptionType: models.SubscriptionPro,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		s.log.Debug("admin already exists", slog.String("email", cfg.AdminEmail))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("admin account created", slog.String("email", cfg.AdminEmail))
	return nil
}
