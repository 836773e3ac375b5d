// Package subscription позволяет администратору менять тариф пользователей.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/pagination"
	"github.com/magabrotheeeer/qa-platform/internal/models"
	"github.com/magabrotheeeer/qa-platform/internal/storage"
)

// Repository хранилище пользователей.
type Repository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateSubscriptionType(ctx context.Context, userID int64, subscriptionType string) error
	ListSubscriptionUsers(ctx context.Context, limit, offset int) ([]models.User, int, error)
}

// Service бизнес-логика тарифов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Update меняет тариф пользователя на free или pro. Тариф администратора не меняется.
func (s *Service) Update(ctx context.Context, userID int64, subscriptionType string) (*models.User, error) {
	const op = "services.subscription.Update"

	if subscriptionType != models.SubscriptionFree && subscriptionType != models.SubscriptionPro {
		return nil, apperr.ValidationErr("subscription_type must be free or pro")
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("user not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.UserType == models.UserTypeAdmin {
		return nil, apperr.ForbiddenErr("cannot change subscription of an admin")
	}

	if err := s.repo.UpdateSubscriptionType(ctx, userID, subscriptionType); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFoundErr("user not found")
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.SubscriptionType = subscriptionType
	s.log.Info("subscription updated", slog.Int64("user_id", userID), slog.String("subscription_type", subscriptionType))
	return user, nil
}

// List возвращает страницу пользователей (без администраторов) с их тарифом.
func (s *Service) List(ctx context.Context, p pagination.Params) ([]models.User, pagination.Meta, error) {
	const op = "services.subscription.List"
	users, total, err := s.repo.ListSubscriptionUsers(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("%s: %w", op, err)
	}
	return users, pagination.NewMeta(p, total), nil
}
