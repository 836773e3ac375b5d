// Package middlewarectx содержит HTTP middleware аутентификации, проверки ролей
// и ограничения частоты запросов, а также доступ к пользователю из контекста запроса.
package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/qa-platform/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey ключ пользователя в контексте.
const IdentityKey Key = "identity"

// Identity пользователь, прошедший проверку токена.
type Identity = models.Actor

// WithIdentity кладёт пользователя в контекст.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

// IdentityFrom достаёт пользователя из контекста.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(Identity)
	if !ok || id.UserID <= 0 {
		return Identity{}, false
	}
	return id, true
}
