package middlewarectx

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/qa-platform/internal/http/response"
)

// RequireRole пропускает только пользователей с одной из ролей roles.
// Ставится после JWTMiddleware и до разбора тела, поэтому чужая роль
// получает 403 независимо от содержимого запроса.
func RequireRole(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				log.Error("user identification missing",
					slog.String("request_id", middleware.GetReqID(r.Context())))
				response.Fail(w, r, http.StatusUnauthorized, "access denied, no token provided")
				return
			}
			if !slices.Contains(roles, id.UserType) {
				log.Info("role not allowed",
					slog.Int64("user_id", id.UserID),
					slog.String("role", id.UserType),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				response.Fail(w, r, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
