package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/redact"
	"github.com/phrazzld/shop-api/internal/service/auth"
	"github.com/phrazzld/shop-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the Bearer token, loads the user it was issued for
// and stores that user in the request context. Unknown and inactive users
// are rejected with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				log.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token not valid")
				return
			}
			log.Error("failed to load authenticated user",
				"error", redact.Error(err),
				"user_id", claims.UserID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}
		if !user.IsActive {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "User is inactive, talk with an admin")
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		ctx = logger.WithLogger(ctx, log.With(slog.String("user_id", user.ID.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles lets a request through when the authenticated user holds at
// least one of roles. An empty list admits every authenticated user. It must
// run after Authenticate.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := shared.UserFromContext(r.Context())
			if !ok {
				logger.FromContext(r.Context()).Error("role check without an authenticated user")
				shared.RespondWithError(w, r, http.StatusInternalServerError, "User not found (request)")
				return
			}
			if !user.HasAnyRole(roles...) {
				shared.RespondWithError(w, r, http.StatusForbidden,
					"User "+user.FullName+" needs a valid role: "+joinRoles(roles))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return "[" + strings.Join(names, ",") + "]"
}
