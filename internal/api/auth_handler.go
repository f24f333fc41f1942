package api

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:  users,
		logger: logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.users.Register(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newAuthResponse(res))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newAuthResponse(res))
}

// CheckStatus handles GET /api/auth/check-status. It re-issues a token for
// the authenticated user.
func (h *AuthHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.users.CheckStatus(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newAuthResponse(res))
}

// Private handles GET /api/auth/private. It echoes the user and the request
// headers.
func (h *AuthHandler) Private(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("private route reached",
		slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, PrivateResponse{
		OK:         true,
		Message:    "Hello World Private",
		User:       user,
		UserEmail:  user.Email,
		RawHeaders: rawHeaders(r),
		Headers:    r.Header,
	})
}

// EchoUser handles the role-protected private routes.
func (h *AuthHandler) EchoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, UserEchoResponse{OK: true, User: user})
}

// currentUser returns the user stored by the auth middleware. A missing user
// is a routing mistake and answered with 500.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error("handler reached without an authenticated user",
			slog.String("path", r.URL.Path))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "User not found (request)")
		return nil, false
	}
	return user, true
}

// rawHeaders flattens the request headers into name, value pairs, Host
// first and the rest sorted by name.
func rawHeaders(r *http.Request) []string {
	names := make([]string, 0, len(r.Header))
	for name := range r.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	raw := make([]string, 0, 2*len(names)+2)
	if r.Host != "" {
		raw = append(raw, "Host", r.Host)
	}
	for _, name := range names {
		for _, v := range r.Header[name] {
			raw = append(raw, name, v)
		}
	}
	return raw
}

// decodeAndValidate decodes the JSON body into dst and validates it. It
// writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := shared.DecodeJSON(w, r, dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
