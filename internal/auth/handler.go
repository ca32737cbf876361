package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yarnuri/stampclock/internal/directory"
	"github.com/yarnuri/stampclock/internal/transport"
	"github.com/yarnuri/stampclock/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// RequireAdmin guards the roster endpoints: a valid access token with the
// admin role is required.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Warn("admin middleware: missing authorization token", "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("admin middleware: token validation failed", "error", err, "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		if claims.Role != directory.RoleAdmin {
			h.Logger.Warn("admin middleware: insufficient role", "username", claims.Username, "role", claims.Role)
			h.WriteError(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}
