package directory

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yarnuri/stampclock/internal/transport"
	"github.com/yarnuri/stampclock/pkg/logger"
)

type ServiceAPI interface {
	ListUsers() ([]*User, error)
	CreateUser(dto CreateUserDTO) (*User, error)
	UpdateUser(dto UpdateUserDTO) (*User, error)
	DeleteUser(id int64) error
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

// ListUsers handles GET /users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("ListUsers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if users == nil {
		users = []*User{}
	}
	h.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.CreateUser(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "error", err, "username", dto.Username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.UpdateUser(dto)
	if err != nil {
		h.Logger.Error("UpdateUser: service error", "error", err, "user_id", dto.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users?id=<id>
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.WriteError(w, http.StatusBadRequest, "Användar-ID krävs")
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.Service.DeleteUser(id); err != nil {
		h.Logger.Error("DeleteUser: service error", "error", err, "user_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteUserResponse{Success: true})
}
