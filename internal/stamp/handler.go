package stamp

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yarnuri/stampclock/internal/transport"
	"github.com/yarnuri/stampclock/pkg/logger"
)

type ServiceAPI interface {
	RecordStamp(dto RecordStampDTO) (*Event, error)
	GetStatus(username string) (Status, error)
	History(username string, limit int) ([]*Event, error)
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

// Record handles POST /stamp
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var dto RecordStampDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Record: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.Service.RecordStamp(dto)
	if err != nil {
		h.Logger.Error("Record: service error", "error", err, "username", dto.Username)
		h.HandleServiceError(w, err)
		return
	}

	// the event just written is the latest one, so the derived state follows
	// directly from its type
	h.WriteJSON(w, http.StatusOK, RecordStampResponse{
		Success:     true,
		StampID:     ev.ID,
		IsStampedIn: ev.Type == TypeIn,
	})
}

// Status handles POST /stamp/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	var dto StatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Status: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	status, err := h.Service.GetStatus(dto.Username)
	if err != nil {
		h.Logger.Error("Status: service error", "error", err, "username", dto.Username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, status)
}

// History handles GET /stamp/history?username=<u>&limit=<n>
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		h.WriteError(w, http.StatusBadRequest, "username is required")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	events, err := h.Service.History(username, limit)
	if err != nil {
		h.Logger.Error("History: service error", "error", err, "username", username)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, HistoryResponse{History: events})
}
