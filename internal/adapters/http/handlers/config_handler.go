package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/realtime-config/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realtime-config/internal/domain"
	"github.com/jsamuelsen11/realtime-config/internal/domain/realtime"
	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

// ConfigHandler exposes the config resolver over HTTP.
type ConfigHandler struct {
	svc ports.ConfigService
}

// NewConfigHandler creates a ConfigHandler backed by svc.
func NewConfigHandler(svc ports.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// GetConfig handles GET /api/v1/accounts/{accountId}/configs/{key}.
// The type and default query parameters select the resolver overload.
// Resolution never fails, so the only error response is a 400.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseConfigQuery(chi.URLParam(r, "accountId"), chi.URLParam(r, "key"), r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()
	var value any
	switch def := q.Default.(type) {
	case realtime.StringValue:
		value = h.svc.GetString(ctx, q.AccountID, q.Key, string(def))
	case realtime.IntValue:
		value = h.svc.GetInt(ctx, q.AccountID, q.Key, int(def))
	case realtime.BoolValue:
		value = h.svc.GetBool(ctx, q.AccountID, q.Key, bool(def))
	case realtime.DoubleValue:
		value = h.svc.GetDouble(ctx, q.AccountID, q.Key, float64(def))
	}

	writeJSON(w, r, http.StatusOK, dto.ToConfigValueResponse(q, value))
}

// Invalidate handles POST /api/v1/accounts/{accountId}/invalidate. It clears
// the account's refresh marker and answers 202; the next lookup that hits
// the cache refreshes from the gateway in the background.
func (h *ConfigHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	accountID, err := dto.ParseAccountID(chi.URLParam(r, "accountId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Invalidate(r.Context(), accountID); err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: clearing refresh marker: %w", domain.ErrUnavailable, err))
		return
	}

	writeJSON(w, r, http.StatusAccepted, dto.ToInvalidateResponse(accountID))
}
