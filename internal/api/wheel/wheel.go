package wheel

import (
	"errors"
	"net/http"

	"farm_backend/internal/converter"
	mw "farm_backend/internal/middleware"
	"farm_backend/internal/service"
	"farm_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - крутит рулетку удачи
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCooldownActive) {
			http.Error(w, err.Error(), http.StatusTooManyRequests)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}
