package farm

import (
	"errors"
	"net/http"

	dto "farm_backend/internal/api/dto/farm"
	"farm_backend/internal/converter"
	mw "farm_backend/internal/middleware"
	"farm_backend/internal/service"
	"farm_backend/pkg/req"
	"farm_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.FarmService
}

type Handler struct {
	serv service.FarmService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Claim - сбор накопленного начисления
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	credited, err := h.serv.Claim(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToClaim):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrClockRegression):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*credited))
}

// Balance - текущий баланс с учётом несобранных циклов
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	info, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(*info))
}

// Zones - список зон фарма
func (h *Handler) Zones(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	zones, current, err := h.serv.Zones(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToZonesResponse(zones, current))
}

// SelectZone - переключение зоны фарма
func (h *Handler) SelectZone(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SelectZoneRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.serv.SelectZone(r.Context(), userID, payload.ZoneID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownZone) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"zone_id": payload.ZoneID})
}

// Rates - статичные курсы валют
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRatesResponse(h.serv.Rates()))
}
