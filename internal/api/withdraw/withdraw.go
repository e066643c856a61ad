package withdraw

import (
	"errors"
	"net/http"

	dto "farm_backend/internal/api/dto/withdraw"
	"farm_backend/internal/converter"
	mw "farm_backend/internal/middleware"
	"farm_backend/internal/service"
	"farm_backend/pkg/req"
	"farm_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WithdrawService
}

type Handler struct {
	serv service.WithdrawService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Withdraw - вывод средств на карту
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := mw.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found in context", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Withdraw(r.Context(), userID, payload.Amount, payload.Destination)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBelowMinimum),
			errors.Is(err, service.ErrInvalidDestination):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrInsufficientFunds):
			http.Error(w, err.Error(), http.StatusPaymentRequired)
		case errors.Is(err, service.ErrPayoutGateway):
			// Резервирование уже зафиксировано, показываем детали провайдера
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponse(*result))
}
