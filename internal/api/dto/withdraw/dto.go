package withdraw

type WithdrawRequest struct {
	Amount      int    `json:"amount"`      // Сумма в рублях, не меньше минимума
	Destination string `json:"destination"` // Номер карты получателя
}

type WithdrawResponse struct {
	AmountRub int    `json:"amount_rub"`
	RequestID string `json:"request_id"`
}
