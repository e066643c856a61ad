package model

// WithdrawalRequest - запрос на вывод средств во внешний платёжный сервис
type WithdrawalRequest struct {
	UserID         int
	AmountRub      int
	Destination    string // номер карты получателя
	IdempotencyKey string
}

// WithdrawalResult - подтверждение принятого вывода
type WithdrawalResult struct {
	AmountRub int
	RequestID string
}
