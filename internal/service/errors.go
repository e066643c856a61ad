package service

import "errors"

// Ошибки бизнес-логики. Все они - штатные исходы, возвращаются
// вызывающему и не роняют процесс
var (
	ErrNothingToClaim     = errors.New("nothing to claim yet")
	ErrClockRegression    = errors.New("last farm time is in the future")
	ErrCooldownActive     = errors.New("wheel cooldown is active")
	ErrUnknownZone        = errors.New("unknown zone")
	ErrBelowMinimum       = errors.New("amount is below withdrawal minimum")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidDestination = errors.New("invalid destination card number")
	ErrPayoutGateway      = errors.New("payout gateway error")
	ErrConfigMissing      = errors.New("payout credential is not configured")
)
