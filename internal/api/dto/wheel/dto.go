package wheel

import "time"

type SpinResponse struct {
	Message  string    `json:"message"`   // Описание выигрыша
	Prize    string    `json:"prize"`     // Короткое описание приза
	NextSpin time.Time `json:"next_spin"` // Когда рулетка станет доступна снова
}
