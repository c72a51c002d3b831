package dto

// CreditDTO is the credit balance response schema.
type CreditDTO struct {
	Available int    `json:"available" example:"7"`
	UsedToday int    `json:"used_today" example:"3"`
	DayKey    string `json:"day_key" example:"2025-06-01"`
}
