package dto

// PlanDTO is the pricing catalog entry schema.
type PlanDTO struct {
	Name         string   `json:"name" example:"Starter"`
	PriceINR     int      `json:"price_inr" example:"199"`
	CreditReward int      `json:"credit_reward" example:"300"`
	MaxScripts   int      `json:"max_scripts" example:"5"`
	Header       string   `json:"header,omitempty" example:"Most Popular"`
	Features     []string `json:"features"`
}
