package services

import (
	"hooklabe/cmd/api/dto"
	"hooklabe/config"
)

// PlanService exposes the pricing catalog from configuration.
type PlanService struct {
	cfg config.AppConfig
}

func NewPlanService(cfg config.AppConfig) *PlanService {
	return &PlanService{cfg: cfg}
}

func (s *PlanService) List() []dto.PlanDTO {
	plans := make([]dto.PlanDTO, 0, len(s.cfg.Plans))
	for _, p := range s.cfg.Plans {
		plans = append(plans, dto.PlanDTO{
			Name:         p.Name,
			PriceINR:     p.PriceINR,
			CreditReward: p.CreditReward,
			MaxScripts:   p.MaxScripts,
			Header:       p.Header,
			Features:     p.Features,
		})
	}
	return plans
}
