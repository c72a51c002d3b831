package dto

import "hooklabe/generator"

// GenerateRequest is the script generation request schema. Field names match
// the generation config the model prompt is built from.
type GenerateRequest struct {
	Niche        string `json:"niche" example:"Fitness & Health"`
	AudienceType string `json:"audienceType" example:"Beginners who want to lose weight"`
	Platform     string `json:"platform" example:"TikTok"`
	Tone         string `json:"tone" example:"Energetic"`
	Language     string `json:"language" example:"English"`
	HookStyle    string `json:"hookStyle" example:"Curious"`
	Duration     string `json:"duration" example:"30-60s"`
	Count        int    `json:"count" example:"3"`
}

// ToConfig maps the request onto a generation config, filling blanks with the
// defaults.
func (r GenerateRequest) ToConfig() generator.GenerationConfig {
	cfg := generator.DefaultConfig()
	if r.Niche != "" {
		cfg.Niche = generator.Niche(r.Niche)
	}
	cfg.AudienceType = r.AudienceType
	if r.Platform != "" {
		cfg.Platform = generator.Platform(r.Platform)
	}
	if r.Tone != "" {
		cfg.Tone = generator.Tone(r.Tone)
	}
	if r.Language != "" {
		cfg.Language = generator.Language(r.Language)
	}
	if r.HookStyle != "" {
		cfg.HookStyle = generator.HookStyle(r.HookStyle)
	}
	if r.Duration != "" {
		cfg.Duration = r.Duration
	}
	if r.Count != 0 {
		cfg.Count = r.Count
	}
	return cfg
}

// GenerateResponse is the script generation response schema.
type GenerateResponse struct {
	Scripts []generator.ScriptIdea `json:"scripts"`
	Credits CreditDTO              `json:"credits"`
}
