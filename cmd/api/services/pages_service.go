package services

import (
	"errors"

	"hooklabe/cmd/api/dto"
)

var ErrPageNotFound = errors.New("page not found")

// PageService serves the static informational pages. The catalog is compiled
// in; these pages change with releases, not at runtime.
type PageService struct {
	pages []dto.PageDTO
}

func NewPageService() *PageService {
	return &PageService{pages: []dto.PageDTO{
		{
			Slug:    "about",
			Title:   "About HookLabe AI",
			Content: "HookLabe AI turns a short creative brief into ready-to-film short-form video scripts. Describe your niche, audience and platform, and get hooks, scripts and on-screen text built for retention.",
		},
		{
			Slug:    "privacy-policy",
			Title:   "Privacy Policy",
			Content: "We store your account email, your credit balance and your payment records. Generation briefs are sent to the model provider to produce your scripts and are not used for advertising. Contact support to delete your account and its data.",
		},
		{
			Slug:    "terms-of-service",
			Title:   "Terms of Service",
			Content: "Generated scripts are yours to use commercially. Credits are consumed per generation and do not expire while your account is active. Abuse of the generation service may lead to suspension.",
		},
		{
			Slug:    "refund-policy",
			Title:   "Refund Policy",
			Content: "Plan purchases can be refunded within 7 days if fewer than 10 of the purchased credits were used. Write to support with your payment id to request a refund.",
		},
		{
			Slug:    "contact",
			Title:   "Contact",
			Content: "Questions, refunds or partnership requests: support@hooklabe.app.",
		},
	}}
}

func (s *PageService) List() []dto.PageSummaryDTO {
	summaries := make([]dto.PageSummaryDTO, 0, len(s.pages))
	for _, p := range s.pages {
		summaries = append(summaries, dto.PageSummaryDTO{Slug: p.Slug, Title: p.Title})
	}
	return summaries
}

func (s *PageService) Get(slug string) (dto.PageDTO, error) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return dto.PageDTO{}, ErrPageNotFound
}
