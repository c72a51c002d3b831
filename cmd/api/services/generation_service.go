package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/internal/logger"
	"hooklabe/config"
	"hooklabe/eventbus"
	"hooklabe/generator"
	"hooklabe/models"
	"hooklabe/repositories"
)

// scriptStreamer is the slice of the generation engine the service needs.
type scriptStreamer interface {
	Stream(ctx context.Context, cfg generator.GenerationConfig) iter.Seq2[string, error]
}

// creditGater gates generations and exposes the ledger snapshot.
type creditGater interface {
	CheckAndUseCredit(ctx context.Context, userID string, freeDailyLimit int) (repositories.UsageStatus, error)
	Get(ctx context.Context, userID string) (*models.UserCredit, error)
}

// GenerationError carries the HTTP status a gating or engine failure should
// map to, alongside the user-facing message.
type GenerationError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return "generation_failed"
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Cause }

type GenerationService struct {
	engine         scriptStreamer
	credits        creditGater
	cfg            config.AppConfig
	bus            eventbus.Publisher
	freeDailyLimit int
}

func NewGenerationService(engine scriptStreamer, credits creditGater, cfg config.AppConfig, bus eventbus.Publisher) *GenerationService {
	return &GenerationService{
		engine:         engine,
		credits:        credits,
		cfg:            cfg,
		bus:            bus,
		freeDailyLimit: cfg.Credits.FreeDailyLimit,
	}
}

// Generate runs one gated generation for the user: plan cap check, credit
// reservation, then the streaming call. onFragment, when non-nil, observes the
// accumulated raw text as fragments arrive so the handler can relay live
// progress. The credit is consumed before the engine call and is not refunded
// on engine failure, matching the source product.
func (s *GenerationService) Generate(ctx context.Context, userID string, genCfg generator.GenerationConfig, onFragment func(total string)) (dto.GenerateResponse, *GenerationError) {
	plan := s.planFor(ctx, userID)
	genCfg.Plan = plan.Name
	if genCfg.Count < 1 {
		genCfg.Count = 1
	}
	if genCfg.Count > plan.MaxScripts {
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusForbidden,
			Message:    fmt.Sprintf("Your %s plan is limited to %d scripts per generation.", plan.Name, plan.MaxScripts),
		}
	}

	status, err := s.credits.CheckAndUseCredit(ctx, userID, s.freeDailyLimit)
	if err != nil {
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusInternalServerError,
			Message:    "could not verify your credits, please try again",
			Cause:      err,
		}
	}
	switch status {
	case repositories.UsageSuccess:
	case repositories.UsageDailyLimitReached:
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusForbidden,
			Message:    "You have reached your daily free generation limit. Upgrade your plan to keep going.",
		}
	case repositories.UsageNoCredits:
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusPaymentRequired,
			Message:    "You are out of credits. Purchase a plan to continue generating scripts.",
		}
	default:
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusInternalServerError,
			Message:    "could not verify your credits, please try again",
		}
	}

	raw, err := generator.Collect(s.engine.Stream(ctx, genCfg), onFragment)
	if err != nil {
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusBadGateway,
			Message:    "connection to the generation engine failed, please try again",
			Cause:      err,
		}
	}

	scripts, err := generator.Assemble(raw)
	if err != nil {
		var modelErr *generator.ModelError
		if errors.As(err, &modelErr) {
			// the model's own refusal text is surfaced verbatim
			return dto.GenerateResponse{}, &GenerationError{
				StatusCode: http.StatusUnprocessableEntity,
				Message:    modelErr.Message,
				Cause:      err,
			}
		}
		return dto.GenerateResponse{}, &GenerationError{
			StatusCode: http.StatusBadGateway,
			Message:    "the response was interrupted or malformed, please try again",
			Cause:      err,
		}
	}

	s.publishCompleted(ctx, userID, genCfg, len(scripts))

	return dto.GenerateResponse{
		Scripts: scripts,
		Credits: s.creditSnapshot(ctx, userID),
	}, nil
}

func (s *GenerationService) planFor(ctx context.Context, userID string) config.PlanConfig {
	planName := "Free"
	if credit, err := s.credits.Get(ctx, userID); err == nil {
		planName = credit.Plan
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		logger.ErrorWithFields("plan lookup failed, falling back to Free", logger.Fields{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	if plan, ok := s.cfg.PlanByName(planName); ok {
		return plan
	}
	if plan, ok := s.cfg.PlanByName("Free"); ok {
		return plan
	}
	return config.PlanConfig{Name: planName, MaxScripts: 1}
}

func (s *GenerationService) creditSnapshot(ctx context.Context, userID string) dto.CreditDTO {
	credit, err := s.credits.Get(ctx, userID)
	if err != nil {
		return dto.CreditDTO{}
	}
	return dto.CreditDTO{
		Available: credit.AvailableCredits,
		UsedToday: credit.UsedToday,
		DayKey:    credit.DayKey,
	}
}

func (s *GenerationService) publishCompleted(ctx context.Context, userID string, genCfg generator.GenerationConfig, count int) {
	event := eventbus.Event{
		ID:        uuid.NewString(),
		Type:      eventbus.TopicGenerationCompleted,
		Timestamp: time.Now(),
		Source:    "hooklabe-api",
		Data: map[string]any{
			"user_id":  userID,
			"niche":    genCfg.Niche,
			"platform": genCfg.Platform,
			"count":    count,
		},
	}
	if err := s.bus.Publish(ctx, eventbus.TopicGenerationCompleted, event); err != nil {
		logger.ErrorWithFields("generation event publish failed", logger.Fields{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
