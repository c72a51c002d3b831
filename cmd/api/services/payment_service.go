package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"hooklabe/cmd/api/dto"
	"hooklabe/cmd/internal/logger"
	"hooklabe/config"
	"hooklabe/eventbus"
	"hooklabe/models"
)

const checkoutBrandName = "HookLabe AI"
const checkoutThemeColor = "#00E5FF"

// paymentRecorder persists captured payments.
type paymentRecorder interface {
	Insert(ctx context.Context, payment *models.Payment) error
}

// creditGranter applies purchased plan credits and reads the ledger back.
type creditGranter interface {
	GrantPlanCredits(ctx context.Context, userID, plan string, reward int) error
	Get(ctx context.Context, userID string) (*models.UserCredit, error)
}

// PaymentError carries the HTTP status a payment failure should map to.
type PaymentError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *PaymentError) Error() string {
	if e == nil {
		return "payment_failed"
	}
	return e.Message
}

func (e *PaymentError) Unwrap() error { return e.Cause }

type PaymentService struct {
	cfg      config.AppConfig
	payments paymentRecorder
	credits  creditGranter
	bus      eventbus.Publisher
	keyID    string
}

func NewPaymentService(cfg config.AppConfig, payments paymentRecorder, credits creditGranter, bus eventbus.Publisher) *PaymentService {
	return &PaymentService{
		cfg:      cfg,
		payments: payments,
		credits:  credits,
		bus:      bus,
		keyID:    os.Getenv("RAZORPAY_KEY_ID"),
	}
}

// Checkout builds the options object the payment widget is opened with.
// Amount is converted to paise.
func (s *PaymentService) Checkout(userID, email, planName string) (dto.CheckoutOptionsDTO, *PaymentError) {
	plan, ok := s.cfg.PlanByName(planName)
	if !ok {
		return dto.CheckoutOptionsDTO{}, &PaymentError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("unknown plan: %s", planName),
		}
	}
	if plan.PriceINR <= 0 {
		return dto.CheckoutOptionsDTO{}, &PaymentError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("the %s plan is not purchasable", plan.Name),
		}
	}

	return dto.CheckoutOptionsDTO{
		Key:         s.keyID,
		Amount:      plan.PriceINR * 100,
		Currency:    "INR",
		Name:        checkoutBrandName,
		Description: fmt.Sprintf("%s Plan Subscription", plan.Name),
		Prefill:     dto.CheckoutPrefillDTO{Email: email},
		Theme:       dto.CheckoutThemeDTO{Color: checkoutThemeColor},
	}, nil
}

// Confirm records the payment and applies the plan's credit reward.
//
// The confirmation trusts the widget's client-side success callback and its
// payment id; there is no server-side signature verification. The source
// product shipped with the same trust model.
func (s *PaymentService) Confirm(ctx context.Context, userID string, req dto.ConfirmPaymentRequest) (dto.ConfirmPaymentResponse, *PaymentError) {
	plan, ok := s.cfg.PlanByName(req.Plan)
	if !ok || plan.PriceINR <= 0 {
		return dto.ConfirmPaymentResponse{}, &PaymentError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("unknown plan: %s", req.Plan),
		}
	}

	payment := &models.Payment{
		UserID:            userID,
		Plan:              plan.Name,
		AmountPaise:       plan.PriceINR * 100,
		Currency:          "INR",
		ProviderPaymentID: req.ProviderPaymentID,
		Status:            models.PaymentStatusCaptured,
	}
	if err := s.payments.Insert(ctx, payment); err != nil {
		return dto.ConfirmPaymentResponse{}, &PaymentError{
			StatusCode: http.StatusInternalServerError,
			Message:    "could not record the payment, please contact support",
			Cause:      err,
		}
	}

	if err := s.credits.GrantPlanCredits(ctx, userID, plan.Name, plan.CreditReward); err != nil {
		return dto.ConfirmPaymentResponse{}, &PaymentError{
			StatusCode: http.StatusInternalServerError,
			Message:    "payment recorded but credits could not be applied, please contact support",
			Cause:      err,
		}
	}

	s.publishCaptured(ctx, userID, plan, req.ProviderPaymentID)

	resp := dto.ConfirmPaymentResponse{Plan: plan.Name}
	if credit, err := s.credits.Get(ctx, userID); err == nil {
		resp.Credits = dto.CreditDTO{
			Available: credit.AvailableCredits,
			UsedToday: credit.UsedToday,
			DayKey:    credit.DayKey,
		}
	}
	return resp, nil
}

func (s *PaymentService) publishCaptured(ctx context.Context, userID string, plan config.PlanConfig, providerPaymentID string) {
	event := eventbus.Event{
		ID:        uuid.NewString(),
		Type:      eventbus.TopicPaymentCaptured,
		Timestamp: time.Now(),
		Source:    "hooklabe-api",
		Data: map[string]any{
			"user_id":             userID,
			"plan":                plan.Name,
			"amount_paise":        plan.PriceINR * 100,
			"provider_payment_id": providerPaymentID,
		},
	}
	if err := s.bus.Publish(ctx, eventbus.TopicPaymentCaptured, event); err != nil {
		logger.ErrorWithFields("payment event publish failed", logger.Fields{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
