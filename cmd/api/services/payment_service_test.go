package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"hooklabe/cmd/api/dto"
	"hooklabe/eventbus"
	"hooklabe/models"
)

type fakePayments struct {
	inserted []*models.Payment
	err      error
}

func (f *fakePayments) Insert(ctx context.Context, payment *models.Payment) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, payment)
	return nil
}

type fakeGranter struct {
	grants []string
	reward int
	credit *models.UserCredit
}

func (f *fakeGranter) GrantPlanCredits(ctx context.Context, userID, plan string, reward int) error {
	f.grants = append(f.grants, plan)
	f.reward = reward
	return nil
}

func (f *fakeGranter) Get(ctx context.Context, userID string) (*models.UserCredit, error) {
	if f.credit == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.credit, nil
}

func TestCheckoutBuildsWidgetOptions(t *testing.T) {
	svc := NewPaymentService(testAppConfig(), &fakePayments{}, &fakeGranter{}, &capturePublisher{})

	opts, payErr := svc.Checkout("user-1", "creator@example.com", "Starter")
	require.Nil(t, payErr)

	assert.Equal(t, 19900, opts.Amount, "amount is in paise")
	assert.Equal(t, "INR", opts.Currency)
	assert.Equal(t, "HookLabe AI", opts.Name)
	assert.Equal(t, "Starter Plan Subscription", opts.Description)
	assert.Equal(t, "creator@example.com", opts.Prefill.Email)
	assert.Equal(t, "#00E5FF", opts.Theme.Color)
}

func TestCheckoutRejectsFreeAndUnknownPlans(t *testing.T) {
	svc := NewPaymentService(testAppConfig(), &fakePayments{}, &fakeGranter{}, &capturePublisher{})

	_, payErr := svc.Checkout("user-1", "a@b.c", "Free")
	require.NotNil(t, payErr)
	assert.Equal(t, http.StatusBadRequest, payErr.StatusCode)

	_, payErr = svc.Checkout("user-1", "a@b.c", "Platinum")
	require.NotNil(t, payErr)
	assert.Equal(t, http.StatusBadRequest, payErr.StatusCode)
}

func TestConfirmRecordsPaymentAndAppliesReward(t *testing.T) {
	payments := &fakePayments{}
	granter := &fakeGranter{
		credit: &models.UserCredit{Plan: "Pro", AvailableCredits: 1000, DayKey: "2025-06-01"},
	}
	bus := &capturePublisher{}
	svc := NewPaymentService(testAppConfig(), payments, granter, bus)

	resp, payErr := svc.Confirm(context.Background(), "user-1", dto.ConfirmPaymentRequest{
		Plan:              "Pro",
		ProviderPaymentID: "pay_abc123",
	})
	require.Nil(t, payErr)

	require.Len(t, payments.inserted, 1)
	payment := payments.inserted[0]
	assert.Equal(t, "user-1", payment.UserID)
	assert.Equal(t, 49900, payment.AmountPaise)
	assert.Equal(t, "pay_abc123", payment.ProviderPaymentID)
	assert.Equal(t, models.PaymentStatusCaptured, payment.Status)

	require.Len(t, granter.grants, 1)
	assert.Equal(t, "Pro", granter.grants[0])
	assert.Equal(t, 1000, granter.reward)

	assert.Equal(t, "Pro", resp.Plan)
	assert.Equal(t, 1000, resp.Credits.Available)

	require.Len(t, bus.topics, 1)
	assert.Equal(t, eventbus.TopicPaymentCaptured, bus.topics[0])
	assert.Equal(t, "pay_abc123", bus.events[0].Data["provider_payment_id"])
}

func TestConfirmInsertFailureStopsTheGrant(t *testing.T) {
	payments := &fakePayments{err: assert.AnError}
	granter := &fakeGranter{}
	svc := NewPaymentService(testAppConfig(), payments, granter, &capturePublisher{})

	_, payErr := svc.Confirm(context.Background(), "user-1", dto.ConfirmPaymentRequest{
		Plan:              "Starter",
		ProviderPaymentID: "pay_abc123",
	})
	require.NotNil(t, payErr)
	assert.Equal(t, http.StatusInternalServerError, payErr.StatusCode)
	assert.Empty(t, granter.grants, "credits must not be granted when the payment record fails")
}

func TestConfirmRejectsNonPurchasablePlan(t *testing.T) {
	svc := NewPaymentService(testAppConfig(), &fakePayments{}, &fakeGranter{}, &capturePublisher{})

	_, payErr := svc.Confirm(context.Background(), "user-1", dto.ConfirmPaymentRequest{
		Plan:              "Free",
		ProviderPaymentID: "pay_abc123",
	})
	require.NotNil(t, payErr)
	assert.Equal(t, http.StatusBadRequest, payErr.StatusCode)
}
