package services

import (
	"context"
	"iter"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"hooklabe/config"
	"hooklabe/eventbus"
	"hooklabe/generator"
	"hooklabe/models"
	"hooklabe/repositories"
)

type fakeStreamer struct {
	fragments []string
	err       error
	calls     int
}

func (f *fakeStreamer) Stream(ctx context.Context, cfg generator.GenerationConfig) iter.Seq2[string, error] {
	f.calls++
	return func(yield func(string, error) bool) {
		for _, fragment := range f.fragments {
			if !yield(fragment, nil) {
				return
			}
		}
		if f.err != nil {
			yield("", f.err)
		}
	}
}

type fakeGater struct {
	status     repositories.UsageStatus
	credit     *models.UserCredit
	checkCalls int
}

func (f *fakeGater) CheckAndUseCredit(ctx context.Context, userID string, freeDailyLimit int) (repositories.UsageStatus, error) {
	f.checkCalls++
	return f.status, nil
}

func (f *fakeGater) Get(ctx context.Context, userID string) (*models.UserCredit, error) {
	if f.credit == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.credit, nil
}

type capturePublisher struct {
	topics []string
	events []eventbus.Event
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, event eventbus.Event) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Close() {}

func testAppConfig() config.AppConfig {
	return config.AppConfig{
		Credits: config.CreditsConfig{SignupGrant: 10, FreeDailyLimit: 5},
		Plans: []config.PlanConfig{
			{Name: "Free", PriceINR: 0, CreditReward: 0, MaxScripts: 5},
			{Name: "Starter", PriceINR: 199, CreditReward: 300, MaxScripts: 5},
			{Name: "Pro", PriceINR: 499, CreditReward: 1000, MaxScripts: 10},
		},
	}
}

func TestGeneratePlanLimitRefusesBeforeSpendingAnything(t *testing.T) {
	engine := &fakeStreamer{}
	gater := &fakeGater{status: repositories.UsageSuccess}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	cfg := generator.DefaultConfig()
	cfg.Count = 20

	_, genErr := svc.Generate(context.Background(), "user-1", cfg, nil)
	require.NotNil(t, genErr)
	assert.Equal(t, http.StatusForbidden, genErr.StatusCode)
	assert.Contains(t, genErr.Message, "5")
	assert.Contains(t, genErr.Message, "Free")
	assert.Equal(t, 0, gater.checkCalls, "no credit may be consumed on a plan-limit refusal")
	assert.Equal(t, 0, engine.calls, "the engine must not be called on a plan-limit refusal")
}

func TestGeneratePlanLimitUsesTheUsersOwnPlan(t *testing.T) {
	engine := &fakeStreamer{fragments: []string{`{"scripts":[]}`}}
	gater := &fakeGater{
		status: repositories.UsageSuccess,
		credit: &models.UserCredit{Plan: "Pro", AvailableCredits: 500},
	}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	cfg := generator.DefaultConfig()
	cfg.Count = 8

	_, genErr := svc.Generate(context.Background(), "user-1", cfg, nil)
	assert.Nil(t, genErr, "count 8 is within the Pro cap of 10")
	assert.Equal(t, 1, engine.calls)
}

func TestGenerateNoCreditsStopsBeforeTheEngine(t *testing.T) {
	engine := &fakeStreamer{}
	gater := &fakeGater{status: repositories.UsageNoCredits}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	_, genErr := svc.Generate(context.Background(), "user-1", generator.DefaultConfig(), nil)
	require.NotNil(t, genErr)
	assert.Equal(t, http.StatusPaymentRequired, genErr.StatusCode)
	assert.Equal(t, 0, engine.calls)
}

func TestGenerateDailyLimitReached(t *testing.T) {
	engine := &fakeStreamer{}
	gater := &fakeGater{status: repositories.UsageDailyLimitReached}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	_, genErr := svc.Generate(context.Background(), "user-1", generator.DefaultConfig(), nil)
	require.NotNil(t, genErr)
	assert.Equal(t, http.StatusForbidden, genErr.StatusCode)
	assert.Contains(t, genErr.Message, "daily")
	assert.Equal(t, 0, engine.calls)
}

func TestGenerateAssemblesStreamedScriptsInOrder(t *testing.T) {
	engine := &fakeStreamer{fragments: []string{
		`{"scripts":[{"style":"Curious","hook":"Wait for it",`,
		`"mainScript":"First body","onScreenText":"WAIT","cta":"Follow"},`,
		`{"style":"Shocking","hook":"Nobody tells you this","mainScript":"Second body","onScreenText":"TRUTH","cta":"Share"}]}`,
	}}
	gater := &fakeGater{
		status: repositories.UsageSuccess,
		credit: &models.UserCredit{Plan: "Free", AvailableCredits: 9, UsedToday: 1, DayKey: "2025-06-01"},
	}
	bus := &capturePublisher{}
	svc := NewGenerationService(engine, gater, testAppConfig(), bus)

	var observed []string
	cfg := generator.DefaultConfig()
	cfg.Count = 2

	resp, genErr := svc.Generate(context.Background(), "user-1", cfg, func(total string) {
		observed = append(observed, total)
	})
	require.Nil(t, genErr)

	require.Len(t, resp.Scripts, 2)
	assert.Equal(t, "Script 1", resp.Scripts[0].Title)
	assert.Equal(t, "Script 2", resp.Scripts[1].Title)
	assert.NotEqual(t, resp.Scripts[0].ID, resp.Scripts[1].ID)
	assert.Equal(t, "Wait for it", resp.Scripts[0].Hook)

	require.Len(t, observed, 3, "onFragment observes each accumulation step")
	assert.Greater(t, len(observed[1]), len(observed[0]))
	assert.Greater(t, len(observed[2]), len(observed[1]))

	assert.Equal(t, 9, resp.Credits.Available)
	require.Len(t, bus.topics, 1)
	assert.Equal(t, eventbus.TopicGenerationCompleted, bus.topics[0])
	assert.Equal(t, 2, bus.events[0].Data["count"])
}

func TestGenerateEngineFailureIsWordedAsConnectionFailure(t *testing.T) {
	engine := &fakeStreamer{
		fragments: []string{`{"scripts":[`},
		err:       assert.AnError,
	}
	gater := &fakeGater{status: repositories.UsageSuccess}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	_, genErr := svc.Generate(context.Background(), "user-1", generator.DefaultConfig(), nil)
	require.NotNil(t, genErr)
	assert.Equal(t, http.StatusBadGateway, genErr.StatusCode)
	assert.Contains(t, genErr.Message, "generation engine")
}

func TestGenerateMalformedResponse(t *testing.T) {
	engine := &fakeStreamer{fragments: []string{`{"scripts":[{"hook":"Wait`}}
	gater := &fakeGater{status: repositories.UsageSuccess}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	_, genErr := svc.Generate(context.Background(), "user-1", generator.DefaultConfig(), nil)
	require.NotNil(t, genErr)
	assert.Contains(t, genErr.Message, "interrupted or malformed")
}

func TestGenerateModelRefusalIsSurfacedVerbatim(t *testing.T) {
	engine := &fakeStreamer{fragments: []string{`{"scripts":[],"error":"This topic violates the content policy."}`}}
	gater := &fakeGater{status: repositories.UsageSuccess}
	svc := NewGenerationService(engine, gater, testAppConfig(), &capturePublisher{})

	_, genErr := svc.Generate(context.Background(), "user-1", generator.DefaultConfig(), nil)
	require.NotNil(t, genErr)
	assert.Equal(t, http.StatusUnprocessableEntity, genErr.StatusCode)
	assert.Equal(t, "This topic violates the content policy.", genErr.Message)
}
