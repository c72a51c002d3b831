package eventbus

import (
	"context"
	"time"
)

// Topics published by the API service. Consumers (analytics, notifications)
// live outside this repository.
const (
	TopicGenerationCompleted = "generation.completed"
	TopicPaymentCaptured     = "payment.captured"
)

// Event is the payload envelope for every published message.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Data      map[string]any `json:"data"`
}

// Publisher is the minimal surface the services need. The Kafka
// implementation is used when brokers are configured; Noop otherwise.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// Noop is the publisher used when no brokers are configured. Publishing is a
// silent success so call sites never have to branch.
type Noop struct{}

func (Noop) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (Noop) Close()                                                       {}
