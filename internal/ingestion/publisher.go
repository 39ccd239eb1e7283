package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// OutboundPublisher fans processed notifications out to NATS for
// downstream consumers, one copy per concerned account plus the ledger's
// own identity, after persistence is confirmed. Subjects follow the
// pattern token.notify.{account}.{kind}.
type OutboundPublisher struct {
	js        jetstream.JetStream
	self      string
	inputChan <-chan PublishableNotification
}

// PublishableNotification is a processed notification ready for outbound
// publishing.
type PublishableNotification struct {
	Sequence   int64       `json:"sequence"`
	Kind       string      `json:"kind"`
	CommandID  string      `json:"command_id"`
	Recipients []string    `json:"recipients"`
	Payload    interface{} `json:"payload"`
	StateHash  []byte      `json:"state_hash"`
	Timestamp  time.Time   `json:"timestamp"`
}

func NewOutboundPublisher(js jetstream.JetStream, self string, inputChan <-chan PublishableNotification) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		self:      self,
		inputChan: inputChan,
	}
}

// Run starts the outbound publisher loop.
func (op *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case n, ok := <-op.inputChan:
			if !ok {
				return nil
			}

			if err := op.publish(ctx, n); err != nil {
				log.Printf("WARN: outbound publish failed seq=%d: %v", n.Sequence, err)
				// Non-fatal: downstream consumers can query the operation log directly
			}
		}
	}
}

func (op *OutboundPublisher) publish(ctx context.Context, n PublishableNotification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	// Every concerned party gets a copy, and the ledger identity always
	// hears its own notifications.
	accounts := make(map[string]struct{}, len(n.Recipients)+1)
	for _, recipient := range n.Recipients {
		accounts[recipient] = struct{}{}
	}
	accounts[op.self] = struct{}{}

	for account := range accounts {
		subject := fmt.Sprintf("token.notify.%s.%s", account, n.Kind)
		if _, err := op.js.Publish(ctx, subject, data); err != nil {
			return fmt.Errorf("publish %s: %w", subject, err)
		}
	}
	return nil
}

// EnsureOutboundStream creates the outbound notification stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "TOKEN_NOTIFICATIONS",
		Subjects:  []string{"token.notify.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Println("INFO: ensured outbound stream TOKEN_NOTIFICATIONS")
	return nil
}
