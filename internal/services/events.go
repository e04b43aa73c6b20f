package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher streams committed ledger mutations to Kafka.
// A nil publisher or one without a writer drops events.
type EventPublisher struct {
	writer  KafkaWriter
	ids     IDGenerator
	timeout time.Duration
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(writer KafkaWriter, ids IDGenerator, timeout time.Duration) *EventPublisher {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &EventPublisher{writer: writer, ids: ids, timeout: timeout}
}

// Publish sends the event keyed by its entity id. Failures are logged only.
func (p *EventPublisher) Publish(ctx context.Context, event models.LedgerEvent) {
	if p == nil || p.writer == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = p.ids.NewID()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal ledger event", "type", event.Type, "entity_id", event.EntityID, "error", err)
		return
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ledger event", "type", event.Type, "entity_id", event.EntityID, "error", err)
		return
	}
	logger.Log.Infow("ledger event published", "type", event.Type, "entity_id", event.EntityID)
}

// Close closes the underlying writer.
func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
