package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"logistics-backoffice/internal/domain/event"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/metrics"

	"go.uber.org/zap"
)

// broker is the subset of pkg/mqtt.Client the publisher needs.
type broker interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// MQTTPublisher publishes domain events as JSON under a topic prefix.
type MQTTPublisher struct {
	broker broker
	prefix string
	qos    byte
}

func NewMQTTPublisher(b broker, prefix string, qos byte) *MQTTPublisher {
	return &MQTTPublisher{
		broker: b,
		prefix: strings.Trim(prefix, "/"),
		qos:    qos,
	}
}

func (p *MQTTPublisher) topic(relative string) string {
	if p.prefix == "" {
		return relative
	}
	return p.prefix + "/" + relative
}

func (p *MQTTPublisher) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	topic := p.topic(e.Topic)
	if err := p.broker.Publish(topic, p.qos, false, payload); err != nil {
		metrics.EventsPublished.WithLabelValues("failed").Inc()
		logger.Warn("Failed to publish event",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	metrics.EventsPublished.WithLabelValues("ok").Inc()
	logger.Debug("Event published", zap.String("topic", topic))
	return nil
}
