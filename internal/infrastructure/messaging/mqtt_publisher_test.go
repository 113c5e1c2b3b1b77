package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"logistics-backoffice/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeBroker struct {
	messages []published
	err      error
}

func (f *fakeBroker) Publish(topic string, qos byte, _ bool, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{topic: topic, qos: qos, payload: payload})
	return nil
}

func TestMQTTPublisher_PrefixesTopic(t *testing.T) {
	b := &fakeBroker{}
	p := NewMQTTPublisher(b, "logistics/", 1)

	err := p.Publish(context.Background(), event.OrderStatusChanged(42, "pending", "active"))
	require.NoError(t, err)
	require.Len(t, b.messages, 1)

	msg := b.messages[0]
	assert.Equal(t, "logistics/orders/42/status", msg.topic)
	assert.Equal(t, byte(1), msg.qos)

	var change event.StatusChange
	require.NoError(t, json.Unmarshal(msg.payload, &change))
	assert.Equal(t, event.StatusChange{ID: 42, From: "pending", To: "active"}, change)
}

func TestMQTTPublisher_NoPrefix(t *testing.T) {
	b := &fakeBroker{}
	p := NewMQTTPublisher(b, "", 0)

	require.NoError(t, p.Publish(context.Background(), event.NotificationCreated(3, map[string]string{"title": "hi"})))
	assert.Equal(t, "notifications/3", b.messages[0].topic)
}

func TestMQTTPublisher_BrokerError(t *testing.T) {
	b := &fakeBroker{err: errors.New("not connected")}
	p := NewMQTTPublisher(b, "x", 0)

	err := p.Publish(context.Background(), event.TransportationRequestStatusChanged(1, "pending", "accepted"))
	assert.ErrorContains(t, err, "x/transportation-requests/1/status")
}
