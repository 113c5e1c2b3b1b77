package mqtt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// ErrNotConnected is reported by Health while the client is between reconnects.
var ErrNotConnected = errors.New("mqtt client is not connected")

type Config struct {
	Broker               string
	ClientID             string
	Username             string
	Password             string
	CleanSession         bool
	KeepAlive            time.Duration
	ConnectTimeout       time.Duration
	PublishTimeout       time.Duration
	MaxReconnectInterval time.Duration
}

// DefaultConfig returns a publish-only configuration with conservative timeouts.
func DefaultConfig(broker, clientID string) *Config {
	return &Config{
		Broker:               broker,
		ClientID:             clientID,
		CleanSession:         true,
		KeepAlive:            30 * time.Second,
		ConnectTimeout:       10 * time.Second,
		PublishTimeout:       5 * time.Second,
		MaxReconnectInterval: time.Minute,
	}
}

// Client wraps a paho client with timeouts on every blocking token.
type Client struct {
	client mqtt.Client
	config *Config
}

func NewClient(config *Config) *Client {
	opts := mqtt.NewClientOptions().
		AddBroker(config.Broker).
		SetClientID(config.ClientID).
		SetUsername(config.Username).
		SetPassword(config.Password).
		SetCleanSession(config.CleanSession).
		SetKeepAlive(config.KeepAlive).
		SetConnectTimeout(config.ConnectTimeout).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetMaxReconnectInterval(config.MaxReconnectInterval)

	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info("MQTT client connected", zap.String("broker", config.Broker))
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.String("broker", config.Broker), zap.Error(err))
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		logger.Info("Reconnecting to MQTT broker", zap.String("broker", config.Broker))
	})

	return &Client{
		client: mqtt.NewClient(opts),
		config: config,
	}
}

func (c *Client) Connect() error {
	logger.Info("Connecting to MQTT broker", zap.String("broker", c.config.Broker))

	token := c.client.Connect()
	if !token.WaitTimeout(c.config.ConnectTimeout) {
		return fmt.Errorf("timed out connecting to MQTT broker %s", c.config.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return nil
}

// Publish blocks until the broker acknowledges the message or PublishTimeout passes.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(c.config.PublishTimeout) {
		return fmt.Errorf("timed out publishing to %s", topic)
	}
	return token.Error()
}

// Disconnect waits up to 250ms for in-flight work.
func (c *Client) Disconnect() {
	logger.Info("Disconnecting from MQTT broker")
	c.client.Disconnect(250)
}

func (c *Client) Health(context.Context) error {
	if !c.client.IsConnected() {
		return ErrNotConnected
	}
	return nil
}
