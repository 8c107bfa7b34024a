package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/saaga0h/skyclock-platform/pkg/config"
)

// subscription records a topic filter so it can be replayed after a reconnect
type subscription struct {
	qos     byte
	handler MessageHandler
}

// pahoClient implements Client on the Paho MQTT client. Sessions are clean,
// so the broker forgets subscriptions on every reconnect; the client keeps
// its own registry and replays it from the OnConnect hook, otherwise the
// agent would silently stop receiving weather updates after a broker restart.
type pahoClient struct {
	client pahomqtt.Client
	cfg    *config.Config
	logger *slog.Logger

	mu   sync.Mutex
	subs map[string]subscription
}

// NewClient creates an MQTT client for the configured broker
func NewClient(cfg *config.Config, logger *slog.Logger) Client {
	c := &pahoClient{
		cfg:    cfg,
		logger: logger,
		subs:   make(map[string]subscription),
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTAddress())

	clientID := cfg.MQTTClientID
	if clientID == "" {
		clientID = fmt.Sprintf("%s-%d", cfg.ServiceName, time.Now().Unix())
	}
	opts.SetClientID(clientID)

	if cfg.MQTTUser != "" {
		opts.SetUsername(cfg.MQTTUser)
	}
	if cfg.MQTTPassword != "" {
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)

	opts.OnConnect = func(pc pahomqtt.Client) {
		logger.Info("Connected to MQTT broker", "broker", cfg.MQTTAddress())
		c.resubscribe()
	}
	opts.OnConnectionLost = func(pc pahomqtt.Client, err error) {
		logger.Warn("MQTT connection lost", "error", err)
	}

	c.client = pahomqtt.NewClient(opts)
	return c
}

// Connect establishes a connection to the MQTT broker
func (c *pahoClient) Connect(ctx context.Context) error {
	c.logger.Info("Connecting to MQTT broker", "broker", c.cfg.MQTTAddress())

	token := c.client.Connect()

	select {
	case <-token.Done():
		if token.Error() != nil {
			return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("connection timeout: %w", ctx.Err())
	}
}

// Disconnect closes the connection to the MQTT broker
func (c *pahoClient) Disconnect() {
	c.logger.Info("Disconnecting from MQTT broker")
	c.client.Disconnect(250) // 250ms grace period
}

// Subscribe registers the handler and subscribes. The registration survives
// reconnects; the broker-side subscription is replayed by the OnConnect hook.
func (c *pahoClient) Subscribe(topic string, qos byte, handler MessageHandler) error {
	c.mu.Lock()
	c.subs[topic] = subscription{qos: qos, handler: handler}
	c.mu.Unlock()

	if err := c.subscribeToBroker(topic, qos, handler); err != nil {
		return err
	}

	c.logger.Info("Subscribed to MQTT topic", "topic", topic, "qos", qos)
	return nil
}

// Publish publishes a message to a topic
func (c *pahoClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := c.client.Publish(topic, qos, retained, payload)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}

	c.logger.Debug("Published message", "topic", topic, "size", len(payload))
	return nil
}

// IsConnected returns whether the client is currently connected
func (c *pahoClient) IsConnected() bool {
	return c.client.IsConnected()
}

func (c *pahoClient) subscribeToBroker(topic string, qos byte, handler MessageHandler) error {
	pahoHandler := func(pc pahomqtt.Client, msg pahomqtt.Message) {
		handler(&pahoMessage{msg: msg})
	}

	token := c.client.Subscribe(topic, qos, pahoHandler)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, token.Error())
	}
	return nil
}

// resubscribe replays every recorded subscription; called on every (re)connect
func (c *pahoClient) resubscribe() {
	c.mu.Lock()
	subs := make(map[string]subscription, len(c.subs))
	for topic, sub := range c.subs {
		subs[topic] = sub
	}
	c.mu.Unlock()

	for topic, sub := range subs {
		if err := c.subscribeToBroker(topic, sub.qos, sub.handler); err != nil {
			c.logger.Error("Failed to restore MQTT subscription", "topic", topic, "error", err)
		}
	}
}

// pahoMessage adapts a Paho message to the Message interface
type pahoMessage struct {
	msg pahomqtt.Message
}

func (m *pahoMessage) Topic() string   { return m.msg.Topic() }
func (m *pahoMessage) Payload() []byte { return m.msg.Payload() }
