package mqtt

import "context"

// Client is the broker-facing surface the skystate agent needs: it consumes
// weather condition updates and publishes retained sky state. The interface
// exists so agent tests can run against an in-memory double.
type Client interface {
	// Connect establishes the broker connection; it honors ctx for the
	// initial dial only, reconnects are handled internally
	Connect(ctx context.Context) error

	// Disconnect closes the connection after flushing in-flight messages
	Disconnect()

	// Subscribe registers a handler for a topic filter. The subscription is
	// replayed automatically after a reconnect.
	Subscribe(topic string, qos byte, handler MessageHandler) error

	// Publish sends a payload; retained messages give late subscribers the
	// last sky state immediately
	Publish(topic string, qos byte, retained bool, payload []byte) error

	// IsConnected reports the current connection state, used by health checks
	IsConnected() bool
}

// MessageHandler is a callback for incoming messages
type MessageHandler func(Message)

// Message is an incoming MQTT message
type Message interface {
	// Topic returns the topic the message was published to
	Topic() string

	// Payload returns the message payload
	Payload() []byte
}
