// Package autopaho adapts an autopaho connection manager to the mqtt.Writer
// interface, carrying the MQTT v5 publish properties discovery payloads rely
// on (message expiry and content type).
package autopaho

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	hlog "github.com/nlowe/hamqtt/log"
	"github.com/nlowe/hamqtt/mqtt"
)

type adapter struct {
	conn *autopaho.ConnectionManager

	log *slog.Logger
}

var _ mqtt.Writer = &adapter{}

// DialMQTT connects to the broker described by the provided config and
// blocks until the connection is ready. It returns the writer and a
// disconnect func that flushes the connection.
func DialMQTT(ctx context.Context, config autopaho.ClientConfig) (mqtt.Writer, func(ctx context.Context) error, error) {
	a := &adapter{
		log: hlog.ForComponent("autopaho"),
	}

	a.log.Info("Connecting to mqtt broker")
	conn, err := autopaho.NewConnection(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	a.conn = conn

	a.log.Debug("Waiting for connection to be ready")
	if err = conn.AwaitConnection(ctx); err != nil {
		return nil, nil, fmt.Errorf("mqtt: wait for connection: %w", err)
	}

	a.log.Debug("Connected to mqtt broker")
	return a, conn.Disconnect, nil
}

func (a *adapter) WriteTopic(ctx context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	a.log.With(slog.String("topic", topic), slog.Any("options", options)).Debug("Publishing payload")

	var props *paho.PublishProperties
	if options.MessageExpiry > 0 || options.ContentType != "" {
		props = &paho.PublishProperties{ContentType: options.ContentType}

		if options.MessageExpiry > 0 {
			expiry := uint32(options.MessageExpiry.Seconds())
			props.MessageExpiry = &expiry
		}
	}

	_, err := a.conn.Publish(ctx, &paho.Publish{
		QoS:        uint8(options.QoS),
		Retain:     options.Retain,
		Topic:      topic,
		Payload:    value,
		Properties: props,
	})

	return err
}
