// Package hamqtt declares Home Assistant entities over MQTT discovery. The
// schema types in this package and the entity kinds in package entity
// serialize with the abbreviated wire keys Home Assistant accepts, and
// HomeAssistantMQTT publishes the resulting payloads to the discovery topics.
package hamqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nlowe/hamqtt/log"
	"github.com/nlowe/hamqtt/mqtt"
)

// DefaultDiscoveryPrefix is the topic prefix Home Assistant listens on for
// discovery payloads unless reconfigured.
const DefaultDiscoveryPrefix = "homeassistant"

// DiscoveryExpiry is the message expiry applied to retained discovery
// payloads so stale configs eventually age out of the broker.
const DiscoveryExpiry = 7 * 24 * time.Hour

const contentTypeJSON = "application/json"

// Entity is a single discoverable entity of any kind. The concrete kinds
// live in package entity.
type Entity interface {
	json.Marshaler

	// Platform returns the discovery platform for this entity, e.g. "sensor".
	// It is serialized under the "p" key of every payload.
	Platform() string

	// ID returns the entity's unique id, or "" for kinds that do not carry
	// one (tags and device triggers).
	ID() string

	// Validate reports the first schema violation Home Assistant would
	// reject this entity for, or nil.
	Validate() error
}

// HomeAssistantMQTT publishes discovery payloads over the provided
// mqtt.Writer. All payloads are retained, published at QoS 1 with an
// application/json content type, and expire after DiscoveryExpiry.
type HomeAssistantMQTT struct {
	w      mqtt.Writer
	prefix string

	log *slog.Logger
}

// New constructs a HomeAssistantMQTT publishing under the provided discovery
// prefix. Pass "" for the Home Assistant default. A trailing "/" on the
// prefix is ignored.
func New(w mqtt.Writer, discoveryPrefix string) *HomeAssistantMQTT {
	if discoveryPrefix == "" {
		discoveryPrefix = DefaultDiscoveryPrefix
	}

	return &HomeAssistantMQTT{
		w:      w,
		prefix: strings.TrimSuffix(discoveryPrefix, "/"),

		log: log.ForComponent("discovery"),
	}
}

func discoveryWriteOptions() mqtt.WriteOptions {
	return mqtt.WriteOptions{
		QoS:           mqtt.QOSAtLeastOnce,
		Retain:        true,
		MessageExpiry: DiscoveryExpiry,
		ContentType:   contentTypeJSON,
	}
}

// PublishEntity declares a single entity on
// `<discovery_prefix>/<platform>/<unique_id>/config`. The entity must pass
// its own Validate check and must have a unique id.
func (h *HomeAssistantMQTT) PublishEntity(ctx context.Context, e Entity) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("publish %s: %w", e.Platform(), err)
	}

	id := e.ID()
	if id == "" {
		return fmt.Errorf("publish %s: %w", e.Platform(), ErrUniqueIDRequired)
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("publish %s: marshal discovery config: %w", e.Platform(), err)
	}

	topic := fmt.Sprintf("%s/%s/%s/config", h.prefix, e.Platform(), id)
	h.log.With(slog.String("topic", topic)).Debug("Publishing entity discovery payload")
	return h.w.WriteTopic(ctx, topic, discoveryWriteOptions(), payload)
}

// PublishDevice declares a device and all of its components in one payload
// on `<discovery_prefix>/device/<id>/config`.
func (h *HomeAssistantMQTT) PublishDevice(ctx context.Context, d *DeviceComponents) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("publish device: %w", err)
	}

	id, err := d.UniqueID()
	if err != nil {
		return fmt.Errorf("publish device: %w", err)
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("publish device: marshal discovery config: %w", err)
	}

	topic := fmt.Sprintf("%s/device/%s/config", h.prefix, id)
	h.log.With(slog.String("topic", topic), slog.Int("components", len(d.Components))).Debug("Publishing device discovery payload")
	return h.w.WriteTopic(ctx, topic, discoveryWriteOptions(), payload)
}

// PublishData publishes an arbitrary JSON payload to the provided topic with
// the same delivery guarantees as discovery payloads (retained, QoS 1), but
// with a caller-chosen message expiry. An expiry of 0 publishes a message
// that never expires.
func (h *HomeAssistantMQTT) PublishData(ctx context.Context, topic string, payload any, expiry time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("publish %s: marshal payload: %w", topic, err)
	}

	return h.w.WriteTopic(ctx, topic, mqtt.WriteOptions{
		QoS:           mqtt.QOSAtLeastOnce,
		Retain:        true,
		MessageExpiry: expiry,
		ContentType:   contentTypeJSON,
	}, raw)
}
