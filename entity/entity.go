// Package entity holds the entity kinds supported by Home Assistant MQTT
// discovery. Every kind serializes with the abbreviated wire keys from the
// Home Assistant documentation and carries a fixed "p" discriminator naming
// its platform, so a payload can be told apart from every other kind.
//
// All kinds satisfy hamqtt.Entity and can be published on their own with
// HomeAssistantMQTT.PublishEntity or registered on a hamqtt.DeviceComponents
// bundle.
package entity

import (
	"encoding/json"

	"github.com/nlowe/hamqtt"
)

// Common holds the identity and addressing block shared by every entity
// kind. It is embedded by value and its keys flatten into the top-level
// payload.
type Common struct {
	// Replaces `~` with this value in any MQTT topic attribute.
	TopicPrefix string `json:"~,omitempty"`

	// Information about the origin that supplies this entity.
	Origin hamqtt.Origin `json:"o"`

	// Information about the device this entity is a part of, used to tie it
	// into the device registry. At least one of identifiers or connections
	// must be present to identify the device.
	Device hamqtt.Device `json:"dev"`

	hamqtt.Availability

	// The category of the entity.
	EntityCategory hamqtt.EntityCategory `json:"ent_cat,omitempty"`
}

// marshalWithPlatform serializes v and appends the fixed "p" discriminator.
// v must be a struct that serializes to a JSON object, and platform must not
// need escaping.
func marshalWithPlatform(v any, platform string) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := raw[:len(raw)-1]
	if len(out) > 1 {
		out = append(out, ',')
	}
	out = append(out, `"p":"`...)
	out = append(out, platform...)
	return append(out, '"', '}'), nil
}

// schemaErr names a schema violation by the wire keys involved.
func schemaErr(platform, reason string, fields ...string) *hamqtt.SchemaError {
	return &hamqtt.SchemaError{Platform: platform, Fields: fields, Reason: reason}
}
