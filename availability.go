package hamqtt

// Payloads Home Assistant compares against availability topics by default.
const (
	PayloadAvailable    = "online"
	PayloadNotAvailable = "offline"
)

// AvailabilityMode controls how multiple availability topics combine into a
// single online/offline state.
type AvailabilityMode string

const (
	// AvailabilityModeAll marks the entity online only once every configured
	// availability topic reported the available payload.
	AvailabilityModeAll AvailabilityMode = "all"
	// AvailabilityModeAny marks the entity online if any configured
	// availability topic reported the available payload.
	AvailabilityModeAny AvailabilityMode = "any"
	// AvailabilityModeLatest follows the most recent payload received on any
	// configured availability topic. This is the Home Assistant default.
	AvailabilityModeLatest AvailabilityMode = "latest"
)

// AvailabilityCheck is one MQTT topic consulted for availability
// (online/offline) updates.
type AvailabilityCheck struct {
	// The MQTT topic subscribed to receive availability (online/offline) updates.
	Topic string `json:"t"`

	// The payload that represents the available state. Defaults to "online".
	PayloadAvailable string `json:"pl_avail,omitempty"`

	// The payload that represents the unavailable state. Defaults to "offline".
	PayloadNotAvailable string `json:"pl_not_avail,omitempty"`

	// Defines a template to extract the device's availability from the Topic.
	// The result of this template is compared to PayloadAvailable and
	// PayloadNotAvailable.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

// Availability holds the availability configuration shared by every entity
// kind. It is embedded in entity structs so its keys flatten into the
// top-level discovery payload. The zero value omits availability entirely.
type Availability struct {
	// A list of MQTT topics subscribed to receive availability
	// (online/offline) updates.
	Availability []AvailabilityCheck `json:"avty,omitempty"`

	// When more than one availability topic is configured, Mode controls the
	// conditions needed to set the entity to available.
	Mode AvailabilityMode `json:"avty_mode,omitempty"`
}

// AvailabilityTopic is a convenience for the common single-topic case with
// default payloads.
func AvailabilityTopic(topic string) Availability {
	return Availability{Availability: []AvailabilityCheck{{Topic: topic}}}
}
