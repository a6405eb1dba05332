package entity

import (
	"github.com/nlowe/hamqtt"
)

// DeviceTrigger exposes an MQTT topic as a device automation trigger, e.g. a
// remote button press. Triggers carry no unique id; Home Assistant keys them
// by device, type and subtype.
//
// See https://www.home-assistant.io/integrations/device_trigger.mqtt/
type DeviceTrigger struct {
	Common

	// The type of automation. Always serialized as "trigger".
	AutomationType automationType `json:"atype"`

	// Optional payload to match the payload being sent over the topic.
	Payload string `json:"pl,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The subtype of the trigger, e.g. `button_1`. Entries supported by the
	// frontend: `turn_on`, `turn_off`, `button_1` through `button_6`.
	// Unsupported values render as "<subtype> <type>".
	Subtype string `json:"stype"`

	// The MQTT topic subscribed to receive trigger events. Required.
	Topic string `json:"t"`

	// The type of the trigger, e.g. `button_short_press`. Entries supported
	// by the frontend: `button_short_press`, `button_short_release`,
	// `button_long_press`, `button_long_release`, `button_double_press`,
	// `button_triple_press`, `button_quadruple_press`,
	// `button_quintuple_press`.
	Type string `json:"type"`

	// Defines a template to extract the value.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

// automationType always serializes as "trigger", the only automation type
// Home Assistant accepts.
type automationType struct{}

func (automationType) MarshalJSON() ([]byte, error) { return []byte(`"trigger"`), nil }

var _ hamqtt.Entity = DeviceTrigger{}

func (DeviceTrigger) Platform() string { return "device_trigger" }

// ID returns "". Device triggers do not carry a unique id and can only be
// published as part of a device discovery payload.
func (DeviceTrigger) ID() string { return "" }

func (d DeviceTrigger) Validate() error {
	if d.Topic == "" {
		return schemaErr(d.Platform(), "a trigger topic is required", "t")
	}

	if d.Type == "" || d.Subtype == "" {
		return schemaErr(d.Platform(), "a trigger type and subtype are required", "type", "stype")
	}

	return nil
}

func (d DeviceTrigger) MarshalJSON() ([]byte, error) {
	type plain DeviceTrigger
	return marshalWithPlatform(plain(d), d.Platform())
}
