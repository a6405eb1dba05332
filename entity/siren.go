package entity

import (
	"github.com/nlowe/hamqtt"
)

// Siren controls a siren with optional tone, duration and volume support.
//
// See https://www.home-assistant.io/integrations/siren.mqtt/
type Siren struct {
	Common

	// A list of available tones the siren supports. When configured, this
	// enables support for setting a `tone` and enables the `tone` state
	// attribute.
	AvailableTones []string `json:"av_tones,omitempty"`

	// Defines a template to generate a custom payload to send to
	// CommandTopic when the siren turn off action is called. By default
	// CommandTemplate is used. The variable `value` is assigned the
	// configured PayloadOff.
	CommandOffTemplate string `json:"cmd_off_tpl,omitempty"`

	// Defines a template to generate a custom payload to send to
	// CommandTopic. The variable `value` is assigned the configured
	// PayloadOn or PayloadOff. The turn on action parameters `tone`,
	// `volume_level` and `duration` can be used as variables in the
	// template.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the siren state. Without
	// command templates, a default JSON payload like
	// `{"state":"ON","tone":"bell","duration":10,"volume_level":0.5}` is
	// published.
	CommandTopic string `json:"cmd_t,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received and published messages.
	Encoding string `json:"e,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name to use when displaying this siren. Can be left empty if only
	// the device name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the siren works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload that represents the off state. Used for both comparing to
	// the value in the state topic and sending as the off command.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the on state.
	PayloadOn string `json:"pl_on,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The payload that represents the off state in the state topic, when it
	// differs from the value sent to the command topic.
	StateOff string `json:"stat_off,omitempty"`

	// The payload that represents the on state in the state topic, when it
	// differs from the value sent to the command topic.
	StateOn string `json:"stat_on,omitempty"`

	// The MQTT topic subscribed to receive state updates. The state update
	// may be either JSON or a simple string. When a JSON payload is
	// detected, the `state` value should supply PayloadOn or PayloadOff, and
	// the `tone`, `duration` and `volume_level` state attributes can be
	// updated as well.
	StateTopic string `json:"stat_t,omitempty"`

	// Defines a template to extract the siren's state from the state topic.
	// The result is compared to StateOn and StateOff.
	StateValueTemplate string `json:"stat_val_tpl,omitempty"`

	// Set to true if the siren supports the `duration` turn on parameter.
	// Enables the `duration` state attribute.
	SupportDuration *bool `json:"sup_dur,omitempty"`

	// Set to true if the siren supports the `volume_set` turn on parameter.
	// Enables the `volume_level` state attribute.
	SupportVolumeSet *bool `json:"sup_vol_set,omitempty"`

	// An ID that uniquely identifies this siren. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Siren{}

func (Siren) Platform() string { return "siren" }

func (s Siren) ID() string { return s.UniqueID }

func (Siren) Validate() error { return nil }

func (s Siren) MarshalJSON() ([]byte, error) {
	type plain Siren
	return marshalWithPlatform(plain(s), s.Platform())
}
