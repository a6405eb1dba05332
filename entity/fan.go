package entity

import (
	"github.com/nlowe/hamqtt"
)

// Fan controls a fan with optional speed percentage, preset mode, oscillation
// and direction support.
//
// See https://www.home-assistant.io/integrations/fan.mqtt/
type Fan struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the fan state. Required.
	CommandTopic string `json:"cmd_t"`

	// Defines a template to generate the payload to send to
	// DirectionCommandTopic.
	DirectionCommandTemplate string `json:"dir_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the fan direction
	// (`forward` or `reverse`).
	DirectionCommandTopic string `json:"dir_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive direction state updates.
	DirectionStateTopic string `json:"dir_stat_t,omitempty"`

	// Defines a template to extract the direction value.
	DirectionValueTemplate string `json:"dir_val_tpl,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received and published messages.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the fan. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the fan works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The MQTT topic subscribed to receive oscillation state updates.
	OscillationStateTopic string `json:"osc_stat_t,omitempty"`

	// Defines a template to extract the oscillation value.
	OscillationValueTemplate string `json:"osc_val_tpl,omitempty"`

	// Defines a template to generate the payload to send to
	// OscillationCommandTopic.
	OscillationCommandTemplate string `json:"osc_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the oscillation state.
	OscillationCommandTopic string `json:"osc_cmd_t,omitempty"`

	// The payload that represents the stop state.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the running state.
	PayloadOn string `json:"pl_on,omitempty"`

	// The payload that represents the oscillation off state.
	PayloadOscillationOff string `json:"pl_osc_off,omitempty"`

	// The payload that represents the oscillation on state.
	PayloadOscillationOn string `json:"pl_osc_on,omitempty"`

	// Defines a template to generate the payload to send to
	// PercentageCommandTopic. The incoming percentage is available as
	// `value`.
	PercentageCommandTemplate string `json:"pct_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the fan speed state based
	// on a percentage.
	PercentageCommandTopic string `json:"pct_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive fan speed based on a percentage.
	PercentageStateTopic string `json:"pct_stat_t,omitempty"`

	// Defines a template to extract the percentage value from the payload
	// received on PercentageStateTopic.
	PercentageValueTemplate string `json:"pct_val_tpl,omitempty"`

	// Defines a template to generate the payload to send to
	// PresetModeCommandTopic.
	PresetModeCommandTemplate string `json:"pr_mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the preset mode. Must be
	// configured together with PresetModes.
	PresetModeCommandTopic string `json:"pr_mode_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive fan speed based on preset mode.
	PresetModeStateTopic string `json:"pr_mode_stat_t,omitempty"`

	// Defines a template to extract the preset mode value from the payload
	// received on PresetModeStateTopic.
	PresetModeValueTemplate string `json:"pr_mode_val_tpl,omitempty"`

	// List of preset modes this fan supports, e.g. `auto`, `smart`, `whoosh`,
	// `eco` or `breeze`.
	PresetModes []string `json:"pr_modes,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The maximum of numeric output range (representing 100%).
	SpeedRangeMax *int `json:"spd_rng_max,omitempty"`

	// The minimum of numeric output range. A number below this range is
	// considered off, so the minimum must be greater than zero.
	SpeedRangeMin *int `json:"spd_rng_min,omitempty"`

	// The MQTT topic subscribed to receive state updates. A "None" payload
	// resets to an unknown state, an empty payload is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// Defines a template to extract the fan state from the state topic.
	StateValueTemplate string `json:"stat_val_tpl,omitempty"`

	// An ID that uniquely identifies this fan. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Fan{}

func (Fan) Platform() string { return "fan" }

func (f Fan) ID() string { return f.UniqueID }

func (f Fan) Validate() error {
	if f.CommandTopic == "" {
		return schemaErr(f.Platform(), "a command topic is required", "cmd_t")
	}

	if f.PresetModeCommandTopic != "" && len(f.PresetModes) == 0 {
		return schemaErr(f.Platform(), "a preset mode command topic requires a list of preset modes", "pr_mode_cmd_t", "pr_modes")
	}

	if f.SpeedRangeMin != nil && *f.SpeedRangeMin < 1 {
		return schemaErr(f.Platform(), "the speed range minimum must be greater than zero", "spd_rng_min")
	}

	return nil
}

func (f Fan) MarshalJSON() ([]byte, error) {
	type plain Fan
	return marshalWithPlatform(plain(f), f.Platform())
}
