package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Humidifier controls a humidifier or dehumidifier, with a required target
// humidity command topic and optional mode support.
//
// See https://www.home-assistant.io/integrations/humidifier.mqtt/
type Humidifier struct {
	Common

	// A template to render the value received on ActionTopic with.
	ActionTemplate string `json:"act_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the current action. Valid
	// values: `off`, `humidifying`, `drying`, `idle`.
	ActionTopic string `json:"act_t,omitempty"`

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the humidifier state.
	// Required.
	CommandTopic string `json:"cmd_t"`

	// A template with which the value received on CurrentHumidityTopic will
	// be rendered.
	CurrentHumidityTemplate string `json:"curr_hum_tpl,omitempty"`

	// The MQTT topic on which to listen for the current humidity. A "None"
	// value resets the current humidity, an empty value is ignored.
	CurrentHumidityTopic string `json:"curr_hum_t,omitempty"`

	// The device class of the humidifier. Defaults to
	// deviceclass.HumidifierHumidifier when omitted.
	DeviceClass deviceclass.Humidifier `json:"dev_cla,omitempty"`

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

	// The maximum target humidity percentage that can be set.
	MaxHumidity *int `json:"max_hum,omitempty"`

	// The minimum target humidity percentage that can be set.
	MinHumidity *int `json:"min_hum,omitempty"`

	// Defines a template to generate the payload to send to
	// ModeCommandTopic.
	ModeCommandTemplate string `json:"mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the humidifier's mode.
	// Must be configured together with Modes.
	ModeCommandTopic string `json:"mode_cmd_t,omitempty"`

	// Defines a template to extract a value for the humidifier mode state.
	ModeStateTemplate string `json:"mode_stat_tpl,omitempty"`

	// The MQTT topic subscribed to receive the humidifier mode.
	ModeStateTopic string `json:"mode_stat_t,omitempty"`

	// A list of available modes the humidifier supports, e.g. `normal`,
	// `eco`, `away`, `boost`, `comfort`, `home`, `sleep`, `auto` or `baby`.
	Modes []string `json:"modes,omitempty"`

	// The name of the humidifier. Can be left empty if only the device name
	// is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the humidifier works in optimistic mode. Defaults
	// to true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload that represents the stop state.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the running state.
	PayloadOn string `json:"pl_on,omitempty"`

	// A special payload that resets the target humidity to an unknown state
	// when received at TargetHumidityStateTopic, or the current humidity
	// when received at CurrentHumidityTopic.
	PayloadResetHumidity string `json:"pl_rst_hum,omitempty"`

	// A special payload that resets the mode to an unknown state when
	// received at ModeStateTopic.
	PayloadResetMode string `json:"pl_rst_mode,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive state updates.
	StateTopic string `json:"stat_t,omitempty"`

	// Defines a template to extract a value from the state.
	StateValueTemplate string `json:"stat_val_tpl,omitempty"`

	// Defines a template to generate the payload to send to
	// TargetHumidityCommandTopic.
	TargetHumidityCommandTemplate string `json:"hum_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the humidifier target
	// humidity state based on a percentage. Required.
	TargetHumidityCommandTopic string `json:"hum_cmd_t"`

	// Defines a template to extract a value for the humidifier target
	// humidity state.
	TargetHumidityStateTemplate string `json:"hum_stat_tpl,omitempty"`

	// The MQTT topic subscribed to receive the humidifier target humidity.
	TargetHumidityStateTopic string `json:"hum_stat_t,omitempty"`

	// An ID that uniquely identifies this humidifier. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Humidifier{}

func (Humidifier) Platform() string { return "humidifier" }

func (h Humidifier) ID() string { return h.UniqueID }

func (h Humidifier) Validate() error {
	if h.CommandTopic == "" {
		return schemaErr(h.Platform(), "a command topic is required", "cmd_t")
	}

	if h.TargetHumidityCommandTopic == "" {
		return schemaErr(h.Platform(), "a target humidity command topic is required", "hum_cmd_t")
	}

	if h.ModeCommandTopic != "" && len(h.Modes) == 0 {
		return schemaErr(h.Platform(), "a mode command topic requires a list of modes", "mode_cmd_t", "modes")
	}

	return nil
}

func (h Humidifier) MarshalJSON() ([]byte, error) {
	type plain Humidifier
	return marshalWithPlatform(plain(h), h.Platform())
}
