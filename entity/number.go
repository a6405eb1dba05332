package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
	"github.com/nlowe/hamqtt/unit"
)

// NumberMode controls how a number is displayed in the frontend.
type NumberMode string

const (
	NumberModeAuto   NumberMode = "auto"
	NumberModeBox    NumberMode = "box"
	NumberModeSlider NumberMode = "slider"
)

// Number exposes a settable numeric value over a command topic.
//
// See https://www.home-assistant.io/integrations/number.mqtt/
type Number struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the number. Required.
	CommandTopic string `json:"cmd_t"`

	// The type/class of the number to set the icon in the frontend.
	DeviceClass deviceclass.Number `json:"dev_cla,omitempty"`

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

	// Maximum value. Defaults to 100.
	Max *float64 `json:"max,omitempty"`

	// Minimum value. Defaults to 1.
	Min *float64 `json:"min,omitempty"`

	// Control how the number should be displayed in the UI.
	Mode NumberMode `json:"mode,omitempty"`

	// The name of the number. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the number works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// A special payload that resets the state to `unknown` when received on
	// the state topic.
	PayloadReset string `json:"pl_rst,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive number values. An empty payload
	// is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// Step value. Smallest value 0.001. Defaults to 1.0.
	Step *float64 `json:"step,omitempty"`

	// An ID that uniquely identifies this number. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines the unit of measurement of the number, if any.
	UnitOfMeasurement unit.Unit `json:"unit_of_meas,omitempty"`

	// Defines a template to extract the value.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Number{}

func (Number) Platform() string { return "number" }

func (n Number) ID() string { return n.UniqueID }

func (n Number) Validate() error {
	if n.CommandTopic == "" {
		return schemaErr(n.Platform(), "a command topic is required", "cmd_t")
	}

	if n.Min != nil && n.Max != nil && *n.Min >= *n.Max {
		return schemaErr(n.Platform(), "the minimum value must be less than the maximum", "min", "max")
	}

	if n.Step != nil && *n.Step < 0.001 {
		return schemaErr(n.Platform(), "the smallest supported step is 0.001", "step")
	}

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	type plain Number
	return marshalWithPlatform(plain(n), n.Platform())
}
