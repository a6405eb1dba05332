package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Switch turns a device on and off over a command topic.
//
// See https://www.home-assistant.io/integrations/switch.mqtt/
type Switch struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	// The template receives the configured value for either PayloadOn or
	// PayloadOff as `value`.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the switch state. Required.
	CommandTopic string `json:"cmd_t"`

	// The type/class of the switch to set the icon in the frontend.
	DeviceClass deviceclass.Switch `json:"dev_cla,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received and published messages. Set to
	// "" to disable decoding of incoming payload.
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

	// The name to use when displaying this switch. Can be left empty if
	// only the device name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the switch works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload that represents the `off` state. Used for both comparing
	// to the value in the state topic and sending as the `off` command.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the `on` state.
	PayloadOn string `json:"pl_on,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The payload that represents the `off` state in the state topic, when
	// it differs from the value sent to the command topic.
	StateOff string `json:"stat_off,omitempty"`

	// The payload that represents the `on` state in the state topic, when
	// it differs from the value sent to the command topic.
	StateOn string `json:"stat_on,omitempty"`

	// The MQTT topic subscribed to receive state updates. A "None" payload
	// resets to an unknown state, an empty payload is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// An ID that uniquely identifies this switch. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the device's state from the state
	// topic. The result is compared to StateOn and StateOff.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Switch{}

func (Switch) Platform() string { return "switch" }

func (s Switch) ID() string { return s.UniqueID }

func (s Switch) Validate() error {
	if s.CommandTopic == "" {
		return schemaErr(s.Platform(), "a command topic is required", "cmd_t")
	}

	return nil
}

func (s Switch) MarshalJSON() ([]byte, error) {
	type plain Switch
	return marshalWithPlatform(plain(s), s.Platform())
}
