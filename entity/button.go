package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Button sends a fixed payload to a command topic when pressed.
//
// See https://www.home-assistant.io/integrations/button.mqtt/
type Button struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to trigger the button. Required.
	CommandTopic string `json:"cmd_t"`

	// The type/class of the button to set the icon in the frontend.
	DeviceClass deviceclass.Button `json:"dev_cla,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the published messages.
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

	// The name to use when displaying this button. Can be left empty if only
	// the device name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The payload to send to trigger the button. Defaults to `PRESS`.
	PayloadPress string `json:"pl_prs,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// An ID that uniquely identifies this button. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Button{}

func (Button) Platform() string { return "button" }

func (b Button) ID() string { return b.UniqueID }

func (b Button) Validate() error {
	if b.CommandTopic == "" {
		return schemaErr(b.Platform(), "a command topic is required", "cmd_t")
	}

	return nil
}

func (b Button) MarshalJSON() ([]byte, error) {
	type plain Button
	return marshalWithPlatform(plain(b), b.Platform())
}
