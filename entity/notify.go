package entity

import (
	"github.com/nlowe/hamqtt"
)

// Notify sends notification messages to a command topic.
//
// See https://www.home-assistant.io/integrations/notify.mqtt/
type Notify struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish send message commands at. Required.
	CommandTopic string `json:"cmd_t"`

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

	// The name to use when displaying this notify entity. Can be left empty
	// if only the device name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// An ID that uniquely identifies this notify entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Notify{}

func (Notify) Platform() string { return "notify" }

func (n Notify) ID() string { return n.UniqueID }

func (n Notify) Validate() error {
	if n.CommandTopic == "" {
		return schemaErr(n.Platform(), "a command topic is required", "cmd_t")
	}

	return nil
}

func (n Notify) MarshalJSON() ([]byte, error) {
	type plain Notify
	return marshalWithPlatform(plain(n), n.Platform())
}
