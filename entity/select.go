package entity

import (
	"github.com/nlowe/hamqtt"
)

// Select exposes a list of options that can be picked over a command topic.
//
// See https://www.home-assistant.io/integrations/select.mqtt/
type Select struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the selected option.
	// Required.
	CommandTopic string `json:"cmd_t"`

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

	// The name of the select entity. Can be left empty if only the device
	// name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the select works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// List of options that can be selected. An empty list is not allowed.
	Options []string `json:"ops"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive update of the selected option.
	StateTopic string `json:"stat_t,omitempty"`

	// An ID that uniquely identifies this select entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the value.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Select{}

func (Select) Platform() string { return "select" }

func (s Select) ID() string { return s.UniqueID }

func (s Select) Validate() error {
	if s.CommandTopic == "" {
		return schemaErr(s.Platform(), "a command topic is required", "cmd_t")
	}

	if len(s.Options) == 0 {
		return schemaErr(s.Platform(), "at least one option is required", "ops")
	}

	return nil
}

func (s Select) MarshalJSON() ([]byte, error) {
	type plain Select
	return marshalWithPlatform(plain(s), s.Platform())
}
