package entity

import (
	"github.com/nlowe/hamqtt"
)

// Scene activates a scene by publishing a payload to a command topic.
//
// See https://www.home-assistant.io/integrations/scene.mqtt/
type Scene struct {
	Common

	// The MQTT topic to publish PayloadOn to activate the scene. Required.
	CommandTopic string `json:"cmd_t"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

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

	// The name to use when displaying this scene.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The payload that will be sent to the command topic when activating the
	// scene. Defaults to `ON`.
	PayloadOn string `json:"pl_on,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// An ID that uniquely identifies this scene. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Scene{}

func (Scene) Platform() string { return "scene" }

func (s Scene) ID() string { return s.UniqueID }

func (s Scene) Validate() error {
	if s.CommandTopic == "" {
		return schemaErr(s.Platform(), "a command topic is required", "cmd_t")
	}

	return nil
}

func (s Scene) MarshalJSON() ([]byte, error) {
	type plain Scene
	return marshalWithPlatform(plain(s), s.Platform())
}
