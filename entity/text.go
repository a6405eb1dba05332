package entity

import (
	"github.com/nlowe/hamqtt"
)

// TextMode controls how a text entity is displayed in the frontend.
type TextMode string

const (
	TextModeText     TextMode = "text"
	TextModePassword TextMode = "password"
)

// Text exposes a settable text value over a command topic.
//
// See https://www.home-assistant.io/integrations/text.mqtt/
type Text struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish the text value that is set. Required.
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

	// The maximum size of a text being set or received. Must not be greater
	// than 255.
	Max *int `json:"max,omitempty"`

	// The minimum size of a text being set or received.
	Min *int `json:"min,omitempty"`

	// The mode of the text entity.
	Mode TextMode `json:"mode,omitempty"`

	// The name of the text entity. Can be left empty if only the device name
	// is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// A valid regular expression the text being set or received must match.
	Pattern string `json:"pattern,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive text state updates. An empty
	// payload is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// An ID that uniquely identifies this text entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the text state value from the payload.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Text{}

func (Text) Platform() string { return "text" }

func (t Text) ID() string { return t.UniqueID }

func (t Text) Validate() error {
	if t.CommandTopic == "" {
		return schemaErr(t.Platform(), "a command topic is required", "cmd_t")
	}

	if t.Max != nil && *t.Max > 255 {
		return schemaErr(t.Platform(), "the maximum text size is 255", "max")
	}

	if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
		return schemaErr(t.Platform(), "the minimum size must not exceed the maximum", "min", "max")
	}

	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return marshalWithPlatform(plain(t), t.Platform())
}
