package entity

import (
	"github.com/nlowe/hamqtt"
)

// Camera displays images published to a topic, either as raw binary data or
// base64 encoded.
//
// See https://www.home-assistant.io/integrations/camera.mqtt/
type Camera struct {
	Common

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// The encoding of the image payloads received. Set to `b64` to enable
	// base64 decoding of the image payload. If not set, the image payload
	// must be raw binary data.
	ImageEncoding string `json:"img_e,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the camera. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The MQTT topic to subscribe to receive the image payload of the camera.
	// Required.
	Topic string `json:"t"`

	// An ID that uniquely identifies this camera. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Camera{}

func (Camera) Platform() string { return "camera" }

func (c Camera) ID() string { return c.UniqueID }

func (c Camera) Validate() error {
	if c.Topic == "" {
		return schemaErr(c.Platform(), "an image topic is required", "t")
	}

	return nil
}

func (c Camera) MarshalJSON() ([]byte, error) {
	type plain Camera
	return marshalWithPlatform(plain(c), c.Platform())
}
