package entity

import (
	"github.com/nlowe/hamqtt"
)

// Image displays an image from a topic that carries either the image payload
// itself or a URL pointing at it. Exactly one of ImageTopic and URLTopic must
// be configured.
//
// See https://www.home-assistant.io/integrations/image.mqtt/
type Image struct {
	Common

	// The content type of the received image payload, e.g. `image/png`.
	// Only used together with ImageTopic.
	ContentType string `json:"cont_type,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// The encoding of the image payloads received. Set to `b64` to enable
	// base64 decoding. If not set, the image payload must be raw binary data.
	ImageEncoding string `json:"img_e,omitempty"`

	// The MQTT topic to subscribe to receive the image payload.
	ImageTopic string `json:"img_t,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the image entity. Can be left empty if only the device
	// name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Defines a template to extract the image URL from a message received on
	// URLTopic.
	URLTemplate string `json:"url_tpl,omitempty"`

	// The MQTT topic to subscribe to receive an image URL.
	URLTopic string `json:"url_t,omitempty"`

	// An ID that uniquely identifies this image entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Image{}

func (Image) Platform() string { return "image" }

func (i Image) ID() string { return i.UniqueID }

func (i Image) Validate() error {
	if (i.ImageTopic == "") == (i.URLTopic == "") {
		return schemaErr(i.Platform(), "exactly one of an image topic or a url topic is required", "img_t", "url_t")
	}

	return nil
}

func (i Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return marshalWithPlatform(plain(i), i.Platform())
}
