package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// BinarySensor reports an on/off value from a state topic.
//
// See https://www.home-assistant.io/integrations/binary_sensor.mqtt/
type BinarySensor struct {
	Common

	// Sets the class of the device, changing the device state and icon that
	// is displayed on the frontend.
	DeviceClass deviceclass.BinarySensor `json:"dev_cla,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received. Set to "" to disable decoding
	// of incoming payload.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Sends update events even if the sensor's state hasn't changed. Useful
	// if you want to have meaningful value graphs in history or want to
	// create an automation that triggers on every incoming state message.
	ForceUpdate *bool `json:"frc_upd,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the binary sensor. Can be left empty if only the device
	// name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// For sensors that only send `on` state updates (like PIRs), this
	// variable sets a delay in seconds after which the sensor's state will
	// be updated back to `off`.
	OffDelay *int `json:"off_dly,omitempty"`

	// The string that represents the `off` state. It will be compared to
	// the message in the state topic.
	PayloadOff string `json:"pl_off,omitempty"`

	// The string that represents the `on` state.
	PayloadOn string `json:"pl_on,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The MQTT topic subscribed to receive the sensor's state. Required.
	// Valid states are `OFF` and `ON` unless overridden by PayloadOff and
	// PayloadOn.
	StateTopic string `json:"stat_t"`

	// An ID that uniquely identifies this sensor. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template that returns a string to be compared to
	// PayloadOn/PayloadOff or an empty string, in which case the MQTT
	// message will be removed.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = BinarySensor{}

func (BinarySensor) Platform() string { return "binary_sensor" }

func (b BinarySensor) ID() string { return b.UniqueID }

func (b BinarySensor) Validate() error {
	if b.StateTopic == "" {
		return schemaErr(b.Platform(), "a state topic is required", "stat_t")
	}

	return nil
}

func (b BinarySensor) MarshalJSON() ([]byte, error) {
	type plain BinarySensor
	return marshalWithPlatform(plain(b), b.Platform())
}
