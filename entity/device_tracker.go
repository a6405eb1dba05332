package entity

import (
	"github.com/nlowe/hamqtt"
)

// SourceType describes how a device tracker determined its location.
type SourceType string

const (
	SourceTypeGPS         SourceType = "gps"
	SourceTypeRouter      SourceType = "router"
	SourceTypeBluetooth   SourceType = "bluetooth"
	SourceTypeBluetoothLE SourceType = "bluetooth_le"
)

// DeviceTracker reports the presence of a device from a state topic.
//
// See https://www.home-assistant.io/integrations/device_tracker.mqtt/
type DeviceTracker struct {
	Common

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload with
	// location attributes like `latitude`, `longitude` and `gps_accuracy`.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the tracker. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The payload value that represents the `home` state for the device.
	PayloadHome string `json:"pl_home,omitempty"`

	// The payload value that represents the `not_home` state for the device.
	PayloadNotHome string `json:"pl_not_home,omitempty"`

	// The payload value that resets the state of the device to `unknown`.
	PayloadReset string `json:"pl_rst,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The origin of the device tracker's location data.
	SourceType SourceType `json:"src_type,omitempty"`

	// The MQTT topic subscribed to receive tracker state updates. Required.
	StateTopic string `json:"stat_t"`

	// An ID that uniquely identifies this tracker. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template that returns a device tracker state.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = DeviceTracker{}

func (DeviceTracker) Platform() string { return "device_tracker" }

func (d DeviceTracker) ID() string { return d.UniqueID }

func (d DeviceTracker) Validate() error {
	if d.StateTopic == "" {
		return schemaErr(d.Platform(), "a state topic is required", "stat_t")
	}

	return nil
}

func (d DeviceTracker) MarshalJSON() ([]byte, error) {
	type plain DeviceTracker
	return marshalWithPlatform(plain(d), d.Platform())
}
