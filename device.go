package hamqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// ErrIdentityMissing is the error returned when a Device carries no
// identifying values at all, or when a device-based discovery payload is
// built from a Device with no identifiers.
var ErrIdentityMissing = errors.New("device must have at least one identifying value in 'identifiers' and/or 'connections'")

// DeviceConnection maps a Device to the outside world. For example:
//
//	DeviceConnection{
//	    Kind: "mac",
//	    Value: "02:5b:26:a8:dc:12",
//	}
//
// It implements fmt.Stringer and slog.LogValuer and serializes as a
// two-element array.
type DeviceConnection struct {
	Kind  string
	Value string
}

func (d DeviceConnection) String() string {
	return fmt.Sprintf("[%q,%q]", d.Kind, d.Value)
}

func (d DeviceConnection) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.Kind),
		slog.String("value", d.Value),
	)
}

func (d DeviceConnection) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{d.Kind, d.Value})
}

// Device ties entities into the Home Assistant device registry. In the MQTT
// integration a device is a collection of entities sharing the same `dev`
// block; the relationship only exists in the discovery payload.
//
// See https://www.home-assistant.io/integrations/mqtt/#device-discovery-payload
type Device struct {
	// The name of the device.
	Name string `json:"name,omitempty"`

	// The serial number of the device.
	Serial string `json:"sn,omitempty"`

	// The manufacturer of the device.
	Manufacturer string `json:"mf,omitempty"`

	// The model of the device.
	Model string `json:"mdl,omitempty"`

	// The model identifier of the device.
	ModelID string `json:"mdl_id,omitempty"`

	// A link to the webpage that can manage the configuration of this device.
	// Can be either a http://, https:// or an internal homeassistant:// URL.
	ConfigurationURL string `json:"cu,omitempty"`

	// A list of connections of the device to the outside world. For example,
	// `[]DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}}`
	Connections []DeviceConnection `json:"cns,omitempty"`

	// The hardware version of the device.
	HardwareVersion string `json:"hw,omitempty"`

	// The firmware version of the device.
	FirmwareVersion string `json:"sw,omitempty"`

	// A list of IDs that uniquely identify the device. For example a serial
	// number. The first identifier doubles as the device's discovery ID, see
	// DeviceComponents.UniqueID.
	Identifiers []string `json:"ids,omitempty"`

	// Suggest an area if the device isn't in one yet.
	SuggestedArea string `json:"sa,omitempty"`

	// Identifier of a device that routes messages between this device and
	// Home Assistant. Examples of such devices are hubs, or parent devices of
	// a sub-device. This is used to show device topology in Home Assistant.
	ViaDevice string `json:"via_device,omitempty"`
}

// Valid checks if this Device is configured appropriately. Home Assistant
// requires at least one value in Device.Identifiers or at least one value in
// Device.Connections.
func (d *Device) Valid() error {
	if len(d.Identifiers) == 0 && len(d.Connections) == 0 {
		return ErrIdentityMissing
	}

	return nil
}
