package hamqtt

import (
	"errors"
	"fmt"
)

// DeviceComponents is a device with multiple entities declared in a single
// discovery payload. Home Assistant publishes to
// `<discovery_prefix>/device/<id>/config` where `<id>` is derived from the
// device's first identifier, see UniqueID.
type DeviceComponents struct {
	// Information about the origin that supplies the MQTT entities.
	Origin Origin `json:"o"`

	// Information about the device the components are a part of, used to tie
	// them into the device registry.
	Device Device `json:"dev"`

	Availability

	// Components of the device, keyed by a name unique within the device.
	Components map[string]Entity `json:"cmps"`

	// Replaces `~` with this value in any MQTT topic attribute of the
	// components.
	TopicPrefix string `json:"~,omitempty"`

	// The MQTT topic subscribed to receive state updates, shared by
	// components that do not configure their own.
	StateTopic string `json:"stat_t,omitempty"`

	// The MQTT topic to publish commands to, shared by components that do
	// not configure their own.
	CommandTopic string `json:"cmd_t,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *QoS `json:"qos,omitempty"`

	// The encoding of the payloads received and published messages. Set to
	// "" to disable decoding of incoming payload.
	Encoding string `json:"e,omitempty"`
}

// NewDeviceComponents builds an empty component bundle for the provided
// device. The device must declare at least one identifier; the first one
// names the discovery topic for the whole bundle.
func NewDeviceComponents(origin Origin, device Device) (*DeviceComponents, error) {
	if len(device.Identifiers) == 0 {
		return nil, fmt.Errorf("device components: %w", ErrIdentityMissing)
	}

	return &DeviceComponents{
		Origin:     origin,
		Device:     device,
		Components: map[string]Entity{},
	}, nil
}

// AddComponent registers an entity under the provided name. Adding a second
// entity under the same name replaces the first.
func (d *DeviceComponents) AddComponent(name string, e Entity) *DeviceComponents {
	if d.Components == nil {
		d.Components = map[string]Entity{}
	}

	d.Components[name] = e
	return d
}

// UniqueID derives the discovery id for this bundle from the device's first
// identifier, reduced to the allowed topic characters by Slug.
func (d *DeviceComponents) UniqueID() (string, error) {
	if len(d.Device.Identifiers) == 0 {
		return "", fmt.Errorf("device components: %w", ErrIdentityMissing)
	}

	return Slug(d.Device.Identifiers[0]), nil
}

// Validate checks the bundle and every registered component.
func (d *DeviceComponents) Validate() error {
	errs := []error{d.Device.Valid()}
	for name, c := range d.Components {
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("component %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
