package hamqtt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUniqueIDRequired is returned by HomeAssistantMQTT.PublishEntity for
// entities without a unique id. Kinds that never carry one (tags, device
// triggers) can only be discovered as part of a device, see PublishDevice.
var ErrUniqueIDRequired = errors.New("entity must have a 'unique_id' to be discovered on its own topic")

// QoS is the maximum MQTT Quality of Service level an entity uses when
// receiving and publishing messages. It is part of the discovery payload,
// distinct from the QoS the discovery payload itself is published with.
type QoS int

const (
	QoSAtMostOnce QoS = iota
	QoSAtLeastOnce
	QoSExactlyOnce
)

// EntityCategory classifies non-primary entities. Entities without a
// category are the device's primary entities.
type EntityCategory string

const (
	// EntityCategoryConfig is for entities that configure a device.
	EntityCategoryConfig EntityCategory = "config"
	// EntityCategoryDiagnostic is for entities exposing device internals.
	EntityCategoryDiagnostic EntityCategory = "diagnostic"
)

// SchemaError reports an entity configuration Home Assistant would reject at
// discovery time. It is returned by the Validate method of entity kinds,
// naming the offending fields by their wire keys.
type SchemaError struct {
	// Platform is the discovery platform of the offending entity, e.g. "valve".
	Platform string
	// Fields holds the wire keys of the conflicting or missing fields.
	Fields []string
	// Reason describes the violated rule.
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Platform, strings.Join(e.Fields, ", "), e.Reason)
}
