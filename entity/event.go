package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Event surfaces stateless happenings, like button presses or doorbell
// rings, from a JSON payload on a state topic.
//
// See https://www.home-assistant.io/integrations/event.mqtt/
type Event struct {
	Common

	// The type/class of the event to set the icon in the frontend.
	DeviceClass deviceclass.Event `json:"dev_cla,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the published messages.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// A list of valid `event_type` strings. Required and must not be empty.
	EventTypes []string `json:"evt_typ"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name to use when displaying this event.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The MQTT topic subscribed to receive JSON event payloads. Required.
	// The JSON payload should contain an `event_type` element that is one of
	// the configured EventTypes. Replayed retained messages are discarded.
	StateTopic string `json:"stat_t"`

	// An ID that uniquely identifies this event entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the value and render it to a valid JSON
	// event payload. If the template throws an error, the current state is
	// used instead.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Event{}

func (Event) Platform() string { return "event" }

func (e Event) ID() string { return e.UniqueID }

func (e Event) Validate() error {
	if e.StateTopic == "" {
		return schemaErr(e.Platform(), "a state topic is required", "stat_t")
	}

	if len(e.EventTypes) == 0 {
		return schemaErr(e.Platform(), "at least one event type is required", "evt_typ")
	}

	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return marshalWithPlatform(plain(e), e.Platform())
}
