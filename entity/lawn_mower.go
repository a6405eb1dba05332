package entity

import (
	"github.com/nlowe/hamqtt"
)

// LawnMower controls a robotic lawn mower with start/pause/dock commands and
// an activity state topic.
//
// See https://www.home-assistant.io/integrations/lawn_mower.mqtt/
type LawnMower struct {
	Common

	// The MQTT topic subscribed to receive an update of the activity. Valid
	// activities are `mowing`, `paused`, `docked` and `error`. A "None"
	// payload resets to an unknown state, an empty payload is ignored.
	ActivityStateTopic string `json:"act_stat_t,omitempty"`

	// Defines a template to extract the value received on
	// ActivityStateTopic.
	ActivityValueTemplate string `json:"act_val_tpl,omitempty"`

	// Defines a template to generate the payload to send to
	// DockCommandTopic. The `value` parameter is the payload set for
	// PayloadDock.
	DockCommandTemplate string `json:"dock_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to tell the mower to return to its
	// dock.
	DockCommandTopic string `json:"dock_cmd_t,omitempty"`

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

	// The name of the lawn mower. Can be left empty if only the device name
	// is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the lawn mower works in optimistic mode. Defaults
	// to true when no activity state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// Defines a template to generate the payload to send to
	// PauseCommandTopic.
	PauseCommandTemplate string `json:"pause_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to pause the mower.
	PauseCommandTopic string `json:"pause_cmd_t,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// Defines a template to generate the payload to send to
	// StartMowingCommandTopic.
	StartMowingCommandTemplate string `json:"strt_mow_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to begin mowing.
	StartMowingCommandTopic string `json:"strt_mow_cmd_t,omitempty"`

	// An ID that uniquely identifies this lawn mower. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = LawnMower{}

func (LawnMower) Platform() string { return "lawn_mower" }

func (l LawnMower) ID() string { return l.UniqueID }

func (LawnMower) Validate() error { return nil }

func (l LawnMower) MarshalJSON() ([]byte, error) {
	type plain LawnMower
	return marshalWithPlatform(plain(l), l.Platform())
}
