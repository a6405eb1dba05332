package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Valve controls a valve, either with open/close/stop payloads or, when
// ReportsPosition is set, with numeric positions.
//
// See https://www.home-assistant.io/integrations/valve.mqtt/
type Valve struct {
	Common

	// Defines a template to generate the payload to send to CommandTopic.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to control the valve. The value
	// sent can be a value defined by PayloadOpen, PayloadClose or
	// PayloadStop. If ReportsPosition is true, a numeric value is published
	// instead.
	CommandTopic string `json:"cmd_t,omitempty"`

	// Sets the class of the device, changing the device state and icon that
	// is displayed on the frontend.
	DeviceClass deviceclass.Valve `json:"dev_cla,omitempty"`

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

	// The name of the valve. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the valve works in optimistic mode. Defaults to
	// true when no state topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The command payload that closes the valve. Only used when
	// ReportsPosition is false, and not allowed otherwise.
	PayloadClose string `json:"pl_cls,omitempty"`

	// The command payload that opens the valve. Only used when
	// ReportsPosition is false, and not allowed otherwise.
	PayloadOpen string `json:"pl_open,omitempty"`

	// The command payload that stops the valve. When not configured, the
	// valve will not support the stop action.
	PayloadStop string `json:"pl_stop,omitempty"`

	// Number which represents closed position. The valve's position will be
	// scaled to the (PositionClosed...PositionOpen) range when an action is
	// performed and scaled back when a value is received.
	PositionClosed *int `json:"pos_clsd,omitempty"`

	// Number which represents open position.
	PositionOpen *int `json:"pos_open,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Set to true if the valve reports the position or supports setting the
	// position. The position is then published instead of the
	// PayloadOpen/PayloadClose/PayloadStop payloads.
	ReportsPosition *bool `json:"pos,omitempty"`

	// Defines if published messages should have the retain flag set.
	Retain *bool `json:"ret,omitempty"`

	// The payload that represents the closed state. Only allowed when
	// ReportsPosition is false.
	StateClosed string `json:"stat_clsd,omitempty"`

	// The payload that represents the closing state.
	StateClosing string `json:"stat_closing,omitempty"`

	// The payload that represents the open state. Only allowed when
	// ReportsPosition is false.
	StateOpen string `json:"stat_open,omitempty"`

	// The payload that represents the opening state.
	StateOpening string `json:"stat_opening,omitempty"`

	// The MQTT topic subscribed to receive valve state messages. Accepts a
	// state payload (`open`, `opening`, `closed`, `closing`) or, if
	// ReportsPosition is set, a numeric position.
	StateTopic string `json:"stat_t,omitempty"`

	// An ID that uniquely identifies this valve. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template that can be used to extract the payload for the
	// state topic.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Valve{}

func (Valve) Platform() string { return "valve" }

func (v Valve) ID() string { return v.UniqueID }

func (v Valve) Validate() error {
	if v.ReportsPosition != nil && *v.ReportsPosition {
		if v.PayloadOpen != "" || v.PayloadClose != "" {
			return schemaErr(v.Platform(), "open/close payloads are not allowed for valves that report a position", "pos", "pl_open", "pl_cls")
		}

		if v.StateOpen != "" || v.StateClosed != "" {
			return schemaErr(v.Platform(), "open/closed state payloads are not allowed for valves that report a position", "pos", "stat_open", "stat_clsd")
		}
	}

	return nil
}

func (v Valve) MarshalJSON() ([]byte, error) {
	type plain Valve
	return marshalWithPlatform(plain(v), v.Platform())
}
