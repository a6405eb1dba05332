package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Cover controls covers such as blinds, garage doors or shutters, with
// optional position and tilt support.
//
// See https://www.home-assistant.io/integrations/cover.mqtt/
type Cover struct {
	Common

	// The MQTT topic to publish commands to control the cover.
	CommandTopic string `json:"cmd_t,omitempty"`

	// Sets the class of the device, changing the device state and icon that
	// is displayed on the frontend.
	DeviceClass deviceclass.Cover `json:"dev_cla,omitempty"`

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

	// The name of the cover. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the cover works in optimistic mode. Defaults to
	// true when neither a state topic nor a position topic is configured.
	Optimistic *bool `json:"opt,omitempty"`

	// The command payload that closes the cover.
	PayloadClose string `json:"pl_cls,omitempty"`

	// The command payload that opens the cover.
	PayloadOpen string `json:"pl_open,omitempty"`

	// The command payload that stops the cover.
	PayloadStop string `json:"pl_stop,omitempty"`

	// The command payload that stops the tilt.
	PayloadStopTilt string `json:"payload_stop_tilt,omitempty"`

	// Number which represents closed position.
	PositionClosed *int `json:"pos_clsd,omitempty"`

	// Number which represents open position.
	PositionOpen *int `json:"pos_open,omitempty"`

	// Defines a template that can be used to extract the payload for the
	// position topic. Within the template the variables `entity_id`,
	// `position_open`, `position_closed`, `tilt_min` and `tilt_max` are
	// available.
	PositionTemplate string `json:"pos_tpl,omitempty"`

	// The MQTT topic subscribed to receive cover position messages.
	PositionTopic string `json:"pos_t,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Defines if published messages should have the retain flag set.
	Retain *bool `json:"ret,omitempty"`

	// Defines a template to define the position to be sent to the
	// SetPositionTopic. The incoming position value is available as
	// `position`.
	SetPositionTemplate string `json:"set_pos_tpl,omitempty"`

	// The MQTT topic to publish position commands to. PositionTopic must be
	// set as well when using a position topic.
	SetPositionTopic string `json:"set_pos_t,omitempty"`

	// The payload that represents the closed state.
	StateClosed string `json:"stat_clsd,omitempty"`

	// The payload that represents the closing state.
	StateClosing string `json:"stat_closing,omitempty"`

	// The payload that represents the open state.
	StateOpen string `json:"stat_open,omitempty"`

	// The payload that represents the opening state.
	StateOpening string `json:"stat_opening,omitempty"`

	// The payload that represents the stopped state, for covers that do not
	// report open/closed state.
	StateStopped string `json:"stat_stopped,omitempty"`

	// The MQTT topic subscribed to receive cover state messages. The state
	// topic can only read `open`, `opening`, `closed`, `closing` or
	// `stopped` states.
	StateTopic string `json:"stat_t,omitempty"`

	// The value that will be sent on a `close_cover_tilt` command.
	TiltClosedValue *int `json:"tilt_clsd_val,omitempty"`

	// Defines a template that can be used to extract the payload for the
	// TiltCommandTopic.
	TiltCommandTemplate string `json:"tilt_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to control the cover tilt.
	TiltCommandTopic string `json:"tilt_cmd_t,omitempty"`

	// The maximum tilt value.
	TiltMax *int `json:"tilt_max,omitempty"`

	// The minimum tilt value.
	TiltMin *int `json:"tilt_min,omitempty"`

	// The value that will be sent on an `open_cover_tilt` command.
	TiltOpenedValue *int `json:"tilt_opnd_val,omitempty"`

	// Flag that determines if tilt works in optimistic mode.
	TiltOptimistic *bool `json:"tilt_opt,omitempty"`

	// Defines a template that can be used to extract the payload for the
	// TiltStatusTopic.
	TiltStatusTemplate string `json:"tilt_status_tpl,omitempty"`

	// The MQTT topic subscribed to receive tilt status update values.
	TiltStatusTopic string `json:"tilt_status_t,omitempty"`

	// An ID that uniquely identifies this cover. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template that can be used to extract the payload for the
	// state topic.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Cover{}

func (Cover) Platform() string { return "cover" }

func (c Cover) ID() string { return c.UniqueID }

func (c Cover) Validate() error {
	if c.SetPositionTopic != "" && c.PositionTopic == "" {
		return schemaErr(c.Platform(), "a position topic is required to accept position commands", "set_pos_t", "pos_t")
	}

	return nil
}

func (c Cover) MarshalJSON() ([]byte, error) {
	type plain Cover
	return marshalWithPlatform(plain(c), c.Platform())
}
