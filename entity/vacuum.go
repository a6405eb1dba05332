package entity

import (
	"github.com/nlowe/hamqtt"
)

// Vacuum features that can be announced in SupportedFeatures.
const (
	VacuumFeatureStart       = "start"
	VacuumFeatureStop        = "stop"
	VacuumFeaturePause       = "pause"
	VacuumFeatureReturnHome  = "return_home"
	VacuumFeatureStatus      = "status"
	VacuumFeatureLocate      = "locate"
	VacuumFeatureCleanSpot   = "clean_spot"
	VacuumFeatureFanSpeed    = "fan_speed"
	VacuumFeatureSendCommand = "send_command"
)

// Vacuum controls a robot vacuum over a command topic, with optional fan
// speed control and custom commands.
//
// See https://www.home-assistant.io/integrations/vacuum.mqtt/
type Vacuum struct {
	Common

	// The MQTT topic to publish commands to control the vacuum.
	CommandTopic string `json:"cmd_t,omitempty"`

	// The encoding of the payloads received and published messages.
	Encoding string `json:"e,omitempty"`

	// List of possible fan speeds for the vacuum.
	FanSpeedList []string `json:"fanspd_lst,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The name of the vacuum. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The payload to send to the command topic to begin a spot cleaning
	// cycle.
	PayloadCleanSpot string `json:"pl_cln_sp,omitempty"`

	// The payload to send to the command topic to locate the vacuum
	// (typically plays a song).
	PayloadLocate string `json:"pl_loc,omitempty"`

	// The payload to send to the command topic to pause the vacuum.
	PayloadPause string `json:"pl_paus,omitempty"`

	// The payload to send to the command topic to tell the vacuum to return
	// to base.
	PayloadReturnToBase string `json:"pl_ret,omitempty"`

	// The payload to send to the command topic to begin the cleaning cycle.
	PayloadStart string `json:"pl_strt,omitempty"`

	// The payload to send to the command topic to stop cleaning.
	PayloadStop string `json:"pl_stop,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic to publish custom commands to the vacuum.
	SendCommandTopic string `json:"send_cmd_t,omitempty"`

	// The MQTT topic to publish commands to control the vacuum's fan speed.
	SetFanSpeedTopic string `json:"set_fan_spd_t,omitempty"`

	// The MQTT topic subscribed to receive state messages from the vacuum.
	// Messages received on the state topic must be a valid JSON dictionary
	// with a mandatory `state` key and optionally a `fan_speed` key.
	StateTopic string `json:"stat_t,omitempty"`

	// List of features that the vacuum supports. See the VacuumFeature
	// constants for the possible values.
	SupportedFeatures []string `json:"sup_feat,omitempty"`

	// An ID that uniquely identifies this vacuum. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`
}

var _ hamqtt.Entity = Vacuum{}

func (Vacuum) Platform() string { return "vacuum" }

func (v Vacuum) ID() string { return v.UniqueID }

func (v Vacuum) Validate() error {
	for _, f := range v.SupportedFeatures {
		switch f {
		case VacuumFeatureStart, VacuumFeatureStop, VacuumFeaturePause,
			VacuumFeatureReturnHome, VacuumFeatureStatus, VacuumFeatureLocate,
			VacuumFeatureCleanSpot, VacuumFeatureFanSpeed, VacuumFeatureSendCommand:
		default:
			return schemaErr(v.Platform(), "unsupported feature "+f, "sup_feat")
		}
	}

	return nil
}

func (v Vacuum) MarshalJSON() ([]byte, error) {
	type plain Vacuum
	return marshalWithPlatform(plain(v), v.Platform())
}
