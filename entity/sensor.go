package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
	"github.com/nlowe/hamqtt/unit"
)

// StateClass describes how Home Assistant should build long-term statistics
// for a sensor.
type StateClass string

const (
	// StateClassMeasurement indicates the state represents a measurement in
	// present time, not a historical aggregation or a prediction. Examples:
	// current temperature, humidity or electric power.
	StateClassMeasurement StateClass = "measurement"

	// StateClassMeasurementAngle indicates the state represents a measurement
	// in present time for angles measured in degrees, e.g. wind direction.
	StateClassMeasurementAngle StateClass = "measurement_angle"

	// StateClassTotal indicates the state represents a total amount that can
	// both increase and decrease, e.g. a net energy meter.
	StateClassTotal StateClass = "total"

	// StateClassTotalIncreasing indicates the state represents a
	// monotonically increasing positive total which periodically restarts
	// counting from 0, e.g. lifetime energy consumption. A decreasing value
	// is interpreted as the start of a new meter cycle.
	StateClassTotalIncreasing StateClass = "total_increasing"
)

// Sensor reports a read-only value from a state topic.
//
// See https://www.home-assistant.io/integrations/sensor.mqtt/
type Sensor struct {
	Common

	// The type/class of the sensor to set the icon in the frontend.
	DeviceClass deviceclass.Sensor `json:"dev_cla,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received. Set to "" to disable decoding
	// of incoming payload.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Sends update events even if the value hasn't changed. Useful if you
	// want to have meaningful value graphs in history.
	ForceUpdate *bool `json:"frc_upd,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// Defines a template to extract the last_reset. When set, StateClass
	// must be StateClassTotal.
	LastResetValueTemplate string `json:"lrst_val_tpl,omitempty"`

	// The name of the MQTT sensor. Can be left empty if only the device name
	// is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// List of allowed sensor state values. An empty list is not allowed. The
	// sensor's DeviceClass must be set to deviceclass.SensorEnum, and
	// Options cannot be used together with StateClass or UnitOfMeasurement.
	Options []string `json:"ops,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// The state_class of the sensor.
	StateClass StateClass `json:"stat_cla,omitempty"`

	// The MQTT topic subscribed to receive sensor values. Required.
	StateTopic string `json:"stat_t"`

	// The number of decimals which should be used in the sensor's state
	// after rounding.
	SuggestedDisplayPrecision *int `json:"sug_dsp_prc,omitempty"`

	// An ID that uniquely identifies this sensor. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines the unit of measurement of the sensor, if any.
	UnitOfMeasurement unit.Unit `json:"unit_of_meas,omitempty"`

	// Defines a template to extract the value.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Sensor{}

func (Sensor) Platform() string { return "sensor" }

func (s Sensor) ID() string { return s.UniqueID }

func (s Sensor) Validate() error {
	if s.StateTopic == "" {
		return schemaErr(s.Platform(), "a state topic is required", "stat_t")
	}

	if s.LastResetValueTemplate != "" && s.StateClass != StateClassTotal {
		return schemaErr(s.Platform(), `last reset requires state class "total"`, "lrst_val_tpl", "stat_cla")
	}

	if len(s.Options) > 0 {
		if s.DeviceClass != deviceclass.SensorEnum {
			return schemaErr(s.Platform(), `options require device class "enum"`, "ops", "dev_cla")
		}

		if s.StateClass != "" || s.UnitOfMeasurement != nil {
			return schemaErr(s.Platform(), "options cannot be combined with a state class or unit of measurement", "ops", "stat_cla", "unit_of_meas")
		}
	}

	return nil
}

func (s Sensor) MarshalJSON() ([]byte, error) {
	type plain Sensor
	return marshalWithPlatform(plain(s), s.Platform())
}
