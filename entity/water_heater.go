package entity

import (
	"github.com/nlowe/hamqtt"
)

// Water heater operation modes supported by the frontend.
const (
	WaterHeaterModeOff         = "off"
	WaterHeaterModeEco         = "eco"
	WaterHeaterModeElectric    = "electric"
	WaterHeaterModeGas         = "gas"
	WaterHeaterModeHeatPump    = "heat_pump"
	WaterHeaterModeHighDemand  = "high_demand"
	WaterHeaterModePerformance = "performance"
)

// TemperatureUnit is the temperature unit of a device, `C` or `F`.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// WaterHeater controls a water heater's operation mode and target
// temperature.
//
// See https://www.home-assistant.io/integrations/water_heater.mqtt/
type WaterHeater struct {
	Common

	// A template with which the value received on CurrentTemperatureTopic
	// will be rendered.
	CurrentTemperatureTemplate string `json:"curr_temp_tpl,omitempty"`

	// The MQTT topic on which to listen for the current temperature. A
	// "None" value resets the current temperature, an empty value is
	// ignored.
	CurrentTemperatureTopic string `json:"curr_temp_t,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received and published messages.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Set the initial target temperature. The default value depends on the
	// temperature unit: 43.3°C or 110°F.
	Initial *int `json:"init,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// Maximum set point available. The default value depends on the
	// temperature unit: 60°C or 140°F.
	MaxTemp *float64 `json:"max_temp,omitempty"`

	// Minimum set point available. The default value depends on the
	// temperature unit: 43.3°C or 110°F.
	MinTemp *float64 `json:"min_temp,omitempty"`

	// A template to render the value sent to ModeCommandTopic with.
	ModeCommandTemplate string `json:"mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the water heater
	// operation mode.
	ModeCommandTopic string `json:"mode_cmd_t,omitempty"`

	// A template to render the value received on ModeStateTopic with.
	ModeStateTemplate string `json:"mode_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the water heater operation
	// mode. If this is not set, the operation mode works in optimistic mode.
	ModeStateTopic string `json:"mode_stat_t,omitempty"`

	// A list of supported modes. Needs to be a subset of the WaterHeaterMode
	// constants.
	Modes []string `json:"modes,omitempty"`

	// The name of the water heater. Can be left empty if only the device
	// name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the water heater works in optimistic mode.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload that represents the disabled state.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the enabled state.
	PayloadOn string `json:"pl_on,omitempty"`

	// A template to render the value sent to PowerCommandTopic with. The
	// `value` parameter is the payload set for PayloadOn or PayloadOff.
	PowerCommandTemplate string `json:"power_command_template,omitempty"`

	// The MQTT topic to publish commands to change the water heater power
	// state.
	PowerCommandTopic string `json:"power_command_topic,omitempty"`

	// The desired precision for this device. Supported values are 0.1, 0.5
	// and 1.0.
	Precision *float64 `json:"precision,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Defines if published messages should have the retain flag set.
	Retain *bool `json:"ret,omitempty"`

	// A template to render the value sent to TemperatureCommandTopic with.
	TemperatureCommandTemplate string `json:"temp_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the target temperature.
	TemperatureCommandTopic string `json:"temp_cmd_t,omitempty"`

	// A template to render the value received on TemperatureStateTopic with.
	TemperatureStateTemplate string `json:"temp_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes in the target temperature. If
	// this is not set, the target temperature works in optimistic mode. A
	// "None" value resets the set point, an empty value is ignored.
	TemperatureStateTopic string `json:"temp_stat_t,omitempty"`

	// Defines the temperature unit of the device. If this is not set, the
	// system temperature unit is used.
	TemperatureUnit TemperatureUnit `json:"temp_unit,omitempty"`

	// An ID that uniquely identifies this water heater. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Default template to render the payloads on all `*_state_topic`s with.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = WaterHeater{}

func (WaterHeater) Platform() string { return "water_heater" }

func (w WaterHeater) ID() string { return w.UniqueID }

func (w WaterHeater) Validate() error {
	for _, m := range w.Modes {
		switch m {
		case WaterHeaterModeOff, WaterHeaterModeEco, WaterHeaterModeElectric,
			WaterHeaterModeGas, WaterHeaterModeHeatPump, WaterHeaterModeHighDemand,
			WaterHeaterModePerformance:
		default:
			return schemaErr(w.Platform(), "unsupported operation mode "+m, "modes")
		}
	}

	return nil
}

func (w WaterHeater) MarshalJSON() ([]byte, error) {
	type plain WaterHeater
	return marshalWithPlatform(plain(w), w.Platform())
}
