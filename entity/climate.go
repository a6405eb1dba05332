package entity

import (
	"github.com/nlowe/hamqtt"
)

// HVAC operation modes supported by the frontend.
const (
	ClimateModeAuto    = "auto"
	ClimateModeOff     = "off"
	ClimateModeCool    = "cool"
	ClimateModeHeat    = "heat"
	ClimateModeDry     = "dry"
	ClimateModeFanOnly = "fan_only"
)

// Climate controls an HVAC device: operation mode, target temperature, fan
// mode, preset mode, swing mode and humidity.
//
// See https://www.home-assistant.io/integrations/climate.mqtt/
type Climate struct {
	Common

	// A template to render the value received on ActionTopic with.
	ActionTemplate string `json:"act_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the current action. Valid
	// values: `off`, `heating`, `cooling`, `drying`, `idle`, `fan`.
	ActionTopic string `json:"act_t,omitempty"`

	// A template with which the value received on CurrentHumidityTopic will
	// be rendered.
	CurrentHumidityTemplate string `json:"curr_hum_tpl,omitempty"`

	// The MQTT topic on which to listen for the current humidity. A "None"
	// value resets the current humidity, an empty value is ignored.
	CurrentHumidityTopic string `json:"curr_hum_t,omitempty"`

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

	// A template to render the value sent to FanModeCommandTopic with.
	FanModeCommandTemplate string `json:"fan_mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the fan mode.
	FanModeCommandTopic string `json:"fan_mode_cmd_t,omitempty"`

	// A template to render the value received on FanModeStateTopic with.
	FanModeStateTemplate string `json:"fan_mode_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the fan mode. If this is
	// not set, the fan mode works in optimistic mode.
	FanModeStateTopic string `json:"fan_mode_stat_t,omitempty"`

	// A list of supported fan modes. Defaults to `auto`, `low`, `medium` and
	// `high`.
	FanModes []string `json:"fan_modes,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Set the initial target temperature. The default value depends on the
	// temperature unit: 21°C or 69.8°F.
	Initial *int `json:"init,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The maximum target humidity percentage that can be set.
	MaxHumidity *int `json:"max_hum,omitempty"`

	// Maximum set point available. The default value depends on the
	// temperature unit.
	MaxTemp *float64 `json:"max_temp,omitempty"`

	// The minimum target humidity percentage that can be set.
	MinHumidity *int `json:"min_hum,omitempty"`

	// Minimum set point available. The default value depends on the
	// temperature unit.
	MinTemp *float64 `json:"min_temp,omitempty"`

	// A template to render the value sent to ModeCommandTopic with.
	ModeCommandTemplate string `json:"mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the HVAC operation mode.
	ModeCommandTopic string `json:"mode_cmd_t,omitempty"`

	// A template to render the value received on ModeStateTopic with.
	ModeStateTemplate string `json:"mode_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the HVAC operation mode. If
	// this is not set, the operation mode works in optimistic mode.
	ModeStateTopic string `json:"mode_stat_t,omitempty"`

	// A list of supported modes. Needs to be a subset of the ClimateMode
	// constants.
	Modes []string `json:"modes,omitempty"`

	// The name of the HVAC. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the climate works in optimistic mode.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload sent to turn off the device.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload sent to turn the device on.
	PayloadOn string `json:"pl_on,omitempty"`

	// A template to render the value sent to PowerCommandTopic with. The
	// `value` parameter is the payload set for PayloadOn or PayloadOff.
	PowerCommandTemplate string `json:"pow_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the HVAC power state.
	// Sends PayloadOn or PayloadOff when the device is turned on or off.
	PowerCommandTopic string `json:"pow_cmd_t,omitempty"`

	// The desired precision for this device. Supported values are 0.1, 0.5
	// and 1.0.
	Precision *float64 `json:"precision,omitempty"`

	// Defines a template to generate the payload to send to
	// PresetModeCommandTopic.
	PresetModeCommandTemplate string `json:"pr_mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the preset mode.
	PresetModeCommandTopic string `json:"pr_mode_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive climate speed based on preset
	// mode.
	PresetModeStateTopic string `json:"pr_mode_stat_t,omitempty"`

	// Defines a template to extract the preset mode value from the payload
	// received on PresetModeStateTopic.
	PresetModeValueTemplate string `json:"pr_mode_val_tpl,omitempty"`

	// List of preset modes this climate is supporting, e.g. `eco`, `away`,
	// `boost`, `comfort`, `home`, `sleep` or `activity`.
	PresetModes []string `json:"pr_modes,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Defines if published messages should have the retain flag set.
	Retain *bool `json:"ret,omitempty"`

	// A template to render the value sent to SwingModeCommandTopic with.
	SwingModeCommandTemplate string `json:"swing_mode_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the swing mode.
	SwingModeCommandTopic string `json:"swing_mode_cmd_t,omitempty"`

	// A template to render the value received on SwingModeStateTopic with.
	SwingModeStateTemplate string `json:"swing_mode_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes of the swing mode. If this is
	// not set, the swing mode works in optimistic mode.
	SwingModeStateTopic string `json:"swing_mode_stat_t,omitempty"`

	// A list of supported swing modes. Defaults to `on` and `off`.
	SwingModes []string `json:"swing_modes,omitempty"`

	// Defines a template to generate the payload to send to
	// TargetHumidityCommandTopic.
	TargetHumidityCommandTemplate string `json:"hum_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the target humidity.
	TargetHumidityCommandTopic string `json:"hum_cmd_t,omitempty"`

	// Defines a template to extract a value for the climate target humidity
	// state.
	TargetHumidityStateTemplate string `json:"hum_stat_tpl,omitempty"`

	// The MQTT topic subscribed to receive the target humidity. A "None"
	// value resets the target humidity, an empty value is ignored.
	TargetHumidityStateTopic string `json:"hum_stat_t,omitempty"`

	// A template to render the value sent to TemperatureCommandTopic with.
	TemperatureCommandTemplate string `json:"temp_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the target temperature.
	TemperatureCommandTopic string `json:"temp_cmd_t,omitempty"`

	// A template to render the value sent to TemperatureHighCommandTopic
	// with.
	TemperatureHighCommandTemplate string `json:"temp_hi_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the high target
	// temperature.
	TemperatureHighCommandTopic string `json:"temp_hi_cmd_t,omitempty"`

	// A template to render the value received on TemperatureHighStateTopic
	// with.
	TemperatureHighStateTemplate string `json:"temp_hi_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes in the target high
	// temperature. If this is not set, it works in optimistic mode.
	TemperatureHighStateTopic string `json:"temp_hi_stat_t,omitempty"`

	// A template to render the value sent to TemperatureLowCommandTopic
	// with.
	TemperatureLowCommandTemplate string `json:"temp_lo_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the low target
	// temperature.
	TemperatureLowCommandTopic string `json:"temp_lo_cmd_t,omitempty"`

	// A template to render the value received on TemperatureLowStateTopic
	// with.
	TemperatureLowStateTemplate string `json:"temp_lo_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes in the target low temperature.
	// If this is not set, it works in optimistic mode.
	TemperatureLowStateTopic string `json:"temp_lo_stat_t,omitempty"`

	// A template to render the value received on TemperatureStateTopic with.
	TemperatureStateTemplate string `json:"temp_stat_tpl,omitempty"`

	// The MQTT topic to subscribe for changes in the target temperature. If
	// this is not set, the target temperature works in optimistic mode.
	TemperatureStateTopic string `json:"temp_stat_t,omitempty"`

	// Step size for temperature set point.
	TemperatureStep *float64 `json:"temp_step,omitempty"`

	// Defines the temperature unit of the device. If this is not set, the
	// system temperature unit is used.
	TemperatureUnit TemperatureUnit `json:"temp_unit,omitempty"`

	// An ID that uniquely identifies this HVAC device. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Default template to render the payloads on all `*_state_topic`s with.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Climate{}

func (Climate) Platform() string { return "climate" }

func (c Climate) ID() string { return c.UniqueID }

func (c Climate) Validate() error {
	for _, m := range c.Modes {
		switch m {
		case ClimateModeAuto, ClimateModeOff, ClimateModeCool, ClimateModeHeat,
			ClimateModeDry, ClimateModeFanOnly:
		default:
			return schemaErr(c.Platform(), "unsupported operation mode "+m, "modes")
		}
	}

	return nil
}

func (c Climate) MarshalJSON() ([]byte, error) {
	type plain Climate
	return marshalWithPlatform(plain(c), c.Platform())
}
