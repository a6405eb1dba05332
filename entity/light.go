package entity

import (
	"github.com/nlowe/hamqtt"
)

// Light controls a light with optional brightness, color temperature, effect
// and color support, using the default (basic) MQTT light schema.
//
// See https://www.home-assistant.io/integrations/light.mqtt/
type Light struct {
	Common

	// Defines a template to compose the message sent to
	// BrightnessCommandTopic. The incoming value is available as `value`.
	BrightnessCommandTemplate string `json:"bri_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's brightness.
	BrightnessCommandTopic string `json:"bri_cmd_t,omitempty"`

	// Defines the maximum brightness value (i.e., 100%) of the device.
	BrightnessScale *int `json:"bri_scl,omitempty"`

	// The MQTT topic subscribed to receive brightness state updates.
	BrightnessStateTopic string `json:"bri_stat_t,omitempty"`

	// Defines a template to extract the brightness value.
	BrightnessValueTemplate string `json:"bri_val_tpl,omitempty"`

	// The MQTT topic subscribed to receive color mode updates. If this is
	// not configured, the color mode will be set automatically according to
	// the last received valid color or color temperature.
	ColorModeStateTopic string `json:"clrm_stat_t,omitempty"`

	// Defines a template to extract the color mode.
	ColorModeValueTemplate string `json:"clrm_val_tpl,omitempty"`

	// Defines a template to compose the message sent to
	// ColorTempCommandTopic. The incoming value is available as `value`.
	ColorTempCommandTemplate string `json:"clr_temp_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's color
	// temperature state. By default the slider has a range of 153 to 500
	// mireds, or 2000 to 6535 Kelvin if ColorTempKelvin is set.
	ColorTempCommandTopic string `json:"clr_temp_cmd_t,omitempty"`

	// When set, color temperature commands and state updates use Kelvin
	// instead of mireds.
	ColorTempKelvin *bool `json:"color_temp_kelvin,omitempty"`

	// The MQTT topic subscribed to receive color temperature state updates.
	ColorTempStateTopic string `json:"clr_temp_stat_t,omitempty"`

	// Defines a template to extract the color temperature value.
	ColorTempValueTemplate string `json:"clr_temp_val_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's state. Required.
	CommandTopic string `json:"cmd_t"`

	// Defines a template to compose the message sent to EffectCommandTopic.
	// The incoming value is available as `value`.
	EffectCommandTemplate string `json:"fx_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's effect state.
	EffectCommandTopic string `json:"fx_cmd_t,omitempty"`

	// The list of effects the light supports.
	EffectList []string `json:"fx_list,omitempty"`

	// The MQTT topic subscribed to receive effect state updates.
	EffectStateTopic string `json:"fx_stat_t,omitempty"`

	// Defines a template to extract the effect value.
	EffectValueTemplate string `json:"fx_val_tpl,omitempty"`

	// Flag which defines if the entity should be enabled when first added.
	EnabledByDefault *bool `json:"en,omitempty"`

	// The encoding of the payloads received and published messages.
	Encoding string `json:"e,omitempty"`

	// Picture URL for the entity.
	EntityPicture string `json:"ent_pic,omitempty"`

	// Defines a template to compose the message sent to HSCommandTopic.
	// Available variables: `hue` and `sat`.
	HSCommandTemplate string `json:"hs_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's color state
	// in hue/saturation format. Hue ranges 0°..360°, saturation 0..100.
	// Brightness is sent separately on BrightnessCommandTopic.
	HSCommandTopic string `json:"hs_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive color state updates in
	// hue/saturation format, e.g. `359.5,100.0`.
	HSStateTopic string `json:"hs_stat_t,omitempty"`

	// Defines a template to extract the hue/saturation value.
	HSValueTemplate string `json:"hs_val_tpl,omitempty"`

	// Icon for the entity.
	Icon string `json:"ic,omitempty"`

	// Defines a template to extract the JSON dictionary from messages
	// received on JSONAttributesTopic.
	JSONAttributesTemplate string `json:"json_attr_tpl,omitempty"`

	// The MQTT topic subscribed to receive a JSON dictionary payload and
	// then set as sensor attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// The maximum color temperature in Kelvin.
	MaxKelvin *int `json:"max_kelvin,omitempty"`

	// The maximum color temperature in mireds.
	MaxMireds *int `json:"max_mirs,omitempty"`

	// The minimum color temperature in Kelvin.
	MinKelvin *int `json:"min_kelvin,omitempty"`

	// The minimum color temperature in mireds.
	MinMireds *int `json:"min_mirs,omitempty"`

	// The name of the light. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Defines when PayloadOn is sent. Using `last` (the default) sends any
	// style (brightness, color, etc) topics first and then the on payload.
	// Using `first` sends the on payload first. Using `brightness` only
	// sends brightness commands instead of the on payload.
	OnCommandType string `json:"on_cmd_type,omitempty"`

	// Flag that defines if the light works in optimistic mode.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload that represents the off state.
	PayloadOff string `json:"pl_off,omitempty"`

	// The payload that represents the on state.
	PayloadOn string `json:"pl_on,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// Defines a template to compose the message sent to RGBCommandTopic.
	// Available variables: `red`, `green` and `blue`.
	RGBCommandTemplate string `json:"rgb_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's RGB state.
	RGBCommandTopic string `json:"rgb_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive RGB state updates, comma
	// separated, e.g. `255,0,127`.
	RGBStateTopic string `json:"rgb_stat_t,omitempty"`

	// Defines a template to extract the RGB value.
	RGBValueTemplate string `json:"rgb_val_tpl,omitempty"`

	// Defines a template to compose the message sent to RGBWCommandTopic.
	// Available variables: `red`, `green`, `blue` and `white`.
	RGBWCommandTemplate string `json:"rgbw_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's RGBW state.
	RGBWCommandTopic string `json:"rgbw_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive RGBW state updates, comma
	// separated, e.g. `255,0,127,64`.
	RGBWStateTopic string `json:"rgbw_stat_t,omitempty"`

	// Defines a template to extract the RGBW value.
	RGBWValueTemplate string `json:"rgbw_val_tpl,omitempty"`

	// Defines a template to compose the message sent to RGBWWCommandTopic.
	// Available variables: `red`, `green`, `blue`, `cold_white` and
	// `warm_white`.
	RGBWWCommandTemplate string `json:"rgbww_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's RGBWW state.
	RGBWWCommandTopic string `json:"rgbww_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive RGBWW state updates, comma
	// separated, e.g. `255,0,127,64,32`.
	RGBWWStateTopic string `json:"rgbww_stat_t,omitempty"`

	// Defines a template to extract the RGBWW value.
	RGBWWValueTemplate string `json:"rgbww_val_tpl,omitempty"`

	// The schema to use. Must be `basic` or omitted to select the default
	// schema.
	Schema string `json:"schema,omitempty"`

	// The MQTT topic subscribed to receive state updates. A "None" payload
	// resets to an unknown state, an empty payload is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// Defines a template to extract the state value. The template should
	// return the values defined by PayloadOn and PayloadOff, or "None".
	StateValueTemplate string `json:"stat_val_tpl,omitempty"`

	// An ID that uniquely identifies this light. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// The MQTT topic to publish commands to change the light to white mode
	// with a given brightness.
	WhiteCommandTopic string `json:"whit_cmd_t,omitempty"`

	// Defines the maximum white level (i.e., 100%) of the device.
	WhiteScale *int `json:"whit_scl,omitempty"`

	// Defines a template to compose the message sent to XYCommandTopic.
	// Available variables: `x` and `y`.
	XYCommandTemplate string `json:"xy_cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the light's XY state.
	XYCommandTopic string `json:"xy_cmd_t,omitempty"`

	// The MQTT topic subscribed to receive XY state updates, comma
	// separated, e.g. `0.675,0.322`.
	XYStateTopic string `json:"xy_stat_t,omitempty"`

	// Defines a template to extract the XY value.
	XYValueTemplate string `json:"xy_val_tpl,omitempty"`
}

var _ hamqtt.Entity = Light{}

func (Light) Platform() string { return "light" }

func (l Light) ID() string { return l.UniqueID }

func (l Light) Validate() error {
	if l.CommandTopic == "" {
		return schemaErr(l.Platform(), "a command topic is required", "cmd_t")
	}

	if l.Schema != "" && l.Schema != "basic" {
		return schemaErr(l.Platform(), `only the "basic" schema is supported`, "schema")
	}

	return nil
}

func (l Light) MarshalJSON() ([]byte, error) {
	type plain Light
	return marshalWithPlatform(plain(l), l.Platform())
}
