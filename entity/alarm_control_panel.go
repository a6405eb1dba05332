package entity

import (
	"github.com/nlowe/hamqtt"
)

// Alarm control panel features that can be announced in SupportedFeatures.
const (
	AlarmFeatureArmHome         = "arm_home"
	AlarmFeatureArmAway         = "arm_away"
	AlarmFeatureArmNight        = "arm_night"
	AlarmFeatureArmVacation     = "arm_vacation"
	AlarmFeatureArmCustomBypass = "arm_custom_bypass"
	AlarmFeatureTrigger         = "trigger"
)

// AlarmControlPanel controls an alarm panel, optionally requiring a code to
// arm, disarm or trigger.
//
// See https://www.home-assistant.io/integrations/alarm_control_panel.mqtt/
type AlarmControlPanel struct {
	Common

	// If defined, specifies a code to enable or disable the alarm in the
	// frontend. The values `REMOTE_CODE` and `REMOTE_CODE_TEXT` instruct the
	// frontend to prompt for a code that is forwarded in the command.
	Code string `json:"code,omitempty"`

	// If true the code is required to arm the alarm. If false the code is
	// not validated.
	CodeArmRequired *bool `json:"code_arm_req,omitempty"`

	// If true the code is required to disarm the alarm.
	CodeDisarmRequired *bool `json:"code_dis_req,omitempty"`

	// If true the code is required to trigger the alarm.
	CodeTriggerRequired *bool `json:"code_trig_req,omitempty"`

	// Defines a template to generate the payload to send to CommandTopic.
	// The template receives `action` and `code` variables.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the alarm state. Required.
	CommandTopic string `json:"cmd_t"`

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

	// The name of the alarm. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The payload to set armed-away mode on the alarm panel.
	PayloadArmAway string `json:"pl_arm_away,omitempty"`

	// The payload to set armed-custom-bypass mode on the alarm panel.
	PayloadArmCustomBypass string `json:"pl_arm_custom_b,omitempty"`

	// The payload to set armed-home mode on the alarm panel.
	PayloadArmHome string `json:"pl_arm_home,omitempty"`

	// The payload to set armed-night mode on the alarm panel.
	PayloadArmNight string `json:"pl_arm_nite,omitempty"`

	// The payload to set armed-vacation mode on the alarm panel.
	PayloadArmVacation string `json:"pl_arm_vacation,omitempty"`

	// The payload to disarm the alarm panel.
	PayloadDisarm string `json:"pl_disarm,omitempty"`

	// The payload to trigger the alarm.
	PayloadTrigger string `json:"pl_trig,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive state updates. Required. Valid
	// state payloads are `armed_away`, `armed_custom_bypass`, `armed_home`,
	// `armed_night`, `armed_vacation`, `arming`, `disarmed`, `disarming`,
	// `pending` and `triggered`.
	StateTopic string `json:"stat_t"`

	// A list of features that the alarm control panel supports. See the
	// AlarmFeature constants for the possible values.
	SupportedFeatures []string `json:"sup_feat,omitempty"`

	// An ID that uniquely identifies this alarm panel. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the value.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = AlarmControlPanel{}

func (AlarmControlPanel) Platform() string { return "alarm_control_panel" }

func (a AlarmControlPanel) ID() string { return a.UniqueID }

func (a AlarmControlPanel) Validate() error {
	if a.CommandTopic == "" {
		return schemaErr(a.Platform(), "a command topic is required", "cmd_t")
	}

	if a.StateTopic == "" {
		return schemaErr(a.Platform(), "a state topic is required", "stat_t")
	}

	for _, f := range a.SupportedFeatures {
		switch f {
		case AlarmFeatureArmHome, AlarmFeatureArmAway, AlarmFeatureArmNight,
			AlarmFeatureArmVacation, AlarmFeatureArmCustomBypass, AlarmFeatureTrigger:
		default:
			return schemaErr(a.Platform(), "unsupported feature "+f, "sup_feat")
		}
	}

	return nil
}

func (a AlarmControlPanel) MarshalJSON() ([]byte, error) {
	type plain AlarmControlPanel
	return marshalWithPlatform(plain(a), a.Platform())
}
