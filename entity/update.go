package entity

import (
	"github.com/nlowe/hamqtt"
	"github.com/nlowe/hamqtt/deviceclass"
)

// Update tracks installed and latest versions of software or firmware and
// can trigger the install.
//
// See https://www.home-assistant.io/integrations/update.mqtt/
type Update struct {
	Common

	// The MQTT topic to publish PayloadInstall to start the installing
	// process.
	CommandTopic string `json:"cmd_t,omitempty"`

	// The type/class of the update to set the icon in the frontend.
	DeviceClass deviceclass.Update `json:"dev_cla,omitempty"`

	// Number of decimal digits for display of update progress.
	DisplayPrecision *int `json:"display_precision,omitempty"`

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
	// then set as entity attributes.
	JSONAttributesTopic string `json:"json_attr_t,omitempty"`

	// Defines a template to extract the latest version value. Use a state
	// topic with a value template if all update state values can be
	// extracted from a single JSON payload.
	LatestVersionTemplate string `json:"l_ver_tpl,omitempty"`

	// The MQTT topic subscribed to receive an update of the latest version.
	LatestVersionTopic string `json:"l_ver_t,omitempty"`

	// The name of the update entity. Can be left empty if only the device
	// name is relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// The MQTT payload to start the installing process.
	PayloadInstall string `json:"pl_inst,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// Summary of the release notes or changelog. Limited to 255 characters.
	ReleaseSummary string `json:"rel_s,omitempty"`

	// URL to the full release notes of the latest version available.
	ReleaseURL string `json:"rel_u,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The MQTT topic subscribed to receive state updates. The payload may be
	// either a plain `installed_version` string or a JSON dictionary that
	// supplies `installed_version` and optionally `latest_version`, `title`,
	// `release_summary`, `release_url`, `entity_picture`, `in_progress` and
	// `update_percentage`.
	StateTopic string `json:"stat_t,omitempty"`

	// Title of the software or firmware update, to differentiate the name of
	// the installed software from the device or entity name.
	Title string `json:"tit,omitempty"`

	// An ID that uniquely identifies this update entity. Required when used
	// with device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract the `installed_version` state value or
	// to render to a valid JSON payload from the payload received on the
	// state topic.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Update{}

func (Update) Platform() string { return "update" }

func (u Update) ID() string { return u.UniqueID }

func (u Update) Validate() error {
	if len(u.ReleaseSummary) > 255 {
		return schemaErr(u.Platform(), "the release summary is limited to 255 characters", "rel_s")
	}

	return nil
}

func (u Update) MarshalJSON() ([]byte, error) {
	type plain Update
	return marshalWithPlatform(plain(u), u.Platform())
}
