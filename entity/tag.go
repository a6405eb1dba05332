package entity

import (
	"github.com/nlowe/hamqtt"
)

// Tag scans for tags (e.g. NFC or RFID) on a topic. Tags carry no unique id
// and no name; Home Assistant keys them by the scanned tag id.
//
// See https://www.home-assistant.io/integrations/tag.mqtt/
type Tag struct {
	Common

	// The MQTT topic subscribed to receive tag scanned events. Required.
	Topic string `json:"t"`

	// Defines a template that returns a tag ID.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Tag{}

func (Tag) Platform() string { return "tag" }

// ID returns "". Tags do not carry a unique id and can only be published as
// part of a device discovery payload.
func (Tag) ID() string { return "" }

func (t Tag) Validate() error {
	if t.Topic == "" {
		return schemaErr(t.Platform(), "a scan topic is required", "t")
	}

	return nil
}

func (t Tag) MarshalJSON() ([]byte, error) {
	type plain Tag
	return marshalWithPlatform(plain(t), t.Platform())
}
