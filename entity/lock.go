package entity

import (
	"github.com/nlowe/hamqtt"
)

// Lock controls a lock over a command topic, with optional code validation
// and jammed/locking/unlocking state reporting.
//
// See https://www.home-assistant.io/integrations/lock.mqtt/
type Lock struct {
	Common

	// A regular expression to validate a supplied code when it is set during
	// an open, lock or unlock action.
	CodeFormat string `json:"code_format,omitempty"`

	// Defines a template to generate the payload to send to CommandTopic.
	// The template accepts `value` (the configured PayloadLock, PayloadOpen
	// or PayloadUnlock) and `code`.
	CommandTemplate string `json:"cmd_tpl,omitempty"`

	// The MQTT topic to publish commands to change the lock state. Required.
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

	// The name of the lock. Can be left empty if only the device name is
	// relevant.
	Name string `json:"name,omitempty"`

	// Used instead of Name for automatic generation of the entity id.
	ObjectID string `json:"obj_id,omitempty"`

	// Flag that defines if the lock works in optimistic mode.
	Optimistic *bool `json:"opt,omitempty"`

	// The payload sent to the lock to lock it.
	PayloadLock string `json:"pl_lock,omitempty"`

	// The payload sent to the lock to open it.
	PayloadOpen string `json:"pl_open,omitempty"`

	// A special payload that resets the state to `unknown` when received on
	// the state topic.
	PayloadReset string `json:"pl_rst,omitempty"`

	// The payload sent to the lock to unlock it.
	PayloadUnlock string `json:"pl_unlk,omitempty"`

	// The maximum QoS level to be used when receiving and publishing messages.
	QoS *hamqtt.QoS `json:"qos,omitempty"`

	// If the published message should have the retain flag on or not.
	Retain *bool `json:"ret,omitempty"`

	// The payload sent to the state topic by the lock when it's jammed.
	StateJammed string `json:"stat_jam,omitempty"`

	// The payload sent to the state topic by the lock when it's locked.
	StateLocked string `json:"stat_locked,omitempty"`

	// The payload sent to the state topic by the lock when it's locking.
	StateLocking string `json:"stat_locking,omitempty"`

	// The MQTT topic subscribed to receive state updates. A "None" payload
	// resets to an unknown state, an empty payload is ignored.
	StateTopic string `json:"stat_t,omitempty"`

	// The payload sent to the state topic by the lock when it's unlocked.
	StateUnlocked string `json:"stat_unlocked,omitempty"`

	// The payload sent to the state topic by the lock when it's unlocking.
	StateUnlocking string `json:"stat_unlocking,omitempty"`

	// An ID that uniquely identifies this lock. Required when used with
	// device-based discovery.
	UniqueID string `json:"uniq_id,omitempty"`

	// Defines a template to extract a state value from the payload.
	ValueTemplate string `json:"val_tpl,omitempty"`
}

var _ hamqtt.Entity = Lock{}

func (Lock) Platform() string { return "lock" }

func (l Lock) ID() string { return l.UniqueID }

func (l Lock) Validate() error {
	if l.CommandTopic == "" {
		return schemaErr(l.Platform(), "a command topic is required", "cmd_t")
	}

	return nil
}

func (l Lock) MarshalJSON() ([]byte, error) {
	type plain Lock
	return marshalWithPlatform(plain(l), l.Platform())
}
