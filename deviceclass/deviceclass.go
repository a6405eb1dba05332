// Package deviceclass holds the device class vocabularies Home Assistant
// accepts per entity kind. A device class changes the icon and state
// rendering in the frontend, and for sensors also controls which units are
// valid.
//
// Families with an explicit "none" member serialize it as the literal string
// "None"; leaving the field unset omits it from the payload entirely.
package deviceclass

// Cover device classes.
type Cover string

const (
	CoverNone    Cover = "None"
	CoverAwning  Cover = "awning"
	CoverBlind   Cover = "blind"
	CoverCurtain Cover = "curtain"
	CoverDamper  Cover = "damper"
	CoverDoor    Cover = "door"
	CoverGarage  Cover = "garage"
	CoverGate    Cover = "gate"
	CoverShade   Cover = "shade"
	CoverShutter Cover = "shutter"
	CoverWindow  Cover = "window"
)

// Valve device classes.
type Valve string

const (
	ValveNone  Valve = "None"
	ValveWater Valve = "water"
	ValveGas   Valve = "gas"
)

// Switch device classes.
type Switch string

const (
	SwitchNone   Switch = "None"
	SwitchOutlet Switch = "outlet"
	SwitchSwitch Switch = "switch"
)

// Update device classes.
type Update string

const (
	UpdateNone     Update = "None"
	UpdateFirmware Update = "firmware"
)

// Humidifier device classes. Unlike the other families these serialize
// capitalized, and there is no "None" member.
type Humidifier string

const (
	HumidifierHumidifier   Humidifier = "Humidifier"
	HumidifierDehumidifier Humidifier = "Dehumidifier"
)

// MediaPlayer device classes.
type MediaPlayer string

const (
	MediaPlayerTV       MediaPlayer = "tv"
	MediaPlayerSpeaker  MediaPlayer = "speaker"
	MediaPlayerReceiver MediaPlayer = "receiver"
)

// Event device classes.
type Event string

const (
	EventNone     Event = "None"
	EventButton   Event = "button"
	EventDoorbell Event = "doorbell"
	EventMotion   Event = "motion"
)

// Button device classes.
type Button string

const (
	ButtonNone     Button = "None"
	ButtonIdentify Button = "identify"
	ButtonRestart  Button = "restart"
	ButtonUpdate   Button = "update"
)
