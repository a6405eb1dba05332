package hamqtt

// Origin describes the software supplying entities over MQTT discovery. Home
// Assistant logs the origin details to the core event log when an item is
// discovered or updated.
type Origin struct {
	// The name of the application that is the origin of the discovered MQTT item.
	Name string `json:"name"`
	// Software version of the application that supplies the discovered MQTT item.
	SoftwareVersion string `json:"sw,omitempty"`
	// Support URL of the application that supplies the discovered MQTT item.
	SupportURL string `json:"url,omitempty"`
}

// DefaultOrigin provides origin information to Home Assistant for
// applications that do not otherwise specify one.
var DefaultOrigin = Origin{
	Name:            "hamqtt",
	SoftwareVersion: "master",
	SupportURL:      "https://github.com/nlowe/hamqtt",
}
