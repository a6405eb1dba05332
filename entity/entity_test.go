package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hamqtt"
)

func testCommon() Common {
	return Common{
		Origin: hamqtt.Origin{Name: "test"},
		Device: hamqtt.Device{Identifiers: []string{"dev1"}},
	}
}

func keysOf(t *testing.T, e hamqtt.Entity) map[string]any {
	t.Helper()

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	result := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

func ptr[T any](v T) *T { return &v }

func TestPlatformDiscriminator(t *testing.T) {
	for _, e := range []hamqtt.Entity{
		AlarmControlPanel{},
		BinarySensor{},
		Button{},
		Camera{},
		Climate{},
		Cover{},
		DeviceTracker{},
		DeviceTrigger{},
		Event{},
		Fan{},
		Humidifier{},
		Image{},
		LawnMower{},
		Light{},
		Lock{},
		Notify{},
		Number{},
		Scene{},
		Select{},
		Sensor{},
		Siren{},
		Switch{},
		Tag{},
		Text{},
		Update{},
		Vacuum{},
		WaterHeater{},
		Valve{},
	} {
		t.Run(e.Platform(), func(t *testing.T) {
			require.Equal(t, e.Platform(), keysOf(t, e)["p"])
		})
	}
}

func TestSensor_WireKeys(t *testing.T) {
	s := Sensor{
		Common:                    testCommon(),
		DeviceClass:               "temperature",
		EnabledByDefault:          ptr(true),
		EntityPicture:             "http://example.com/pic.png",
		ForceUpdate:               ptr(true),
		Icon:                      "mdi:thermometer",
		JSONAttributesTemplate:    "{{ value_json | tojson }}",
		JSONAttributesTopic:       "~/attrs",
		Name:                      "Temperature",
		ObjectID:                  "office_temperature",
		QoS:                       ptr(hamqtt.QoSAtLeastOnce),
		StateClass:                StateClassMeasurement,
		StateTopic:                "~/state",
		SuggestedDisplayPrecision: ptr(1),
		UniqueID:                  "office-temp-1",
		ValueTemplate:             "{{ value_json.temperature }}",
	}
	s.Common.TopicPrefix = "office/thermometer"

	require.NoError(t, s.Validate())

	got := keysOf(t, s)
	want := []string{
		"~", "o", "dev",
		"dev_cla", "en", "ent_pic", "frc_upd", "ic",
		"json_attr_tpl", "json_attr_t", "name", "obj_id", "qos",
		"stat_cla", "stat_t", "sug_dsp_prc", "uniq_id", "val_tpl",
		"p",
	}
	for _, k := range want {
		assert.Contains(t, got, k)
	}
	assert.Len(t, got, len(want))
}

func TestSensor_OmitsUnsetOptionals(t *testing.T) {
	s := Sensor{Common: testCommon(), StateTopic: "~/state", UniqueID: "s1"}

	got := keysOf(t, s)

	// Only the identity block, the required state topic, the unique id and
	// the platform discriminator should survive serialization.
	assert.Len(t, got, 5)
	assert.Equal(t, "~/state", got["stat_t"])
	assert.Equal(t, "s1", got["uniq_id"])
	assert.Equal(t, "sensor", got["p"])
	assert.Contains(t, got, "o")
	assert.Contains(t, got, "dev")
}

func TestSensor_Validate(t *testing.T) {
	t.Run("Requires State Topic", func(t *testing.T) {
		err := Sensor{Common: testCommon(), UniqueID: "s1"}.Validate()

		var schema *hamqtt.SchemaError
		require.ErrorAs(t, err, &schema)
		assert.Equal(t, []string{"stat_t"}, schema.Fields)
	})

	t.Run("Last Reset Requires Total", func(t *testing.T) {
		s := Sensor{
			Common:                 testCommon(),
			StateTopic:             "~/state",
			LastResetValueTemplate: "{{ value_json.last_reset }}",
			StateClass:             StateClassMeasurement,
		}

		require.Error(t, s.Validate())

		s.StateClass = StateClassTotal
		require.NoError(t, s.Validate())
	})

	t.Run("Options Require Enum", func(t *testing.T) {
		s := Sensor{
			Common:     testCommon(),
			StateTopic: "~/state",
			Options:    []string{"low", "high"},
		}

		require.Error(t, s.Validate())

		s.DeviceClass = "enum"
		require.NoError(t, s.Validate())

		s.StateClass = StateClassMeasurement
		require.Error(t, s.Validate())
	})
}

func TestCover_EndToEnd(t *testing.T) {
	c := Cover{
		Common:           testCommon(),
		CommandTopic:     "~/set",
		DeviceClass:      "garage",
		Name:             "Garage Door",
		PayloadClose:     "CLOSE",
		PayloadOpen:      "OPEN",
		PayloadStop:      "STOP",
		PositionClosed:   ptr(0),
		PositionOpen:     ptr(100),
		PositionTopic:    "~/position",
		StateTopic:       "~/state",
		TiltCommandTopic: "~/tilt/set",
		TiltStatusTopic:  "~/tilt/state",
		UniqueID:         "garage-door-1",
	}
	c.Common.TopicPrefix = "garage/door"

	require.NoError(t, c.Validate())

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"~": "garage/door",
		"o": {"name": "test"},
		"dev": {"ids": ["dev1"]},
		"cmd_t": "~/set",
		"dev_cla": "garage",
		"name": "Garage Door",
		"pl_cls": "CLOSE",
		"pl_open": "OPEN",
		"pl_stop": "STOP",
		"pos_clsd": 0,
		"pos_open": 100,
		"pos_t": "~/position",
		"stat_t": "~/state",
		"tilt_cmd_t": "~/tilt/set",
		"tilt_status_t": "~/tilt/state",
		"uniq_id": "garage-door-1",
		"p": "cover"
	}`, string(raw))
}

func TestValve_Validate(t *testing.T) {
	t.Run("Position Conflicts With Payloads", func(t *testing.T) {
		v := Valve{
			Common:          testCommon(),
			CommandTopic:    "~/set",
			ReportsPosition: ptr(true),
			PayloadOpen:     "OPEN",
			UniqueID:        "v1",
		}

		var schema *hamqtt.SchemaError
		require.ErrorAs(t, v.Validate(), &schema)
		assert.Equal(t, "valve", schema.Platform)
		assert.Contains(t, schema.Fields, "pos")
		assert.Contains(t, schema.Fields, "pl_open")
	})

	t.Run("Position Conflicts With State Payloads", func(t *testing.T) {
		v := Valve{
			Common:          testCommon(),
			ReportsPosition: ptr(true),
			StateOpen:       "open",
		}

		require.Error(t, v.Validate())
	})

	t.Run("OK", func(t *testing.T) {
		require.NoError(t, Valve{
			Common:          testCommon(),
			CommandTopic:    "~/set",
			ReportsPosition: ptr(true),
			StateTopic:      "~/state",
		}.Validate())

		require.NoError(t, Valve{
			Common:       testCommon(),
			CommandTopic: "~/set",
			PayloadOpen:  "OPEN",
			PayloadClose: "CLOSE",
		}.Validate())
	})
}

func TestRequiredTopics(t *testing.T) {
	for _, tt := range []struct {
		entity hamqtt.Entity
		field  string
	}{
		{entity: AlarmControlPanel{Common: testCommon()}, field: "cmd_t"},
		{entity: BinarySensor{Common: testCommon()}, field: "stat_t"},
		{entity: Button{Common: testCommon()}, field: "cmd_t"},
		{entity: Camera{Common: testCommon()}, field: "t"},
		{entity: DeviceTracker{Common: testCommon()}, field: "stat_t"},
		{entity: DeviceTrigger{Common: testCommon()}, field: "t"},
		{entity: Event{Common: testCommon(), EventTypes: []string{"press"}}, field: "stat_t"},
		{entity: Fan{Common: testCommon()}, field: "cmd_t"},
		{entity: Humidifier{Common: testCommon()}, field: "cmd_t"},
		{entity: Light{Common: testCommon()}, field: "cmd_t"},
		{entity: Lock{Common: testCommon()}, field: "cmd_t"},
		{entity: Notify{Common: testCommon()}, field: "cmd_t"},
		{entity: Number{Common: testCommon()}, field: "cmd_t"},
		{entity: Scene{Common: testCommon()}, field: "cmd_t"},
		{entity: Select{Common: testCommon(), Options: []string{"a"}}, field: "cmd_t"},
		{entity: Sensor{Common: testCommon()}, field: "stat_t"},
		{entity: Switch{Common: testCommon()}, field: "cmd_t"},
		{entity: Tag{Common: testCommon()}, field: "t"},
		{entity: Text{Common: testCommon()}, field: "cmd_t"},
	} {
		t.Run(tt.entity.Platform(), func(t *testing.T) {
			var schema *hamqtt.SchemaError
			require.ErrorAs(t, tt.entity.Validate(), &schema)
			assert.Contains(t, schema.Fields, tt.field)
		})
	}
}

func TestEvent_Validate(t *testing.T) {
	e := Event{Common: testCommon(), StateTopic: "~/event"}
	require.Error(t, e.Validate())

	e.EventTypes = []string{"press", "double_press"}
	require.NoError(t, e.Validate())
}

func TestImage_Validate(t *testing.T) {
	t.Run("Neither", func(t *testing.T) {
		require.Error(t, Image{Common: testCommon()}.Validate())
	})

	t.Run("Both", func(t *testing.T) {
		require.Error(t, Image{
			Common:     testCommon(),
			ImageTopic: "~/image",
			URLTopic:   "~/url",
		}.Validate())
	})

	t.Run("One", func(t *testing.T) {
		require.NoError(t, Image{Common: testCommon(), ImageTopic: "~/image"}.Validate())
		require.NoError(t, Image{Common: testCommon(), URLTopic: "~/url"}.Validate())
	})
}

func TestDeviceTrigger_Marshal(t *testing.T) {
	d := DeviceTrigger{
		Common:  testCommon(),
		Subtype: "button_1",
		Topic:   "~/trigger",
		Type:    "button_short_press",
	}

	require.NoError(t, d.Validate())
	assert.Empty(t, d.ID())

	got := keysOf(t, d)
	assert.Equal(t, "trigger", got["atype"])
	assert.Equal(t, "device_trigger", got["p"])
}

func TestWaterHeater_Validate(t *testing.T) {
	w := WaterHeater{Common: testCommon(), Modes: []string{"eco", "boiling"}}
	require.Error(t, w.Validate())

	w.Modes = []string{"off", "eco", "performance"}
	require.NoError(t, w.Validate())
}

func TestVacuum_Validate(t *testing.T) {
	v := Vacuum{Common: testCommon(), SupportedFeatures: []string{"start", "warp"}}
	require.Error(t, v.Validate())

	v.SupportedFeatures = []string{VacuumFeatureStart, VacuumFeatureStop, VacuumFeatureFanSpeed}
	require.NoError(t, v.Validate())
}
