package hamqtt

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/hamqtt/mqtt"
)

type capturedWrite struct {
	topic   string
	options mqtt.WriteOptions
	value   []byte
}

type fakeWriter struct {
	writes []capturedWrite
	err    error
}

func (f *fakeWriter) WriteTopic(_ context.Context, topic string, options mqtt.WriteOptions, value []byte) error {
	f.writes = append(f.writes, capturedWrite{topic: topic, options: options, value: value})
	return f.err
}

func requireDiscoveryOptions(t *testing.T, options mqtt.WriteOptions) {
	t.Helper()

	assert.Equal(t, mqtt.QOSAtLeastOnce, options.QoS)
	assert.True(t, options.Retain)
	assert.Equal(t, 7*24*time.Hour, options.MessageExpiry)
	assert.Equal(t, "application/json", options.ContentType)
}

func TestNew(t *testing.T) {
	w := &fakeWriter{}

	t.Run("Default Prefix", func(t *testing.T) {
		h := New(w, "")
		require.Equal(t, DefaultDiscoveryPrefix, h.prefix)
	})

	t.Run("Trailing Slash", func(t *testing.T) {
		h := New(w, "custom/prefix/")
		require.Equal(t, "custom/prefix", h.prefix)
	})
}

func TestPublishEntity(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "")

		e := fakeEntity{platform: "sensor", id: "office-temp-1"}
		require.NoError(t, h.PublishEntity(context.Background(), e))

		require.Len(t, w.writes, 1)
		assert.Equal(t, "homeassistant/sensor/office-temp-1/config", w.writes[0].topic)
		requireDiscoveryOptions(t, w.writes[0].options)
		assert.JSONEq(t, `{"p":"sensor"}`, string(w.writes[0].value))
	})

	t.Run("Custom Prefix", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "custom/")

		require.NoError(t, h.PublishEntity(context.Background(), fakeEntity{platform: "switch", id: "s1"}))

		require.Len(t, w.writes, 1)
		assert.Equal(t, "custom/switch/s1/config", w.writes[0].topic)
	})

	t.Run("Invalid", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "")

		schema := &SchemaError{Platform: "sensor", Fields: []string{"stat_t"}, Reason: "a state topic is required"}
		err := h.PublishEntity(context.Background(), fakeEntity{platform: "sensor", id: "s1", err: schema})

		var got *SchemaError
		require.ErrorAs(t, err, &got)
		assert.Empty(t, w.writes)
	})

	t.Run("No Unique ID", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "")

		err := h.PublishEntity(context.Background(), fakeEntity{platform: "tag"})
		require.ErrorIs(t, err, ErrUniqueIDRequired)
		assert.Empty(t, w.writes)
	})
}

func TestPublishDevice(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "")

		d, err := NewDeviceComponents(Origin{Name: "test"}, Device{Identifiers: []string{"Büro-Sensor #1"}})
		require.NoError(t, err)
		d.AddComponent("temp", fakeEntity{platform: "sensor", id: "t1"})

		require.NoError(t, h.PublishDevice(context.Background(), d))

		require.Len(t, w.writes, 1)
		assert.Equal(t, "homeassistant/device/Buro-Sensor__1/config", w.writes[0].topic)
		requireDiscoveryOptions(t, w.writes[0].options)

		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.writes[0].value, &payload))
		assert.Contains(t, payload, "o")
		assert.Contains(t, payload, "dev")
		assert.Contains(t, payload, "cmps")
	})

	t.Run("Invalid Component", func(t *testing.T) {
		w := &fakeWriter{}
		h := New(w, "")

		d, err := NewDeviceComponents(DefaultOrigin, Device{Identifiers: []string{"abc123"}})
		require.NoError(t, err)
		d.AddComponent("broken", fakeEntity{platform: "sensor", err: &SchemaError{
			Platform: "sensor",
			Fields:   []string{"stat_t"},
			Reason:   "a state topic is required",
		}})

		require.Error(t, h.PublishDevice(context.Background(), d))
		assert.Empty(t, w.writes)
	})
}

func TestPublishData(t *testing.T) {
	w := &fakeWriter{}
	h := New(w, "")

	require.NoError(t, h.PublishData(context.Background(), "office/thermometer/state", map[string]float64{
		"temperature": 21.5,
	}, time.Minute))

	require.Len(t, w.writes, 1)
	assert.Equal(t, "office/thermometer/state", w.writes[0].topic)
	assert.Equal(t, mqtt.QOSAtLeastOnce, w.writes[0].options.QoS)
	assert.True(t, w.writes[0].options.Retain)
	assert.Equal(t, time.Minute, w.writes[0].options.MessageExpiry)
	assert.JSONEq(t, `{"temperature":21.5}`, string(w.writes[0].value))
}
