package hamqtt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEntity is a minimal Entity for exercising the publisher and component
// bundles without pulling in a concrete kind.
type fakeEntity struct {
	platform string
	id       string
	err      error
}

func (f fakeEntity) MarshalJSON() ([]byte, error) {
	return []byte(`{"p":"` + f.platform + `"}`), nil
}

func (f fakeEntity) Platform() string { return f.platform }
func (f fakeEntity) ID() string       { return f.id }
func (f fakeEntity) Validate() error  { return f.err }

func TestNewDeviceComponents(t *testing.T) {
	t.Run("Requires Identifier", func(t *testing.T) {
		_, err := NewDeviceComponents(DefaultOrigin, Device{Name: "unnamed"})
		require.ErrorIs(t, err, ErrIdentityMissing)
	})

	t.Run("OK", func(t *testing.T) {
		d, err := NewDeviceComponents(DefaultOrigin, Device{Identifiers: []string{"abc123"}})
		require.NoError(t, err)
		require.NotNil(t, d.Components)
	})
}

func TestDeviceComponents_AddComponent(t *testing.T) {
	d, err := NewDeviceComponents(DefaultOrigin, Device{Identifiers: []string{"abc123"}})
	require.NoError(t, err)

	d.AddComponent("temp", fakeEntity{platform: "sensor", id: "t1"}).
		AddComponent("door", fakeEntity{platform: "cover", id: "d1"})

	require.Len(t, d.Components, 2)

	// Registering the same name again replaces the previous component
	d.AddComponent("temp", fakeEntity{platform: "binary_sensor", id: "t2"})
	require.Len(t, d.Components, 2)
	assert.Equal(t, "binary_sensor", d.Components["temp"].Platform())
}

func TestDeviceComponents_UniqueID(t *testing.T) {
	t.Run("Slugged", func(t *testing.T) {
		d, err := NewDeviceComponents(DefaultOrigin, Device{Identifiers: []string{"Büro-Sensor #1"}})
		require.NoError(t, err)

		id, err := d.UniqueID()
		require.NoError(t, err)
		assert.Equal(t, "Buro-Sensor__1", id)
	})

	t.Run("No Identifiers", func(t *testing.T) {
		d := &DeviceComponents{}
		_, err := d.UniqueID()
		require.ErrorIs(t, err, ErrIdentityMissing)
	})
}

func TestDeviceComponents_Validate(t *testing.T) {
	d, err := NewDeviceComponents(DefaultOrigin, Device{Identifiers: []string{"abc123"}})
	require.NoError(t, err)

	require.NoError(t, d.Validate())

	d.AddComponent("broken", fakeEntity{platform: "sensor", err: &SchemaError{
		Platform: "sensor",
		Fields:   []string{"stat_t"},
		Reason:   "a state topic is required",
	}})

	err = d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `component "broken"`)
}

func TestDeviceComponents_Marshal(t *testing.T) {
	d, err := NewDeviceComponents(Origin{Name: "test"}, Device{Identifiers: []string{"abc123"}})
	require.NoError(t, err)

	d.TopicPrefix = "test/device"
	d.AddComponent("temp", fakeEntity{platform: "sensor", id: "t1"})

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"o": {"name": "test"},
		"dev": {"ids": ["abc123"]},
		"cmps": {"temp": {"p": "sensor"}},
		"~": "test/device"
	}`, string(raw))
}
