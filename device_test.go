package hamqtt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceValid(t *testing.T) {
	t.Run("No Identity", func(t *testing.T) {
		require.ErrorIs(t, (&Device{Name: "unnamed"}).Valid(), ErrIdentityMissing)
	})

	t.Run("Identifiers", func(t *testing.T) {
		require.NoError(t, (&Device{Identifiers: []string{"abc123"}}).Valid())
	})

	t.Run("Connections", func(t *testing.T) {
		require.NoError(t, (&Device{
			Connections: []DeviceConnection{{Kind: "mac", Value: "02:5b:26:a8:dc:12"}},
		}).Valid())
	})
}

func TestDeviceConnection_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(DeviceConnection{Kind: "mac", Value: "02:5b:26:a8:dc:12"})
	require.NoError(t, err)

	assert.Equal(t, `["mac","02:5b:26:a8:dc:12"]`, string(raw))
}

func TestDevice_Marshal(t *testing.T) {
	raw, err := json.Marshal(Device{
		Name:        "Test Device",
		Serial:      "SN-1",
		Identifiers: []string{"abc123"},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Test Device","sn":"SN-1","ids":["abc123"]}`, string(raw))
}
