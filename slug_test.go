package hamqtt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "already_valid-123", want: "already_valid-123"},
		{in: "Büro-Sensor #1", want: "Buro-Sensor__1"},
		{in: "Küche/Herd", want: "Kuche_Herd"},
		{in: "façade", want: "facade"},
		{in: "temp.sensor", want: "temp_sensor"},
		{in: "日本語", want: "___"},
		{in: "a b\tc", want: "a_b_c"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
