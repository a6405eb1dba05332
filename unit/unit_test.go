package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		dim    Dimension
		symbol string
		want   Unit
	}{
		{dim: DimensionTemperature, symbol: "°C", want: TemperatureCelsius},
		{dim: DimensionEnergy, symbol: "kWh", want: EnergyKiloWattHour},
		{dim: DimensionSpeed, symbol: "Beaufort", want: SpeedBeaufort},
		{dim: DimensionVolume, symbol: "fl. oz.", want: VolumeFluidOunces},

		// Symbols shared across dimensions resolve per-dimension.
		{dim: DimensionLength, symbol: "in", want: LengthInches},
		{dim: DimensionPrecipitationDepth, symbol: "in", want: PrecipitationDepthInches},
		{dim: DimensionLength, symbol: "m", want: LengthMeters},
		{dim: DimensionTime, symbol: "m", want: TimeMonths},
		{dim: DimensionLength, symbol: "mm", want: LengthMillimeters},
		{dim: DimensionPrecipitationDepth, symbol: "mm", want: PrecipitationDepthMillimeters},
	} {
		t.Run(string(tt.dim)+"/"+tt.symbol, func(t *testing.T) {
			got, err := tt.dim.Parse(tt.symbol)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnknownSymbol(t *testing.T) {
	for _, tt := range []struct {
		dim    Dimension
		symbol string
	}{
		{dim: DimensionTemperature, symbol: "degC"},
		// "in" is a length symbol but not a time symbol.
		{dim: DimensionTime, symbol: "in"},
		{dim: DimensionPower, symbol: ""},
	} {
		t.Run(string(tt.dim)+"/"+tt.symbol, func(t *testing.T) {
			_, err := tt.dim.Parse(tt.symbol)

			require.ErrorIs(t, err, ErrUnknownUnit)
		})
	}
}

func TestUnits_RoundTrip(t *testing.T) {
	// Every cataloged unit parses back to itself through its own dimension.
	for dim, units := range catalog {
		for _, u := range units {
			t.Run(string(dim)+"/"+u.Symbol(), func(t *testing.T) {
				require.Equal(t, dim, u.Dim())

				got, err := dim.Parse(u.Symbol())
				require.NoError(t, err)
				require.Equal(t, u, got)
			})
		}
	}
}

func TestMarshal_SymbolOnly(t *testing.T) {
	// The wire format is the bare symbol, the dimension is never serialized.
	var u Unit = TemperatureFahrenheit

	raw, err := json.Marshal(u)

	require.NoError(t, err)
	assert.JSONEq(t, `"°F"`, string(raw))
}
