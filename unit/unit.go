// Package unit holds the units of measurement accepted by the Home Assistant
// MQTT integration. Units are grouped by the physical dimension they measure,
// and symbols are only meaningful within their dimension: "in" is inches of
// length for DimensionLength but inches of rainfall for
// DimensionPrecipitationDepth, and for DimensionTime "m" means months, not
// meters or minutes.
package unit

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned by Dimension.Parse when no unit in the dimension
// uses the requested symbol.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is a unit of measurement for one of the supported dimensions. On the
// wire a Unit is just its symbol, the dimension is never serialized. All
// implementations in this package are string types whose underlying value is
// the symbol, so they can be marshaled directly.
type Unit interface {
	// Symbol returns the exact string Home Assistant expects for this unit,
	// for example "°C" or "kWh".
	Symbol() string
	// Dim returns the dimension this unit measures.
	Dim() Dimension

	sealed()
}

// Dimension identifies the physical quantity a Unit measures.
type Dimension string

const (
	DimensionApparentPower             Dimension = "apparent power"
	DimensionPower                     Dimension = "power"
	DimensionReactivePower             Dimension = "reactive power"
	DimensionEnergy                    Dimension = "energy"
	DimensionReactiveEnergy            Dimension = "reactive energy"
	DimensionEnergyDistance            Dimension = "energy distance"
	DimensionElectricCurrent           Dimension = "electric current"
	DimensionElectricPotential         Dimension = "electric potential"
	DimensionTemperature               Dimension = "temperature"
	DimensionTime                      Dimension = "time"
	DimensionLength                    Dimension = "length"
	DimensionFrequency                 Dimension = "frequency"
	DimensionPressure                  Dimension = "pressure"
	DimensionSoundPressure             Dimension = "sound pressure"
	DimensionVolume                    Dimension = "volume"
	DimensionVolumeFlowRate            Dimension = "volume flow rate"
	DimensionMass                      Dimension = "mass"
	DimensionIrradiance                Dimension = "irradiance"
	DimensionPrecipitationDepth        Dimension = "precipitation depth"
	DimensionBloodGlucoseConcentration Dimension = "blood glucose concentration"
	DimensionSpeed                     Dimension = "speed"
	DimensionInformation               Dimension = "information"
	DimensionDataRate                  Dimension = "data rate"
)

// Parse resolves a symbol within this dimension. Symbols shared with other
// dimensions resolve to this dimension's unit. If the symbol is not a unit of
// this dimension, an error wrapping ErrUnknownUnit is returned, even if some
// other dimension does use the symbol.
func (d Dimension) Parse(symbol string) (Unit, error) {
	for _, u := range catalog[d] {
		if u.Symbol() == symbol {
			return u, nil
		}
	}

	return nil, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, symbol, d)
}

// Units returns all units of this dimension. The returned slice must not be
// modified.
func (d Dimension) Units() []Unit {
	return catalog[d]
}
