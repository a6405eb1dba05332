package unit

// ApparentPower units.
type ApparentPower string

const (
	ApparentPowerVoltAmpere ApparentPower = "VA"
)

func (u ApparentPower) Symbol() string { return string(u) }
func (ApparentPower) Dim() Dimension   { return DimensionApparentPower }
func (ApparentPower) sealed()          {}

// Power units.
type Power string

const (
	PowerMilliWatt  Power = "mW"
	PowerWatt       Power = "W"
	PowerKiloWatt   Power = "kW"
	PowerMegaWatt   Power = "MW"
	PowerGigaWatt   Power = "GW"
	PowerTeraWatt   Power = "TW"
	PowerBtuPerHour Power = "BTU/h"
)

func (u Power) Symbol() string { return string(u) }
func (Power) Dim() Dimension   { return DimensionPower }
func (Power) sealed()          {}

// ReactivePower units.
type ReactivePower string

const (
	ReactivePowerVoltAmpereReactive     ReactivePower = "var"
	ReactivePowerKiloVoltAmpereReactive ReactivePower = "kvar"
)

func (u ReactivePower) Symbol() string { return string(u) }
func (ReactivePower) Dim() Dimension   { return DimensionReactivePower }
func (ReactivePower) sealed()          {}

// Energy units.
type Energy string

const (
	EnergyJoule         Energy = "J"
	EnergyKiloJoule     Energy = "kJ"
	EnergyMegaJoule     Energy = "MJ"
	EnergyGigaJoule     Energy = "GJ"
	EnergyMilliWattHour Energy = "mWh"
	EnergyWattHour      Energy = "Wh"
	EnergyKiloWattHour  Energy = "kWh"
	EnergyMegaWattHour  Energy = "MWh"
	EnergyGigaWattHour  Energy = "GWh"
	EnergyTeraWattHour  Energy = "TWh"
	EnergyCalorie       Energy = "cal"
	EnergyKiloCalorie   Energy = "kcal"
	EnergyMegaCalorie   Energy = "Mcal"
	EnergyGigaCalorie   Energy = "Gcal"
)

func (u Energy) Symbol() string { return string(u) }
func (Energy) Dim() Dimension   { return DimensionEnergy }
func (Energy) sealed()          {}

// ReactiveEnergy units.
type ReactiveEnergy string

const (
	ReactiveEnergyVoltAmpereReactiveHour     ReactiveEnergy = "varh"
	ReactiveEnergyKiloVoltAmpereReactiveHour ReactiveEnergy = "kvarh"
)

func (u ReactiveEnergy) Symbol() string { return string(u) }
func (ReactiveEnergy) Dim() Dimension   { return DimensionReactiveEnergy }
func (ReactiveEnergy) sealed()          {}

// EnergyDistance units measure electric vehicle energy consumption.
type EnergyDistance string

const (
	EnergyDistanceKiloWattHourPer100Km EnergyDistance = "kWh/100km"
	EnergyDistanceWattHourPerKm        EnergyDistance = "Wh/km"
	EnergyDistanceMilesPerKiloWattHour EnergyDistance = "mi/kWh"
	EnergyDistanceKmPerKiloWattHour    EnergyDistance = "km/kWh"
)

func (u EnergyDistance) Symbol() string { return string(u) }
func (EnergyDistance) Dim() Dimension   { return DimensionEnergyDistance }
func (EnergyDistance) sealed()          {}

// ElectricCurrent units.
type ElectricCurrent string

const (
	ElectricCurrentMilliampere ElectricCurrent = "mA"
	ElectricCurrentAmpere      ElectricCurrent = "A"
)

func (u ElectricCurrent) Symbol() string { return string(u) }
func (ElectricCurrent) Dim() Dimension   { return DimensionElectricCurrent }
func (ElectricCurrent) sealed()          {}

// ElectricPotential units.
type ElectricPotential string

const (
	ElectricPotentialMicrovolt ElectricPotential = "µV"
	ElectricPotentialMillivolt ElectricPotential = "mV"
	ElectricPotentialVolt      ElectricPotential = "V"
	ElectricPotentialKilovolt  ElectricPotential = "kV"
	ElectricPotentialMegavolt  ElectricPotential = "MV"
)

func (u ElectricPotential) Symbol() string { return string(u) }
func (ElectricPotential) Dim() Dimension   { return DimensionElectricPotential }
func (ElectricPotential) sealed()          {}

// Temperature units.
type Temperature string

const (
	TemperatureCelsius    Temperature = "°C"
	TemperatureFahrenheit Temperature = "°F"
	TemperatureKelvin     Temperature = "K"
)

func (u Temperature) Symbol() string { return string(u) }
func (Temperature) Dim() Dimension   { return DimensionTemperature }
func (Temperature) sealed()          {}

// Time units. Note that "m" is months here, minutes are "min".
type Time string

const (
	TimeMicroseconds Time = "μs"
	TimeMilliseconds Time = "ms"
	TimeSeconds      Time = "s"
	TimeMinutes      Time = "min"
	TimeHours        Time = "h"
	TimeDays         Time = "d"
	TimeWeeks        Time = "w"
	TimeMonths       Time = "m"
	TimeYears        Time = "y"
)

func (u Time) Symbol() string { return string(u) }
func (Time) Dim() Dimension   { return DimensionTime }
func (Time) sealed()          {}

// Length units.
type Length string

const (
	LengthMillimeters   Length = "mm"
	LengthCentimeters   Length = "cm"
	LengthMeters        Length = "m"
	LengthKilometers    Length = "km"
	LengthInches        Length = "in"
	LengthFeet          Length = "ft"
	LengthYards         Length = "yd"
	LengthMiles         Length = "mi"
	LengthNauticalMiles Length = "nmi"
)

func (u Length) Symbol() string { return string(u) }
func (Length) Dim() Dimension   { return DimensionLength }
func (Length) sealed()          {}

// Frequency units.
type Frequency string

const (
	FrequencyHertz     Frequency = "Hz"
	FrequencyKilohertz Frequency = "kHz"
	FrequencyMegahertz Frequency = "MHz"
	FrequencyGigahertz Frequency = "GHz"
)

func (u Frequency) Symbol() string { return string(u) }
func (Frequency) Dim() Dimension   { return DimensionFrequency }
func (Frequency) sealed()          {}

// Pressure units.
type Pressure string

const (
	PressurePascal             Pressure = "Pa"
	PressureHectopascal        Pressure = "hPa"
	PressureKilopascal         Pressure = "kPa"
	PressureBar                Pressure = "bar"
	PressureCentibar           Pressure = "cbar"
	PressureMillibar           Pressure = "mbar"
	PressureMillimetersMercury Pressure = "mmHg"
	PressureInchesMercury      Pressure = "inHg"
	PressurePsi                Pressure = "psi"
)

func (u Pressure) Symbol() string { return string(u) }
func (Pressure) Dim() Dimension   { return DimensionPressure }
func (Pressure) sealed()          {}

// SoundPressure units.
type SoundPressure string

const (
	SoundPressureDecibel          SoundPressure = "dB"
	SoundPressureWeightedDecibelA SoundPressure = "dBA"
)

func (u SoundPressure) Symbol() string { return string(u) }
func (SoundPressure) Dim() Dimension   { return DimensionSoundPressure }
func (SoundPressure) sealed()          {}

// Volume units.
type Volume string

const (
	VolumeCubicFeet       Volume = "ft³"
	VolumeCentumCubicFeet Volume = "CCF"
	VolumeCubicMeters     Volume = "m³"
	VolumeLiters          Volume = "L"
	VolumeMilliliters     Volume = "mL"
	VolumeGallons         Volume = "gal"
	VolumeFluidOunces     Volume = "fl. oz."
)

func (u Volume) Symbol() string { return string(u) }
func (Volume) Dim() Dimension   { return DimensionVolume }
func (Volume) sealed()          {}

// VolumeFlowRate units.
type VolumeFlowRate string

const (
	VolumeFlowRateCubicMetersPerHour   VolumeFlowRate = "m³/h"
	VolumeFlowRateCubicMetersPerSecond VolumeFlowRate = "m³/s"
	VolumeFlowRateCubicFeetPerMinute   VolumeFlowRate = "ft³/min"
	VolumeFlowRateLitersPerHour        VolumeFlowRate = "L/h"
	VolumeFlowRateLitersPerMinute      VolumeFlowRate = "L/min"
	VolumeFlowRateLitersPerSecond      VolumeFlowRate = "L/s"
	VolumeFlowRateGallonsPerMinute     VolumeFlowRate = "gal/min"
	VolumeFlowRateMillilitersPerSecond VolumeFlowRate = "mL/s"
)

func (u VolumeFlowRate) Symbol() string { return string(u) }
func (VolumeFlowRate) Dim() Dimension   { return DimensionVolumeFlowRate }
func (VolumeFlowRate) sealed()          {}

// Mass units.
type Mass string

const (
	MassGrams      Mass = "g"
	MassKilograms  Mass = "kg"
	MassMilligrams Mass = "mg"
	MassMicrograms Mass = "µg"
	MassOunces     Mass = "oz"
	MassPounds     Mass = "lb"
	MassStones     Mass = "st"
)

func (u Mass) Symbol() string { return string(u) }
func (Mass) Dim() Dimension   { return DimensionMass }
func (Mass) sealed()          {}

// Irradiance units.
type Irradiance string

const (
	IrradianceWattsPerSquareMeter   Irradiance = "W/m²"
	IrradianceBtusPerHourSquareFoot Irradiance = "BTU/(h⋅ft²)"
)

func (u Irradiance) Symbol() string { return string(u) }
func (Irradiance) Dim() Dimension   { return DimensionIrradiance }
func (Irradiance) sealed()          {}

// PrecipitationDepth units. These intentionally reuse length symbols;
// rainfall is measured in the same symbols but is a different dimension.
type PrecipitationDepth string

const (
	PrecipitationDepthInches      PrecipitationDepth = "in"
	PrecipitationDepthMillimeters PrecipitationDepth = "mm"
	PrecipitationDepthCentimeters PrecipitationDepth = "cm"
)

func (u PrecipitationDepth) Symbol() string { return string(u) }
func (PrecipitationDepth) Dim() Dimension   { return DimensionPrecipitationDepth }
func (PrecipitationDepth) sealed()          {}

// BloodGlucoseConcentration units.
type BloodGlucoseConcentration string

const (
	BloodGlucoseConcentrationMilligramsPerDeciliter BloodGlucoseConcentration = "mg/dL"
	BloodGlucoseConcentrationMillimolesPerLiter     BloodGlucoseConcentration = "mmol/L"
)

func (u BloodGlucoseConcentration) Symbol() string { return string(u) }
func (BloodGlucoseConcentration) Dim() Dimension {
	return DimensionBloodGlucoseConcentration
}
func (BloodGlucoseConcentration) sealed() {}

// Speed units.
type Speed string

const (
	SpeedBeaufort               Speed = "Beaufort"
	SpeedFeetPerSecond          Speed = "ft/s"
	SpeedInchesPerSecond        Speed = "in/s"
	SpeedMetersPerSecond        Speed = "m/s"
	SpeedKilometersPerHour      Speed = "km/h"
	SpeedKnots                  Speed = "kn"
	SpeedMilesPerHour           Speed = "mph"
	SpeedMillimetersPerSecond   Speed = "mm/s"
)

func (u Speed) Symbol() string { return string(u) }
func (Speed) Dim() Dimension   { return DimensionSpeed }
func (Speed) sealed()          {}

// Information units.
type Information string

const (
	InformationBits       Information = "bit"
	InformationKilobits   Information = "kbit"
	InformationMegabits   Information = "Mbit"
	InformationGigabits   Information = "Gbit"
	InformationBytes      Information = "B"
	InformationKilobytes  Information = "kB"
	InformationMegabytes  Information = "MB"
	InformationGigabytes  Information = "GB"
	InformationTerabytes  Information = "TB"
	InformationPetabytes  Information = "PB"
	InformationExabytes   Information = "EB"
	InformationZettabytes Information = "ZB"
	InformationYottabytes Information = "YB"
	InformationKibibytes  Information = "KiB"
	InformationMebibytes  Information = "MiB"
	InformationGibibytes  Information = "GiB"
	InformationTebibytes  Information = "TiB"
	InformationPebibytes  Information = "PiB"
	InformationExbibytes  Information = "EiB"
	InformationZebibytes  Information = "ZiB"
	InformationYobibytes  Information = "YiB"
)

func (u Information) Symbol() string { return string(u) }
func (Information) Dim() Dimension   { return DimensionInformation }
func (Information) sealed()          {}

// DataRate units.
type DataRate string

const (
	DataRateBitsPerSecond      DataRate = "bit/s"
	DataRateKilobitsPerSecond  DataRate = "kbit/s"
	DataRateMegabitsPerSecond  DataRate = "Mbit/s"
	DataRateGigabitsPerSecond  DataRate = "Gbit/s"
	DataRateBytesPerSecond     DataRate = "B/s"
	DataRateKilobytesPerSecond DataRate = "kB/s"
	DataRateMegabytesPerSecond DataRate = "MB/s"
	DataRateGigabytesPerSecond DataRate = "GB/s"
	DataRateKibibytesPerSecond DataRate = "KiB/s"
	DataRateMebibytesPerSecond DataRate = "MiB/s"
	DataRateGibibytesPerSecond DataRate = "GiB/s"
)

func (u DataRate) Symbol() string { return string(u) }
func (DataRate) Dim() Dimension   { return DimensionDataRate }
func (DataRate) sealed()          {}

var catalog = map[Dimension][]Unit{
	DimensionApparentPower: {ApparentPowerVoltAmpere},
	DimensionPower: {
		PowerMilliWatt, PowerWatt, PowerKiloWatt, PowerMegaWatt, PowerGigaWatt,
		PowerTeraWatt, PowerBtuPerHour,
	},
	DimensionReactivePower: {ReactivePowerVoltAmpereReactive, ReactivePowerKiloVoltAmpereReactive},
	DimensionEnergy: {
		EnergyJoule, EnergyKiloJoule, EnergyMegaJoule, EnergyGigaJoule,
		EnergyMilliWattHour, EnergyWattHour, EnergyKiloWattHour, EnergyMegaWattHour,
		EnergyGigaWattHour, EnergyTeraWattHour, EnergyCalorie, EnergyKiloCalorie,
		EnergyMegaCalorie, EnergyGigaCalorie,
	},
	DimensionReactiveEnergy: {ReactiveEnergyVoltAmpereReactiveHour, ReactiveEnergyKiloVoltAmpereReactiveHour},
	DimensionEnergyDistance: {
		EnergyDistanceKiloWattHourPer100Km, EnergyDistanceWattHourPerKm,
		EnergyDistanceMilesPerKiloWattHour, EnergyDistanceKmPerKiloWattHour,
	},
	DimensionElectricCurrent: {ElectricCurrentMilliampere, ElectricCurrentAmpere},
	DimensionElectricPotential: {
		ElectricPotentialMicrovolt, ElectricPotentialMillivolt, ElectricPotentialVolt,
		ElectricPotentialKilovolt, ElectricPotentialMegavolt,
	},
	DimensionTemperature: {TemperatureCelsius, TemperatureFahrenheit, TemperatureKelvin},
	DimensionTime: {
		TimeMicroseconds, TimeMilliseconds, TimeSeconds, TimeMinutes, TimeHours,
		TimeDays, TimeWeeks, TimeMonths, TimeYears,
	},
	DimensionLength: {
		LengthMillimeters, LengthCentimeters, LengthMeters, LengthKilometers,
		LengthInches, LengthFeet, LengthYards, LengthMiles, LengthNauticalMiles,
	},
	DimensionFrequency: {FrequencyHertz, FrequencyKilohertz, FrequencyMegahertz, FrequencyGigahertz},
	DimensionPressure: {
		PressurePascal, PressureHectopascal, PressureKilopascal, PressureBar,
		PressureCentibar, PressureMillibar, PressureMillimetersMercury,
		PressureInchesMercury, PressurePsi,
	},
	DimensionSoundPressure: {SoundPressureDecibel, SoundPressureWeightedDecibelA},
	DimensionVolume: {
		VolumeCubicFeet, VolumeCentumCubicFeet, VolumeCubicMeters, VolumeLiters,
		VolumeMilliliters, VolumeGallons, VolumeFluidOunces,
	},
	DimensionVolumeFlowRate: {
		VolumeFlowRateCubicMetersPerHour, VolumeFlowRateCubicMetersPerSecond,
		VolumeFlowRateCubicFeetPerMinute, VolumeFlowRateLitersPerHour,
		VolumeFlowRateLitersPerMinute, VolumeFlowRateLitersPerSecond,
		VolumeFlowRateGallonsPerMinute, VolumeFlowRateMillilitersPerSecond,
	},
	DimensionMass: {
		MassGrams, MassKilograms, MassMilligrams, MassMicrograms, MassOunces,
		MassPounds, MassStones,
	},
	DimensionIrradiance: {IrradianceWattsPerSquareMeter, IrradianceBtusPerHourSquareFoot},
	DimensionPrecipitationDepth: {
		PrecipitationDepthInches, PrecipitationDepthMillimeters, PrecipitationDepthCentimeters,
	},
	DimensionBloodGlucoseConcentration: {
		BloodGlucoseConcentrationMilligramsPerDeciliter, BloodGlucoseConcentrationMillimolesPerLiter,
	},
	DimensionSpeed: {
		SpeedBeaufort, SpeedFeetPerSecond, SpeedInchesPerSecond, SpeedMetersPerSecond,
		SpeedKilometersPerHour, SpeedKnots, SpeedMilesPerHour, SpeedMillimetersPerSecond,
	},
	DimensionInformation: {
		InformationBits, InformationKilobits, InformationMegabits, InformationGigabits,
		InformationBytes, InformationKilobytes, InformationMegabytes, InformationGigabytes,
		InformationTerabytes, InformationPetabytes, InformationExabytes,
		InformationZettabytes, InformationYottabytes, InformationKibibytes,
		InformationMebibytes, InformationGibibytes, InformationTebibytes,
		InformationPebibytes, InformationExbibytes, InformationZebibytes,
		InformationYobibytes,
	},
	DimensionDataRate: {
		DataRateBitsPerSecond, DataRateKilobitsPerSecond, DataRateMegabitsPerSecond,
		DataRateGigabitsPerSecond, DataRateBytesPerSecond, DataRateKilobytesPerSecond,
		DataRateMegabytesPerSecond, DataRateGigabytesPerSecond,
		DataRateKibibytesPerSecond, DataRateMebibytesPerSecond, DataRateGibibytesPerSecond,
	},
}
