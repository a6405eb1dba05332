package deviceclass

// Number device classes. This mirrors the sensor vocabulary minus the
// non-numeric classes (date, enum, timestamp).
type Number string

const (
	NumberNone                          Number = "None"
	NumberAbsoluteHumidity              Number = "absolute_humidity"
	NumberApparentPower                 Number = "apparent_power"
	NumberAqi                           Number = "aqi"
	NumberArea                          Number = "area"
	NumberAtmosphericPressure           Number = "atmospheric_pressure"
	NumberBattery                       Number = "battery"
	NumberBloodGlucoseConcentration     Number = "blood_glucose_concentration"
	NumberCarbonDioxide                 Number = "carbon_dioxide"
	NumberCarbonMonoxide                Number = "carbon_monoxide"
	NumberCurrent                       Number = "current"
	NumberDataRate                      Number = "data_rate"
	NumberDataSize                      Number = "data_size"
	NumberDistance                      Number = "distance"
	NumberDuration                      Number = "duration"
	NumberEnergy                        Number = "energy"
	NumberEnergyDistance                Number = "energy_distance"
	NumberEnergyStorage                 Number = "energy_storage"
	NumberFrequency                     Number = "frequency"
	NumberGas                           Number = "gas"
	NumberHumidity                      Number = "humidity"
	NumberIlluminance                   Number = "illuminance"
	NumberIrradiance                    Number = "irradiance"
	NumberMoisture                      Number = "moisture"
	NumberMonetary                      Number = "monetary"
	NumberNitrogenDioxide               Number = "nitrogen_dioxide"
	NumberNitrogenMonoxide              Number = "nitrogen_monoxide"
	NumberNitrousOxide                  Number = "nitrous_oxide"
	NumberOzone                         Number = "ozone"
	NumberPh                            Number = "ph"
	NumberPm1                           Number = "pm1"
	NumberPm25                          Number = "pm25"
	NumberPm10                          Number = "pm10"
	NumberPowerFactor                   Number = "power_factor"
	NumberPower                         Number = "power"
	NumberPrecipitation                 Number = "precipitation"
	NumberPrecipitationIntensity        Number = "precipitation_intensity"
	NumberPressure                      Number = "pressure"
	NumberReactiveEnergy                Number = "reactive_energy"
	NumberReactivePower                 Number = "reactive_power"
	NumberSignalStrength                Number = "signal_strength"
	NumberSoundPressure                 Number = "sound_pressure"
	NumberSpeed                         Number = "speed"
	NumberSulphurDioxide                Number = "sulphur_dioxide"
	NumberTemperature                   Number = "temperature"
	NumberVolatileOrganicCompounds      Number = "volatile_organic_compounds"
	NumberVolatileOrganicCompoundsParts Number = "volatile_organic_compounds_parts"
	NumberVoltage                       Number = "voltage"
	NumberVolume                        Number = "volume"
	NumberVolumeFlowRate                Number = "volume_flow_rate"
	NumberVolumeStorage                 Number = "volume_storage"
	NumberWater                         Number = "water"
	NumberWeight                        Number = "weight"
	NumberWindDirection                 Number = "wind_direction"
	NumberWindSpeed                     Number = "wind_speed"
)
