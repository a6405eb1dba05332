package deviceclass

// Sensor device classes. SensorEnum is special: it unlocks the sensor's
// options list and excludes state classes and units of measurement.
type Sensor string

const (
	SensorNone                          Sensor = "None"
	SensorAbsoluteHumidity              Sensor = "absolute_humidity"
	SensorApparentPower                 Sensor = "apparent_power"
	SensorAqi                           Sensor = "aqi"
	SensorArea                          Sensor = "area"
	SensorAtmosphericPressure           Sensor = "atmospheric_pressure"
	SensorBattery                       Sensor = "battery"
	SensorBloodGlucoseConcentration     Sensor = "blood_glucose_concentration"
	SensorCarbonDioxide                 Sensor = "carbon_dioxide"
	SensorCarbonMonoxide                Sensor = "carbon_monoxide"
	SensorCurrent                       Sensor = "current"
	SensorDataRate                      Sensor = "data_rate"
	SensorDataSize                      Sensor = "data_size"
	SensorDate                          Sensor = "date"
	SensorDistance                      Sensor = "distance"
	SensorDuration                      Sensor = "duration"
	SensorEnergy                        Sensor = "energy"
	SensorEnergyDistance                Sensor = "energy_distance"
	SensorEnergyStorage                 Sensor = "energy_storage"
	SensorEnum                          Sensor = "enum"
	SensorFrequency                     Sensor = "frequency"
	SensorGas                           Sensor = "gas"
	SensorHumidity                      Sensor = "humidity"
	SensorIlluminance                   Sensor = "illuminance"
	SensorIrradiance                    Sensor = "irradiance"
	SensorMoisture                      Sensor = "moisture"
	SensorMonetary                      Sensor = "monetary"
	SensorNitrogenDioxide               Sensor = "nitrogen_dioxide"
	SensorNitrogenMonoxide              Sensor = "nitrogen_monoxide"
	SensorNitrousOxide                  Sensor = "nitrous_oxide"
	SensorOzone                         Sensor = "ozone"
	SensorPh                            Sensor = "ph"
	SensorPm1                           Sensor = "pm1"
	SensorPm25                          Sensor = "pm25"
	SensorPm10                          Sensor = "pm10"
	SensorPowerFactor                   Sensor = "power_factor"
	SensorPower                         Sensor = "power"
	SensorPrecipitation                 Sensor = "precipitation"
	SensorPrecipitationIntensity        Sensor = "precipitation_intensity"
	SensorPressure                      Sensor = "pressure"
	SensorReactiveEnergy                Sensor = "reactive_energy"
	SensorReactivePower                 Sensor = "reactive_power"
	SensorSignalStrength                Sensor = "signal_strength"
	SensorSoundPressure                 Sensor = "sound_pressure"
	SensorSpeed                         Sensor = "speed"
	SensorSulphurDioxide                Sensor = "sulphur_dioxide"
	SensorTemperature                   Sensor = "temperature"
	SensorTimestamp                     Sensor = "timestamp"
	SensorVolatileOrganicCompounds      Sensor = "volatile_organic_compounds"
	SensorVolatileOrganicCompoundsParts Sensor = "volatile_organic_compounds_parts"
	SensorVoltage                       Sensor = "voltage"
	SensorVolume                        Sensor = "volume"
	SensorVolumeFlowRate                Sensor = "volume_flow_rate"
	SensorVolumeStorage                 Sensor = "volume_storage"
	SensorWater                         Sensor = "water"
	SensorWeight                        Sensor = "weight"
	SensorWindDirection                 Sensor = "wind_direction"
	SensorWindSpeed                     Sensor = "wind_speed"
)

// BinarySensor device classes.
type BinarySensor string

const (
	BinarySensorNone            BinarySensor = "None"
	BinarySensorBattery         BinarySensor = "battery"
	BinarySensorBatteryCharging BinarySensor = "battery_charging"
	BinarySensorCarbonMonoxide  BinarySensor = "carbon_monoxide"
	BinarySensorCold            BinarySensor = "cold"
	BinarySensorConnectivity    BinarySensor = "connectivity"
	BinarySensorDoor            BinarySensor = "door"
	BinarySensorGarageDoor      BinarySensor = "garage_door"
	BinarySensorGas             BinarySensor = "gas"
	BinarySensorHeat            BinarySensor = "heat"
	BinarySensorLight           BinarySensor = "light"
	BinarySensorLock            BinarySensor = "lock"
	BinarySensorMoisture        BinarySensor = "moisture"
	BinarySensorMotion          BinarySensor = "motion"
	BinarySensorMoving          BinarySensor = "moving"
	BinarySensorOccupancy       BinarySensor = "occupancy"
	BinarySensorOpening         BinarySensor = "opening"
	BinarySensorPlug            BinarySensor = "plug"
	BinarySensorPower           BinarySensor = "power"
	BinarySensorPresence        BinarySensor = "presence"
	BinarySensorProblem         BinarySensor = "problem"
	BinarySensorRunning         BinarySensor = "running"
	BinarySensorSafety          BinarySensor = "safety"
	BinarySensorSmoke           BinarySensor = "smoke"
	BinarySensorSound           BinarySensor = "sound"
	BinarySensorTamper          BinarySensor = "tamper"
	BinarySensorUpdate          BinarySensor = "update"
	BinarySensorVibration       BinarySensor = "vibration"
	BinarySensorWindow          BinarySensor = "window"
)
