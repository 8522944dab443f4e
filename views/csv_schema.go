package views

// CSVSchema defines the column layout for each sensor type's CSV output.
// This file serves as the single source of truth for column ordering.

// SensorType identifies a sensor for schema lookups.
type SensorType int

const (
	SensorAccelerometer SensorType = iota
	SensorMagnetometer
	SensorGPS
	SensorPressure
	SensorTemperature
	SensorWifi
	SensorSnapshot
)

var sensorNames = map[SensorType]string{
	SensorAccelerometer: "accelerometer",
	SensorMagnetometer:  "magnetometer",
	SensorGPS:           "gps",
	SensorPressure:      "pressure",
	SensorTemperature:   "temperature",
	SensorWifi:          "wifi",
	SensorSnapshot:      "snapshot",
}

func (s SensorType) String() string {
	if n, ok := sensorNames[s]; ok {
		return n
	}
	return "unknown"
}

// SchemaColumns returns the canonical column list for a sensor.
// The actual header writing is handled by the model's CSVHeader() method;
// this is kept here as a human-readable reference and for validation.
var SchemaColumns = map[SensorType][]string{
	SensorAccelerometer: {
		"timestamp", "x", "y", "z", "accuracy",
	},
	SensorMagnetometer: {
		"timestamp", "x", "y", "z", "heading", "accuracy",
	},
	SensorGPS: {
		"timestamp", "latitude", "longitude", "altitude", "accuracy", "speed",
	},
	SensorPressure: {
		"timestamp", "pressure",
	},
	SensorTemperature: {
		"timestamp", "temperature",
	},
	SensorWifi: {
		"ssid", "bssid", "signal_strength", "frequency", "security",
	},
	SensorSnapshot: {
		"timestamp",
		"accel_x", "accel_y", "accel_z", "accel_accuracy",
		"mag_x", "mag_y", "mag_z", "mag_heading",
		"gps_lat", "gps_lon", "gps_alt", "gps_accuracy", "gps_speed",
		"pressure",
		"temperature",
	},
}
