package mock

import "sensor-core/models"

// PressureSeaLevel simulates standard atmospheric pressure at sea level.
func PressureSeaLevel() models.PressureData {
	return models.PressureData{
		Pressure:    1013.25,
		TimestampMs: nowMs(),
	}
}

// PressureAltitude simulates pressure at roughly 500 m elevation.
func PressureAltitude() models.PressureData {
	return models.PressureData{
		Pressure:    950.0,
		TimestampMs: nowMs(),
	}
}
