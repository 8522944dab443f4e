package mock

import "sensor-core/models"

// TemperatureComfortable simulates room temperature.
func TemperatureComfortable() models.TemperatureData {
	return models.TemperatureData{
		Temperature: 22.5,
		TimestampMs: nowMs(),
	}
}

// TemperatureHot simulates a hot day.
func TemperatureHot() models.TemperatureData {
	return models.TemperatureData{
		Temperature: 35.0,
		TimestampMs: nowMs(),
	}
}
