package mock

import "sensor-core/models"

// GPSSanFrancisco simulates a stationary fix in downtown San Francisco.
func GPSSanFrancisco() models.GpsData {
	return models.GpsData{
		Latitude:    37.7749,
		Longitude:   -122.4194,
		Altitude:    models.Float64Ptr(16.0),
		Accuracy:    5.0,
		Speed:       models.Float64Ptr(0.0),
		TimestampMs: nowMs(),
	}
}

// GPSMoving simulates a fix while travelling at ~20 km/h.
func GPSMoving() models.GpsData {
	return models.GpsData{
		Latitude:    37.7750,
		Longitude:   -122.4195,
		Altitude:    models.Float64Ptr(18.0),
		Accuracy:    8.0,
		Speed:       models.Float64Ptr(5.5),
		TimestampMs: nowMs(),
	}
}
