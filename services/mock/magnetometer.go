package mock

import "sensor-core/models"

// MagnetometerNorth simulates a device pointing at magnetic north.
func MagnetometerNorth() models.MagnetometerData {
	return models.MagnetometerData{
		X:           0.0,
		Y:           50.0,
		Z:           20.0,
		Heading:     0.0,
		TimestampMs: nowMs(),
		Accuracy:    3,
	}
}

// MagnetometerSouthwest simulates a device pointing southwest.
func MagnetometerSouthwest() models.MagnetometerData {
	return models.MagnetometerData{
		X:           -35.0,
		Y:           -35.0,
		Z:           20.0,
		Heading:     225.0,
		TimestampMs: nowMs(),
		Accuracy:    3,
	}
}
