package mock

import "sensor-core/models"

// AccelerometerAtRest simulates a device lying still: gravity on the
// Y axis, nothing else.
func AccelerometerAtRest() models.AccelerometerData {
	return models.AccelerometerData{
		X:           0.0,
		Y:           9.81,
		Z:           0.0,
		TimestampMs: nowMs(),
		Accuracy:    3,
	}
}

// AccelerometerShaking simulates a device being shaken.
func AccelerometerShaking() models.AccelerometerData {
	return models.AccelerometerData{
		X:           2.5,
		Y:           8.3,
		Z:           -1.2,
		TimestampMs: nowMs(),
		Accuracy:    3,
	}
}
