package service

import (
	"fmt"
	"math"

	"sensor-core/models"
)

// maxAccel is the largest per-axis magnitude a phone accelerometer
// plausibly reports, in m/s². Exactly 20.0 is still valid.
const maxAccel = 20.0

// ValidateAccelerometer checks every axis against the plausible range.
func (s *SensorService) ValidateAccelerometer(data *models.AccelerometerData) error {
	if math.Abs(data.X) > maxAccel || math.Abs(data.Y) > maxAccel || math.Abs(data.Z) > maxAccel {
		return models.NewDataError("Acceleration value out of range")
	}
	return nil
}

// AccelerationMagnitude returns the Euclidean norm of the three axes.
func (s *SensorService) AccelerationMagnitude(data *models.AccelerometerData) float64 {
	return math.Sqrt(data.X*data.X + data.Y*data.Y + data.Z*data.Z)
}

// FormatAccelerometer renders a per-axis display string.
func (s *SensorService) FormatAccelerometer(data *models.AccelerometerData) string {
	return fmt.Sprintf("X: %.2f m/s², Y: %.2f m/s², Z: %.2f m/s²",
		data.X, data.Y, data.Z)
}
