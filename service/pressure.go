package service

import (
	"fmt"

	"sensor-core/models"
)

// Plausible barometric range: ~870 hPa on Everest up to the 1084 hPa
// record high, with margin on both sides.
const (
	minPressure = 800.0
	maxPressure = 1100.0
)

// ValidatePressure checks the reading against the plausible range.
func (s *SensorService) ValidatePressure(data *models.PressureData) error {
	if data.Pressure < minPressure || data.Pressure > maxPressure {
		return models.NewDataError("Pressure out of range")
	}
	return nil
}

// FormatPressure renders the pressure with a qualitative tag.
func (s *SensorService) FormatPressure(data *models.PressureData) string {
	description := "(Normal)"
	switch {
	case data.Pressure < 1000.0:
		description = "(Low)"
	case data.Pressure > 1020.0:
		description = "(High)"
	}
	return fmt.Sprintf("%.2f hPa %s", data.Pressure, description)
}
