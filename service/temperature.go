package service

import (
	"fmt"

	"sensor-core/models"
)

// Electronic sensors are typically rated -40..+85 °C; allow margin.
const (
	minTemperature = -50.0
	maxTemperature = 100.0
)

// ValidateTemperature checks the reading against the plausible range.
func (s *SensorService) ValidateTemperature(data *models.TemperatureData) error {
	if data.Temperature < minTemperature || data.Temperature > maxTemperature {
		return models.NewDataError("Temperature out of range")
	}
	return nil
}

// FormatTemperature renders Celsius with the derived Fahrenheit,
// e.g. "22.5°C (72.5°F)".
func (s *SensorService) FormatTemperature(data *models.TemperatureData) string {
	fahrenheit := data.Temperature*9/5 + 32
	return fmt.Sprintf("%.1f°C (%.1f°F)", data.Temperature, fahrenheit)
}
