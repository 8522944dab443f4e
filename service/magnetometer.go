package service

import (
	"fmt"

	"sensor-core/models"
)

// FormatHeading renders the heading with its cardinal direction,
// e.g. "225.0° (SW)".
func (s *SensorService) FormatHeading(data *models.MagnetometerData) string {
	return fmt.Sprintf("%.1f° (%s)",
		data.Heading, models.CardinalDirection(data.Heading))
}
