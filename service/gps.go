package service

import (
	"fmt"

	"sensor-core/models"
)

// ValidateGPS checks coordinates against the valid lat/lon ranges.
func (s *SensorService) ValidateGPS(data *models.GpsData) error {
	if data.Latitude < -90 || data.Latitude > 90 {
		return models.NewDataError("Invalid latitude")
	}
	if data.Longitude < -180 || data.Longitude > 180 {
		return models.NewDataError("Invalid longitude")
	}
	return nil
}

// FormatGPS renders coordinates as absolute values with hemisphere
// letters, e.g. "37.7749° N, 122.4194° W".
func (s *SensorService) FormatGPS(data *models.GpsData) string {
	latDir := "N"
	if data.Latitude < 0 {
		latDir = "S"
	}
	lonDir := "E"
	if data.Longitude < 0 {
		lonDir = "W"
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s",
		abs(data.Latitude), latDir, abs(data.Longitude), lonDir)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
