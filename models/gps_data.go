package models

// GpsData holds one GPS fix. Altitude and speed are optional: not every
// fix carries them, and a missing value is different from 0.
type GpsData struct {
	Latitude    float64  `json:"latitude"`           // degrees, -90..90
	Longitude   float64  `json:"longitude"`          // degrees, -180..180
	Altitude    *float64 `json:"altitude,omitempty"` // metres above sea level
	Accuracy    float64  `json:"accuracy"`           // horizontal estimate, metres
	Speed       *float64 `json:"speed,omitempty"`    // m/s
	TimestampMs int64    `json:"timestamp"`          // ms since Unix epoch
}

func (GpsData) CSVHeader() []string {
	return []string{
		"timestamp", "latitude", "longitude", "altitude", "accuracy", "speed",
	}
}

func (g *GpsData) CSVRow() []string {
	return []string{
		itoa64(g.TimestampMs),
		ftoa(g.Latitude, 6),
		ftoa(g.Longitude, 6),
		fptoa(g.Altitude, 3),
		ftoa(g.Accuracy, 2),
		fptoa(g.Speed, 4),
	}
}
