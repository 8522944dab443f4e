package models

// MagnetometerData holds one magnetometer reading: magnetic field strength
// along three axes in µT plus the derived compass heading.
type MagnetometerData struct {
	X           float64 `json:"x"` // µT (micro-tesla)
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Heading     float64 `json:"heading"`   // degrees from magnetic north, 0-359.999
	TimestampMs int64   `json:"timestamp"` // ms since Unix epoch
	Accuracy    int     `json:"accuracy"`  // 0-3, 3 is highest
}

func (MagnetometerData) CSVHeader() []string {
	return []string{"timestamp", "x", "y", "z", "heading", "accuracy"}
}

func (d *MagnetometerData) CSVRow() []string {
	return []string{
		itoa64(d.TimestampMs),
		ftoa(d.X, 4), ftoa(d.Y, 4), ftoa(d.Z, 4),
		ftoa(d.Heading, 2),
		itoa(d.Accuracy),
	}
}
