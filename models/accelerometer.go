package models

// AccelerometerData holds one accelerometer reading: acceleration force
// along three axes in m/s².
type AccelerometerData struct {
	X           float64 `json:"x"` // m/s²
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	TimestampMs int64   `json:"timestamp"` // ms since Unix epoch
	Accuracy    int     `json:"accuracy"`  // 0-3, 3 is highest
}

func (AccelerometerData) CSVHeader() []string {
	return []string{"timestamp", "x", "y", "z", "accuracy"}
}

func (d *AccelerometerData) CSVRow() []string {
	return []string{
		itoa64(d.TimestampMs),
		ftoa(d.X, 6), ftoa(d.Y, 6), ftoa(d.Z, 6),
		itoa(d.Accuracy),
	}
}
