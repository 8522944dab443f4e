package models

// PressureData holds one barometric pressure reading in hPa.
type PressureData struct {
	Pressure    float64 `json:"pressure"`  // hPa (hectopascals)
	TimestampMs int64   `json:"timestamp"` // ms since Unix epoch
}

func (PressureData) CSVHeader() []string {
	return []string{"timestamp", "pressure"}
}

func (p *PressureData) CSVRow() []string {
	return []string{itoa64(p.TimestampMs), ftoa(p.Pressure, 2)}
}
