package models

// TemperatureData holds one ambient temperature reading in °C.
// Most phones have no ambient temperature sensor; readings usually come
// from an external probe or a mock.
type TemperatureData struct {
	Temperature float64 `json:"temperature"` // °C
	TimestampMs int64   `json:"timestamp"`   // ms since Unix epoch
}

func (TemperatureData) CSVHeader() []string {
	return []string{"timestamp", "temperature"}
}

func (t *TemperatureData) CSVRow() []string {
	return []string{itoa64(t.TimestampMs), ftoa(t.Temperature, 2)}
}
