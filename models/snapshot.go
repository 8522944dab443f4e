package models

// Snapshot bundles at most one reading per sensor taken around the same
// moment. The export layer writes one of these per capture.
type Snapshot struct {
	TimestampMs   int64              `json:"timestamp"` // capture anchor time, ms epoch
	Accelerometer *AccelerometerData `json:"accelerometer,omitempty"`
	Magnetometer  *MagnetometerData  `json:"magnetometer,omitempty"`
	GPS           *GpsData           `json:"gps,omitempty"`
	Pressure      *PressureData      `json:"pressure,omitempty"`
	Temperature   *TemperatureData   `json:"temperature,omitempty"`
}

// CSVHeader returns the snapshot CSV header: anchor timestamp + a
// prefixed block per sensor.
func (Snapshot) CSVHeader() []string {
	h := []string{"timestamp"}
	h = append(h, "accel_x", "accel_y", "accel_z", "accel_accuracy")
	h = append(h, "mag_x", "mag_y", "mag_z", "mag_heading")
	h = append(h, "gps_lat", "gps_lon", "gps_alt", "gps_accuracy", "gps_speed")
	h = append(h, "pressure")
	h = append(h, "temperature")
	return h
}

// CSVRow returns a single snapshot row, using empty cells for sensors
// that produced nothing in this capture.
func (s *Snapshot) CSVRow() []string {
	row := []string{itoa64(s.TimestampMs)}

	if a := s.Accelerometer; a != nil {
		row = append(row, ftoa(a.X, 6), ftoa(a.Y, 6), ftoa(a.Z, 6), itoa(a.Accuracy))
	} else {
		row = append(row, "", "", "", "")
	}

	if m := s.Magnetometer; m != nil {
		row = append(row, ftoa(m.X, 4), ftoa(m.Y, 4), ftoa(m.Z, 4), ftoa(m.Heading, 2))
	} else {
		row = append(row, "", "", "", "")
	}

	if g := s.GPS; g != nil {
		row = append(row,
			ftoa(g.Latitude, 6), ftoa(g.Longitude, 6),
			fptoa(g.Altitude, 3), ftoa(g.Accuracy, 2), fptoa(g.Speed, 4))
	} else {
		row = append(row, "", "", "", "", "")
	}

	if p := s.Pressure; p != nil {
		row = append(row, ftoa(p.Pressure, 2))
	} else {
		row = append(row, "")
	}

	if t := s.Temperature; t != nil {
		row = append(row, ftoa(t.Temperature, 2))
	} else {
		row = append(row, "")
	}

	return row
}
