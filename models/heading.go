package models

import "math"

// CalculateHeading derives a compass heading in degrees from the X and Y
// magnetometer components. In compass terms Y points toward magnetic
// north and X toward east, so the angle is atan2(x, y) — not the usual
// atan2(y, x).
func CalculateHeading(x, y float64) float64 {
	heading := math.Atan2(x, y) * 180 / math.Pi
	if heading < 0 {
		heading += 360
	}
	return heading
}

// CardinalDirection buckets a heading into one of the eight compass
// points. Each sector is 45° wide and centred on its point, so N covers
// [337.5,360) plus [0,22.5).
func CardinalDirection(heading float64) string {
	h := math.Mod(math.Mod(heading, 360)+360, 360)
	switch {
	case h < 22.5 || h >= 337.5:
		return "N"
	case h < 67.5:
		return "NE"
	case h < 112.5:
		return "E"
	case h < 157.5:
		return "SE"
	case h < 202.5:
		return "S"
	case h < 247.5:
		return "SW"
	case h < 292.5:
		return "W"
	default:
		return "NW"
	}
}
