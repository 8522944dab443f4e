package models

import (
	"math"
	"testing"
)

func TestCalculateHeadingCompassPoints(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want float64
	}{
		{"north", 0, 10, 0},
		{"east", 10, 0, 90},
		{"south", 0, -10, 180},
		{"west", -10, 0, 270},
		{"northeast", 10, 10, 45},
		{"southwest", -35, -35, 225},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateHeading(tc.x, tc.y)
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("CalculateHeading(%g, %g) = %g, want %g", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCalculateHeadingRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		// x east, y north: a bearing of deg degrees
		got := CalculateHeading(math.Sin(rad), math.Cos(rad))
		if got < 0 || got >= 360 {
			t.Fatalf("heading %g outside [0,360)", got)
		}
		if math.Abs(got-float64(deg)) > 0.01 {
			t.Errorf("bearing %d°: got %g", deg, got)
		}
	}
}

func TestCardinalDirection(t *testing.T) {
	cases := []struct {
		heading float64
		want    string
	}{
		{0, "N"},
		{10, "N"},
		{350, "N"},
		{22.5, "NE"},
		{45, "NE"},
		{85, "E"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{202.5, "SW"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337.5, "N"},
		{360, "N"},
		{-45, "NW"}, // normalizes to 315
		{405, "NE"}, // normalizes to 45
		{-360, "N"}, // normalizes to 0
	}
	for _, tc := range cases {
		if got := CardinalDirection(tc.heading); got != tc.want {
			t.Errorf("CardinalDirection(%g) = %q, want %q", tc.heading, got, tc.want)
		}
	}
}
