package models

import (
	"errors"
	"strings"
	"testing"
)

func TestSensorErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *SensorError
		want string
	}{
		{"not available", NewNotAvailable("Barometer not found"), "Sensor not available: Barometer not found"},
		{"permission denied", NewPermissionDenied("Location permission required"), "Permission denied: Location permission required"},
		{"hardware", NewHardwareError("bus stalled"), "Hardware error: bus stalled"},
		{"plugin", NewPluginError("channel closed"), "Plugin error: channel closed"},
		{"data", NewDataError("Acceleration value out of range"), "Data error: Acceleration value out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSensorErrorKinds(t *testing.T) {
	if NewDataError("x").Kind != ErrData {
		t.Error("NewDataError should carry ErrData")
	}
	if NewNotAvailable("x").Kind != ErrNotAvailable {
		t.Error("NewNotAvailable should carry ErrNotAvailable")
	}
}

func TestSensorErrorIs(t *testing.T) {
	err := NewDataError("Pressure out of range")

	if !errors.Is(err, &SensorError{Kind: ErrData}) {
		t.Error("errors.Is should match on bare kind")
	}
	if errors.Is(err, &SensorError{Kind: ErrHardware}) {
		t.Error("errors.Is should not match a different kind")
	}

	var se *SensorError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should extract *SensorError")
	}
	if !strings.Contains(se.Error(), "Pressure") {
		t.Errorf("unexpected message: %s", se.Error())
	}
}
