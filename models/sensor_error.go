package models

import "fmt"

// ErrorKind classifies sensor failures.
type ErrorKind int

const (
	// ErrNotAvailable: the sensor does not exist on this device.
	ErrNotAvailable ErrorKind = iota
	// ErrPermissionDenied: the user refused access to the sensor.
	ErrPermissionDenied
	// ErrHardware: the sensor exists but misbehaved.
	ErrHardware
	// ErrPlugin: communication with the platform sensor plugin failed.
	ErrPlugin
	// ErrData: the sensor delivered values outside the plausible range.
	ErrData
)

var errPrefixes = map[ErrorKind]string{
	ErrNotAvailable:     "Sensor not available",
	ErrPermissionDenied: "Permission denied",
	ErrHardware:         "Hardware error",
	ErrPlugin:           "Plugin error",
	ErrData:             "Data error",
}

func (k ErrorKind) String() string {
	if p, ok := errPrefixes[k]; ok {
		return p
	}
	return "Unknown error"
}

// SensorError is the error type for everything in this module. Validation
// only ever produces ErrData; the remaining kinds exist so a hardware
// backed provider can reuse the same taxonomy.
type SensorError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *SensorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match on a bare kind sentinel.
func (e *SensorError) Is(target error) bool {
	t, ok := target.(*SensorError)
	return ok && t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func NewNotAvailable(msg string) *SensorError {
	return &SensorError{Kind: ErrNotAvailable, Message: msg}
}

func NewPermissionDenied(msg string) *SensorError {
	return &SensorError{Kind: ErrPermissionDenied, Message: msg}
}

func NewHardwareError(msg string) *SensorError {
	return &SensorError{Kind: ErrHardware, Message: msg}
}

func NewPluginError(msg string) *SensorError {
	return &SensorError{Kind: ErrPlugin, Message: msg}
}

func NewDataError(msg string) *SensorError {
	return &SensorError{Kind: ErrData, Message: msg}
}
