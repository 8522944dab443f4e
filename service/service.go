// Package service holds the stateless operations over sensor records:
// range validation, display formatting and a couple of scalar
// calculations. Every method is safe to call from any goroutine since
// the service carries no state.
package service

// SensorService validates, formats and derives values from sensor
// readings. The zero value is ready to use.
type SensorService struct{}

// NewSensorService returns a ready-to-use service.
func NewSensorService() *SensorService {
	return &SensorService{}
}
