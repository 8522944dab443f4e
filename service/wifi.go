package service

import (
	"fmt"
	"sort"

	"sensor-core/models"
)

// SortWifiBySignal orders networks in place, strongest signal first
// (less negative dBm). The sort is stable so ties keep scan order.
func (s *SensorService) SortWifiBySignal(networks []models.WifiNetwork) {
	sort.SliceStable(networks, func(i, j int) bool {
		return networks[i].SignalStrength > networks[j].SignalStrength
	})
}

// SignalDescription maps an RSSI value to a coarse quality label.
// Thresholds are inclusive and checked strongest-first.
func (s *SensorService) SignalDescription(rssi int) string {
	switch {
	case rssi >= -50:
		return "Excellent"
	case rssi >= -60:
		return "Good"
	case rssi >= -70:
		return "Fair"
	default:
		return "Weak"
	}
}

// FormatWifiNetwork renders one scan entry,
// e.g. "MyHomeWiFi - Excellent (-45 dBm) - WPA2".
func (s *SensorService) FormatWifiNetwork(network *models.WifiNetwork) string {
	return fmt.Sprintf("%s - %s (%d dBm) - %s",
		network.SSID, s.SignalDescription(network.SignalStrength), network.SignalStrength, network.Security)
}
