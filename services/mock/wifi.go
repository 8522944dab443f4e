package mock

import "sensor-core/models"

// WifiNetworks returns a fixed scan result of three access points with
// distinct signal strengths, in scan order (not sorted).
func WifiNetworks() []models.WifiNetwork {
	return []models.WifiNetwork{
		{
			SSID:           "MyHomeWiFi",
			BSSID:          "00:11:22:33:44:55",
			SignalStrength: -45,
			Frequency:      2412,
			Security:       "WPA2",
		},
		{
			SSID:           "Neighbor_5G",
			BSSID:          "AA:BB:CC:DD:EE:FF",
			SignalStrength: -68,
			Frequency:      5180,
			Security:       "WPA3",
		},
		{
			SSID:           "CoffeeShop-Guest",
			BSSID:          "11:22:33:44:55:66",
			SignalStrength: -52,
			Frequency:      2437,
			Security:       "Open",
		},
	}
}
