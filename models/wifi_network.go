package models

// WifiNetwork describes one access point seen in a scan.
type WifiNetwork struct {
	SSID           string `json:"ssid"`
	BSSID          string `json:"bssid"`           // MAC address of the AP
	SignalStrength int    `json:"signal_strength"` // dBm, typically -100..0
	Frequency      int    `json:"frequency"`       // MHz, e.g. 2412, 5180
	Security       string `json:"security"`        // "WPA2", "WPA3", "Open", …
}

func (WifiNetwork) CSVHeader() []string {
	return []string{"ssid", "bssid", "signal_strength", "frequency", "security"}
}

func (w *WifiNetwork) CSVRow() []string {
	return []string{
		w.SSID, w.BSSID, itoa(w.SignalStrength), itoa(w.Frequency), w.Security,
	}
}
