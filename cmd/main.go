package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sensor-core/models"
	"sensor-core/service"
	"sensor-core/services/mock"
	"sensor-core/utils"
	"sensor-core/views"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "optional path to demo.yaml")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	flag.Parse()

	// ── Config ───────────────────────────────────────────────────────
	cfg := utils.DefaultDemoConfig()
	if *configPath != "" {
		loaded, err := utils.LoadDemoConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logFile == "" {
		*logFile = cfg.Logging.File
	}

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.ParseLogLevel(cfg.Logging.Level), *logFile)
	defer logger.Close()

	utils.L().Info("═══════════════════════════════════════════")
	utils.L().Info("  sensor-core  ·  Mobile Sensor Demo")
	utils.L().Info("═══════════════════════════════════════════")

	svc := service.NewSensorService()

	// ── 1. Accelerometer ─────────────────────────────────────────────
	accel := pickAccelerometer(cfg.Scenario.Accelerometer)
	utils.L().Info("1. Accelerometer (%s)", cfg.Scenario.Accelerometer)
	utils.L().Info("   raw: X=%g Y=%g Z=%g", accel.X, accel.Y, accel.Z)
	utils.L().Info("   formatted: %s", svc.FormatAccelerometer(&accel))
	utils.L().Info("   magnitude: %.2f m/s²", svc.AccelerationMagnitude(&accel))
	reportValidation(svc.ValidateAccelerometer(&accel))

	// ── 2. Magnetometer ──────────────────────────────────────────────
	mag := pickMagnetometer(cfg.Scenario.Magnetometer)
	utils.L().Info("2. Magnetometer (%s)", cfg.Scenario.Magnetometer)
	utils.L().Info("   raw: X=%g Y=%g Z=%g", mag.X, mag.Y, mag.Z)
	heading := models.CalculateHeading(mag.X, mag.Y)
	utils.L().Info("   calculated heading: %.1f° (%s)", heading, models.CardinalDirection(heading))
	utils.L().Info("   formatted: %s", svc.FormatHeading(&mag))

	// ── 3. GPS ───────────────────────────────────────────────────────
	gps := pickGPS(cfg.Scenario.GPS)
	utils.L().Info("3. GPS (%s)", cfg.Scenario.GPS)
	utils.L().Info("   location: %g, %g", gps.Latitude, gps.Longitude)
	utils.L().Info("   formatted: %s", svc.FormatGPS(&gps))
	reportValidation(svc.ValidateGPS(&gps))
	if gps.Altitude != nil {
		utils.L().Info("   altitude: %g m", *gps.Altitude)
	}
	utils.L().Info("   accuracy: ±%g m", gps.Accuracy)

	// ── 4. Pressure ──────────────────────────────────────────────────
	pressure := pickPressure(cfg.Scenario.Pressure)
	utils.L().Info("4. Pressure (%s)", cfg.Scenario.Pressure)
	utils.L().Info("   formatted: %s", svc.FormatPressure(&pressure))
	reportValidation(svc.ValidatePressure(&pressure))

	// ── 5. Temperature ───────────────────────────────────────────────
	temp := pickTemperature(cfg.Scenario.Temperature)
	utils.L().Info("5. Temperature (%s)", cfg.Scenario.Temperature)
	utils.L().Info("   formatted: %s", svc.FormatTemperature(&temp))
	reportValidation(svc.ValidateTemperature(&temp))

	// ── 6. WiFi scan ─────────────────────────────────────────────────
	networks := mock.WifiNetworks()
	utils.L().Info("6. WiFi scan: found %d networks", len(networks))
	svc.SortWifiBySignal(networks)
	for i := range networks {
		utils.L().Info("   • %s", svc.FormatWifiNetwork(&networks[i]))
	}

	// ── 7. JSON serialization ────────────────────────────────────────
	encode := views.EncodeJSON
	if cfg.Export.JSONIndent {
		encode = views.EncodeJSONIndent
	}
	jsonBytes, err := encode(&accel)
	if err != nil {
		utils.L().Fatal("encode accelerometer: %v", err)
	}
	utils.L().Info("7. Accelerometer as JSON:\n%s", jsonBytes)

	// ── 8. Error handling ────────────────────────────────────────────
	invalid := models.AccelerometerData{X: 100.0, Accuracy: 3}
	if err := svc.ValidateAccelerometer(&invalid); err != nil {
		utils.L().Info("8. Caught expected error: %v", err)
	} else {
		utils.L().Warn("8. expected a validation error, got none")
	}

	// ── Optional session export ──────────────────────────────────────
	if cfg.Export.Enabled {
		dir, err := exportSession(cfg, &accel, &mag, &gps, &pressure, &temp, networks)
		if err != nil {
			utils.L().Fatal("export session: %v", err)
		}
		utils.L().Info("session exported to %s", dir)
	}

	fmt.Println("\n✓ sensor-core demo finished")
}

func reportValidation(err error) {
	if err != nil {
		utils.L().Warn("   ✗ %v", err)
		return
	}
	utils.L().Info("   ✓ data is valid")
}

// ─── scenario pickers ───────────────────────────────────────────────────

func pickAccelerometer(scenario string) models.AccelerometerData {
	if scenario == "shaking" {
		return mock.AccelerometerShaking()
	}
	return mock.AccelerometerAtRest()
}

func pickMagnetometer(scenario string) models.MagnetometerData {
	if scenario == "north" {
		return mock.MagnetometerNorth()
	}
	return mock.MagnetometerSouthwest()
}

func pickGPS(scenario string) models.GpsData {
	if scenario == "moving" {
		return mock.GPSMoving()
	}
	return mock.GPSSanFrancisco()
}

func pickPressure(scenario string) models.PressureData {
	if scenario == "altitude" {
		return mock.PressureAltitude()
	}
	return mock.PressureSeaLevel()
}

func pickTemperature(scenario string) models.TemperatureData {
	if scenario == "hot" {
		return mock.TemperatureHot()
	}
	return mock.TemperatureComfortable()
}

// exportSession writes one snapshot CSV row, a JSON-lines file of every
// reading, and a wifi scan CSV into a fresh session directory.
func exportSession(
	cfg *utils.DemoConfig,
	accel *models.AccelerometerData,
	mag *models.MagnetometerData,
	gps *models.GpsData,
	pressure *models.PressureData,
	temp *models.TemperatureData,
	networks []models.WifiNetwork,
) (string, error) {
	sessionDir := filepath.Join(cfg.Export.BaseDir, utils.SessionName(cfg.Export.SessionPrefix))
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}

	bufSize := cfg.Export.CSV.BufferSizeKB * 1024

	snap := models.Snapshot{
		TimestampMs:   utils.NowMillis(),
		Accelerometer: accel,
		Magnetometer:  mag,
		GPS:           gps,
		Pressure:      pressure,
		Temperature:   temp,
	}

	snapWriter, err := views.NewCSVWriter(
		filepath.Join(sessionDir, "snapshot.csv"), bufSize, cfg.Export.CSV.WriteHeader,
		models.Snapshot{}.CSVHeader(),
	)
	if err != nil {
		return "", err
	}
	snapWriter.WriteRecord(&snap)
	snapWriter.Close()

	wifiWriter, err := views.NewCSVWriter(
		filepath.Join(sessionDir, "wifi.csv"), bufSize, cfg.Export.CSV.WriteHeader,
		models.WifiNetwork{}.CSVHeader(),
	)
	if err != nil {
		return "", err
	}
	for i := range networks {
		wifiWriter.WriteRecord(&networks[i])
	}
	wifiWriter.Close()

	jsonWriter, err := views.NewJSONWriter(filepath.Join(sessionDir, "readings.jsonl"), bufSize)
	if err != nil {
		return "", err
	}
	defer jsonWriter.Close()
	for _, rec := range []any{accel, mag, gps, pressure, temp} {
		if err := jsonWriter.WriteRecord(rec); err != nil {
			return "", err
		}
	}
	for i := range networks {
		if err := jsonWriter.WriteRecord(&networks[i]); err != nil {
			return "", err
		}
	}

	return sessionDir, nil
}
