// Package config loads the engine's tunable timing and sizing
// parameters, the way deviceid.go loads tocalls.yaml: an optional YAML
// file layered over documented defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable named in spec.md §6.
type Config struct {
	OwnAddress uint8 `yaml:"own_address"`

	DataAvailDelayMillis    uint32 `yaml:"data_avail_delay_ms"`
	ReceivePurgeDelayMillis uint32 `yaml:"receive_purge_delay_ms"`
	SendPurgeDelayMillis    uint32 `yaml:"send_purge_delay_ms"`
	CacheDiscardDelayMillis uint32 `yaml:"cache_discard_delay_ms"`
	MinDeviceResetDelayMs   uint32 `yaml:"min_device_reset_delay_ms"`

	AutoSleepEnabled bool `yaml:"auto_sleep_enabled"`
	SnifMode         bool `yaml:"snif_mode"`
	EmissionPowerHi  bool `yaml:"emission_power_hi"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the parameter set documented in spec.md §6.
func Default() Config {
	return Config{
		OwnAddress:              0,
		DataAvailDelayMillis:    900,
		ReceivePurgeDelayMillis: 1000,
		SendPurgeDelayMillis:    1000,
		CacheDiscardDelayMillis: 176_400_000,
		MinDeviceResetDelayMs:   1000,
		AutoSleepEnabled:        false,
		SnifMode:                false,
		EmissionPowerHi:         false,
		LogLevel:                "info",
	}
}

// LoadFile reads path and overlays it onto Default(). A missing file
// is not an error - Default() alone is a complete, valid configuration.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
