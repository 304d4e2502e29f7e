package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"cardwall/log"
)

const (
	ConfigFileName = "config.json"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cardwall"), nil
}

// Config represents the application configuration
type Config struct {
	// FitSelector identifies elements opted in to fit-to-box sizing.
	FitSelector string `json:"fit_selector"`
	// FitMinPx is the default lower font-size bound for elements without
	// a data-fit-min override.
	FitMinPx int `json:"fit_min_px"`
	// FitMaxPx is the default upper font-size bound for elements without
	// a data-fit-max override.
	FitMaxPx int `json:"fit_max_px"`
	// GridSelector identifies card grid containers.
	GridSelector string `json:"grid_selector"`
	// CardSelector identifies flip cards inside a container.
	CardSelector string `json:"card_selector"`
	// FlipClass is the class toggled on a flipped card.
	FlipClass string `json:"flip_class"`
	// FontLoadDelayMs simulates asynchronous font loading in the demo.
	FontLoadDelayMs int `json:"font_load_delay_ms"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FitSelector:     `[data-fit-text="on"]`,
		FitMinPx:        12,
		FitMaxPx:        28,
		GridSelector:    "[data-card-grid]",
		CardSelector:    "[data-flip-card]",
		FlipClass:       "is-flipped",
		FontLoadDelayMs: 1500,
	}
}

// LoadConfig loads the configuration file, writing the defaults on first
// run. A .env file in the working directory and CW_* environment variables
// override individual fields.
func LoadConfig() *Config {
	cfg := loadConfigFile()
	applyEnvOverrides(cfg)
	return cfg
}

func loadConfigFile() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return &config
}

// applyEnvOverrides layers .env / environment overrides over cfg.
func applyEnvOverrides(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("CW_FIT_SELECTOR"); v != "" {
		cfg.FitSelector = v
	}
	if v := os.Getenv("CW_FIT_MIN_PX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FitMinPx = n
		}
	}
	if v := os.Getenv("CW_FIT_MAX_PX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FitMaxPx = n
		}
	}
	if v := os.Getenv("CW_GRID_SELECTOR"); v != "" {
		cfg.GridSelector = v
	}
	if v := os.Getenv("CW_CARD_SELECTOR"); v != "" {
		cfg.CardSelector = v
	}
	if v := os.Getenv("CW_FLIP_CLASS"); v != "" {
		cfg.FlipClass = v
	}
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
