// Package config loads the emulator's JSON configuration. Values missing from
// the file keep their defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tomgalvin.uk/hp82240/internal/paper"
)

const configName = "config.json"

type Config struct {
	Paper    paper.Geometry `json:"paper"`
	Server   Server         `json:"server"`
	Printer  Printer        `json:"printer"`
	Journal  Journal        `json:"journal"`
	LogLevel slog.Level     `json:"logLevel"`
}

type Server struct {
	Addr string `json:"addr"`
}

// Printer is the bluetooth printer used for hardcopies.
type Printer struct {
	// Name is the advertised bluetooth name. Empty disables hardcopies.
	Name string `json:"name"`
	// Intensity is the laser intensity, 1 (low) to 4 (high).
	Intensity      int `json:"intensity"`
	TimeoutSeconds int `json:"timeoutSeconds"`
}

type Journal struct {
	// Path of the sqlite database. Empty keeps print jobs in memory only.
	Path string `json:"path"`
}

func Default() Config {
	return Config{
		Paper: paper.DefaultGeometry(),
		Server: Server{
			Addr: ":8080",
		},
		Printer: Printer{
			Intensity:      1,
			TimeoutSeconds: 30,
		},
		LogLevel: slog.LevelInfo,
	}
}

// DefaultPath is config.json in the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("Couldn't find configuration directory:\n%w", err)
	}
	return filepath.Join(dir, "hp82240", configName), nil
}

// Load reads the configuration at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("Couldn't read config file:\n%w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("Couldn't parse config file %s:\n%w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("Invalid config file %s:\n%w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := c.Paper.Validate(); err != nil {
		return err
	}
	if c.Printer.Intensity < 1 || c.Printer.Intensity > 4 {
		return fmt.Errorf("Printer intensity must be between 1 and 4, got %d", c.Printer.Intensity)
	}
	if c.Printer.TimeoutSeconds <= 0 {
		return fmt.Errorf("Printer timeout must be positive, got %d", c.Printer.TimeoutSeconds)
	}
	return nil
}

// Save writes the configuration to path, creating its directory if needed.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Couldn't create config directory:\n%w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Couldn't write config file:\n%w", err)
	}
	return nil
}
