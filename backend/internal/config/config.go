// Package config загружает конфигурацию сервера сканера из YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elite-scanner/backend/internal/scanner"
)

type ServerConfig struct {
	ListenAddr       string `yaml:"listen_addr"`
	UpdateIntervalMs int    `yaml:"update_interval_ms"`
	PingIntervalSec  int    `yaml:"ping_interval_sec"`
}

type ScannerConfig struct {
	MaxRange            float64 `yaml:"max_range"`
	DisplayRadius       float64 `yaml:"display_radius"`
	OrientationRelative bool    `yaml:"orientation_relative"`
	HeightScale         float64 `yaml:"height_scale"`
}

type SweepConfig struct {
	SweepRPM   float64 `yaml:"sweep_rpm"`
	DisplayRPM float64 `yaml:"display_rpm"`
}

type SimulatorConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ContactCount   int     `yaml:"contact_count"`
	Seed           uint64  `yaml:"seed"`
	Jitter         float64 `yaml:"jitter"`
	TickIntervalMs int     `yaml:"tick_interval_ms"`
}

type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config - корневая структура scanner.yaml
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scanner   ScannerConfig   `yaml:"scanner"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:       ":8080",
			UpdateIntervalMs: 50,
			PingIntervalSec:  2,
		},
		Scanner: ScannerConfig{
			MaxRange:      1000,
			DisplayRadius: 5,
			HeightScale:   0.5,
		},
		Sweep: SweepConfig{
			SweepRPM:   scanner.DefaultSweepRPM,
			DisplayRPM: scanner.DefaultDisplayRPM,
		},
		Simulator: SimulatorConfig{
			Enabled:        true,
			ContactCount:   24,
			Seed:           1,
			TickIntervalMs: 200,
		},
		Telemetry: TelemetryConfig{Enabled: true},
	}
}

// Load читает конфигурацию из файла. Пустой путь или отсутствующий
// файл дают конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read scanner config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scanner config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет конфигурацию; проверка параметров проекции
// делегируется ядру сканера
func (c *Config) Validate() error {
	if err := c.ScannerConfig().Validate(); err != nil {
		return err
	}
	if c.Server.UpdateIntervalMs <= 0 {
		return fmt.Errorf("update_interval_ms must be positive, got %d", c.Server.UpdateIntervalMs)
	}
	if c.Simulator.Enabled && c.Simulator.ContactCount < 0 {
		return fmt.Errorf("contact_count must not be negative, got %d", c.Simulator.ContactCount)
	}
	return nil
}

// ScannerConfig собирает конфигурацию ядра проекции
func (c *Config) ScannerConfig() scanner.Config {
	return scanner.Config{
		MaxRange:            c.Scanner.MaxRange,
		DisplayRadius:       c.Scanner.DisplayRadius,
		OrientationRelative: c.Scanner.OrientationRelative,
		HeightScale:         c.Scanner.HeightScale,
	}
}
