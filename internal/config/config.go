package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives the clinfo and clbench tools. Everything has a usable default
// so the tools run without a config file at all.
type Config struct {
	Logger struct {
		Verbosity string `yaml:"verbosity"`
	} `yaml:"logger"`
	Platform struct {
		// Index selects a platform by enumeration order; -1 means the
		// first platform with a matching device.
		Index int `yaml:"index"`
	} `yaml:"platform"`
	Device struct {
		// Type is one of "cpu", "gpu", "accelerator", "default",
		// "custom" or "all".
		Type string `yaml:"type"`
	} `yaml:"device"`
	Bench struct {
		// Sizes are the vector lengths (SAXPY) and square matrix orders
		// (matmul) to benchmark.
		Sizes       []int         `yaml:"sizes"`
		Repetitions int           `yaml:"repetitions"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"bench"`
	Metrics struct {
		// ListenAddress exposes Prometheus metrics when non-empty.
		ListenAddress string `yaml:"listenAddress"`
	} `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Logger.Verbosity = "info"
	cfg.Platform.Index = -1
	cfg.Device.Type = "all"
	cfg.Bench.Sizes = []int{256, 1024, 4096}
	cfg.Bench.Repetitions = 5
	cfg.Bench.Timeout = 2 * time.Minute
	cfg.Metrics.ListenAddress = "127.0.0.1:9185"
	return cfg
}

// LoadConfig reads path over the defaults. An empty path returns the defaults
// unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, size := range c.Bench.Sizes {
		if size <= 0 {
			return fmt.Errorf("config: bench size must be positive, got %d", size)
		}
	}
	if c.Bench.Repetitions <= 0 {
		return fmt.Errorf("config: bench repetitions must be positive, got %d", c.Bench.Repetitions)
	}
	return nil
}
