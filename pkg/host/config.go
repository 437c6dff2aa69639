package host

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds host configuration, loaded from the environment.
type Config struct {
	// ComputeInput is the value fed to every capability object's
	// Compute during the invocation phase.
	ComputeInput int
	// HealthAddr is the listen address for liveness/readiness probes.
	HealthAddr string
	// PluginDir, when set, is scanned for loadable modules in addition
	// to any explicitly supplied paths.
	PluginDir string
	// StressWorkers sizes the worker pool of the stress harness.
	StressWorkers int
	// StressIterations is the number of Compute calls per stress run.
	StressIterations int
	// LogLevel is a logrus level name.
	LogLevel string
}

// LoadConfig reads configuration from PLUGIN_DYN_* environment
// variables, applying defaults and validating the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ComputeInput:     getEnvInt("PLUGIN_DYN_COMPUTE_INPUT", 7),
		HealthAddr:       getEnv("PLUGIN_DYN_HEALTH_ADDR", ":9402"),
		PluginDir:        getEnv("PLUGIN_DYN_PLUGIN_DIR", ""),
		StressWorkers:    getEnvInt("PLUGIN_DYN_STRESS_WORKERS", 4),
		StressIterations: getEnvInt("PLUGIN_DYN_STRESS_ITERATIONS", 1000),
		LogLevel:         getEnv("PLUGIN_DYN_LOG_LEVEL", "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("host: configuration invalid: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the host cannot run
// with.
func (c *Config) Validate() error {
	if c.StressWorkers < 1 {
		return fmt.Errorf("stress workers must be >= 1, got %d", c.StressWorkers)
	}
	if c.StressIterations < 1 {
		return fmt.Errorf("stress iterations must be >= 1, got %d", c.StressIterations)
	}
	if c.HealthAddr == "" {
		return fmt.Errorf("health listen address must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
