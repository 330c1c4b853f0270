package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	Catalog     CatalogConfig   `toml:"catalog"`
	Pipeline    PipelineConfig  `toml:"pipeline"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// CatalogConfig points at optional overlay directories for reference data.
// The built-in catalog (signal rules, conflicts, theatres, alliances,
// scenario templates) is always loaded; overlay files extend it.
type CatalogConfig struct {
	ConflictsDir string `toml:"conflicts_dir"` // Directory of conflict definition files (TOML)
	ScenariosDir string `toml:"scenarios_dir"` // Directory of scenario template files (TOML)
}

// PipelineConfig controls the computation cycles
type PipelineConfig struct {
	Concurrency     int           `toml:"concurrency"`     // Worker pool size for per-entity tasks
	LookbackWindow  time.Duration `toml:"lookback_window"` // Event lookback for tension/heat inputs
	VelocityWindow  time.Duration `toml:"velocity_window"` // Window for velocity/instability inputs
	BucketSize      time.Duration `toml:"bucket_size"`     // Aggregation bucket width
	MaxEvidenceURLs int           `toml:"max_evidence_urls"`
}

// SchedulerConfig controls the cron cadence of the two cycles
type SchedulerConfig struct {
	Enabled             bool   `toml:"enabled"`
	AggregationSchedule string `toml:"aggregation_schedule"` // Cron schedule for the aggregation cycle
	StateSchedule       string `toml:"state_schedule"`       // Cron schedule for the state-update cycle
	RunOnStartup        bool   `toml:"run_on_startup"`       // Trigger both cycles once at startup
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in argus.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8090,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/argus",
				ResetOnStartup: false,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Catalog: CatalogConfig{
			ConflictsDir: "",
			ScenariosDir: "",
		},
		Pipeline: PipelineConfig{
			Concurrency:     8,
			LookbackWindow:  7 * 24 * time.Hour,
			VelocityWindow:  24 * time.Hour,
			BucketSize:      6 * time.Hour,
			MaxEvidenceURLs: 5,
		},
		Scheduler: SchedulerConfig{
			Enabled:             true,
			AggregationSchedule: "*/15 * * * *", // Every 15 minutes
			StateSchedule:       "*/30 * * * *", // Every 30 minutes
			RunOnStartup:        false,
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ARGUS_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("ARGUS_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ARGUS_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if path := os.Getenv("ARGUS_BADGER_PATH"); path != "" {
		config.Storage.Badger.Path = path
	}
	if level := os.Getenv("ARGUS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ValidateCycleSchedule validates a cron schedule expression
func ValidateCycleSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("schedule cannot be empty")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}

	return nil
}

// IsProduction returns true when running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
