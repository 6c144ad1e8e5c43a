package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Version is the errboard release version.
const Version = "0.4.0"

// EnvPrefix prefixes every environment variable, e.g. ERRBOARD_SOURCE_PATH.
const EnvPrefix = "ERRBOARD"

// Config holds all errboard configuration.
type Config struct {
	Mode    string        `mapstructure:"mode"` // "serve" or "export"
	Source  SourceConfig  `mapstructure:"source"`
	Columns ColumnsConfig `mapstructure:"columns"`
	Server  ServerConfig  `mapstructure:"server"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// SourceConfig describes where events are read from.
type SourceConfig struct {
	Provider  string        `mapstructure:"provider"` // "auto", "xlsx", "csv", "ndjson"
	Path      string        `mapstructure:"path"`
	Sheet     string        `mapstructure:"sheet"`
	Delimiter string        `mapstructure:"delimiter"`
	Timezone  string        `mapstructure:"timezone"`
	Watch     bool          `mapstructure:"watch"`
	Debounce  time.Duration `mapstructure:"debounce"`
}

// ColumnsConfig maps event fields to source column headers.
type ColumnsConfig struct {
	Timestamp    string `mapstructure:"timestamp"`
	Severity     string `mapstructure:"severity"`
	Source       string `mapstructure:"source"`
	TaskCategory string `mapstructure:"task_category"`
	ProcessID    string `mapstructure:"process_id"`
	EventID      string `mapstructure:"event_id"`
}

// ServerConfig holds HTTP settings. Basic auth is enabled when User is set.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	User            string        `mapstructure:"user"`
	PasswordHash    string        `mapstructure:"password_hash"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// OutputConfig holds export destination settings.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "stdout" or "file"
	Path   string `mapstructure:"path"`
	Pretty bool   `mapstructure:"pretty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var defaults = map[string]any{
	"mode":                    "serve",
	"source.provider":         "auto",
	"source.path":             "eventos.xlsx",
	"source.sheet":            "",
	"source.delimiter":        "",
	"source.timezone":         "UTC",
	"source.watch":            false,
	"source.debounce":         "500ms",
	"columns.timestamp":       "Data y hora",
	"columns.severity":        "Nível",
	"columns.source":          "Fuente",
	"columns.task_category":   "Categoria da Tarea",
	"columns.process_id":      "Identificación de procesos",
	"columns.event_id":        "Identificación de eventos",
	"server.addr":             ":8050",
	"server.user":             "",
	"server.password_hash":    "",
	"server.shutdown_timeout": "10s",
	"output.format":           "stdout",
	"output.path":             "",
	"output.pretty":           false,
	"log.level":               "info",
}

// Load reads configuration from a .env file, an optional config file named
// by ERRBOARD_CONFIG, and ERRBOARD_* environment variables, in increasing
// order of precedence over the defaults.
func Load() (Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	switch c.Mode {
	case "serve", "export":
	default:
		errs = append(errs, fmt.Errorf("mode must be \"serve\" or \"export\", got %q", c.Mode))
	}

	if c.Source.Path == "" {
		errs = append(errs, errors.New("source path is required (ERRBOARD_SOURCE_PATH)"))
	}
	switch c.Source.Provider {
	case "", "auto", "xlsx", "csv", "ndjson":
	default:
		errs = append(errs, fmt.Errorf("unknown source provider %q", c.Source.Provider))
	}
	if _, err := time.LoadLocation(c.Source.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("source timezone: %w", err))
	}
	if c.Source.Debounce < 0 {
		errs = append(errs, fmt.Errorf("source debounce must be >= 0, got %v", c.Source.Debounce))
	}
	if len([]rune(c.Source.Delimiter)) > 1 {
		errs = append(errs, fmt.Errorf("source delimiter must be a single character, got %q", c.Source.Delimiter))
	}

	for name, col := range map[string]string{
		"timestamp":     c.Columns.Timestamp,
		"severity":      c.Columns.Severity,
		"source":        c.Columns.Source,
		"task_category": c.Columns.TaskCategory,
		"process_id":    c.Columns.ProcessID,
		"event_id":      c.Columns.EventID,
	} {
		if strings.TrimSpace(col) == "" {
			errs = append(errs, fmt.Errorf("column for %s must not be empty", name))
		}
	}

	if c.Mode == "serve" {
		if c.Server.Addr == "" {
			errs = append(errs, errors.New("server addr is required in serve mode"))
		}
		if c.Server.ShutdownTimeout <= 0 {
			errs = append(errs, fmt.Errorf("server shutdown timeout must be > 0, got %v", c.Server.ShutdownTimeout))
		}
		if c.Server.User != "" {
			if c.Server.PasswordHash == "" {
				errs = append(errs, errors.New("server password hash is required when a user is set"))
			} else if _, err := bcrypt.Cost([]byte(c.Server.PasswordHash)); err != nil {
				errs = append(errs, fmt.Errorf("server password hash: %w", err))
			}
		}
	}

	if c.Mode == "export" {
		switch c.Output.Format {
		case "stdout":
		case "file":
			if c.Output.Path == "" {
				errs = append(errs, errors.New("output path is required for file output"))
			}
		default:
			errs = append(errs, fmt.Errorf("output format must be \"stdout\" or \"file\", got %q", c.Output.Format))
		}
	}

	return errors.Join(errs...)
}

// Location returns the configured source timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Source.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
