package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	EnvPort     = "CONTACT_VALIDATOR_PORT"
	EnvLogLevel = "CONTACT_VALIDATOR_LOG_LEVEL"
)

type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port" validate:"min=1,max=65535"`
	Prefix          string   `toml:"prefix" yaml:"prefix" validate:"omitempty,startswith=/"`
	BodyLimit       int      `toml:"body_limit" yaml:"body_limit" validate:"min=0"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowOrigins    []string `toml:"origins" yaml:"origins"`
}

type LogConfig struct {
	Level      string `toml:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	FilePath   string `toml:"file" yaml:"file"`
	MaxSize    int    `toml:"max_size" yaml:"max_size" validate:"min=0"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups" validate:"min=0"`
	MaxAge     int    `toml:"max_age" yaml:"max_age" validate:"min=0"`
	Compress   bool   `toml:"compress" yaml:"compress"`
	Console    bool   `toml:"console" yaml:"console"`
	// Redact masks emails and phone numbers in request logs
	Redact bool `toml:"redact" yaml:"redact"`
}

// Duration reads "5s" style strings from both TOML and YAML files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            7071,
			Prefix:          "/api",
			BodyLimit:       64 * 1024,
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
			AllowOrigins:    []string{"*"},
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
			Console:    true,
			Redact:     true,
		},
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// LoadConfig reads path on top of Default. The decoder is picked by file
// extension; anything other than .yaml/.yml is read as TOML.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(file, cfg)
		default:
			err = toml.Unmarshal(file, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	return nil
}
