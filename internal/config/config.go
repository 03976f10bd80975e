package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/keepfocus/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "keepfocus.json"

	// DefaultPort is the default playground server port.
	DefaultPort = 7070

	// DefaultHost is the default playground server host.
	DefaultHost = "localhost"

	// DefaultMaxMessageBytes bounds request bodies and websocket messages.
	DefaultMaxMessageBytes = 1 << 20

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace prefixes metric names.
	DefaultNamespace = "keepfocus"
)

// Config represents keepfocus.json.
type Config struct {
	Log     LogConfig     `json:"log"`
	Server  ServerConfig  `json:"server"`
	Metrics MetricsConfig `json:"metrics"`
	Tracing TracingConfig `json:"tracing"`
	Journal JournalConfig `json:"journal"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures the root logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// ServerConfig configures the playground server.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// ReadTimeout and WriteTimeout are Go durations, e.g. "10s".
	ReadTimeout  string `json:"readTimeout,omitempty"`
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// MaxMessageBytes bounds POST bodies and websocket messages.
	MaxMessageBytes int64 `json:"maxMessageBytes,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace,omitempty"`
	Path      string `json:"path,omitempty"`
}

// TracingConfig configures OpenTelemetry spans.
type TracingConfig struct {
	Enabled    bool   `json:"enabled"`
	TracerName string `json:"tracerName,omitempty"`
}

// JournalConfig controls whether mutation journals are returned.
type JournalConfig struct {
	Enabled bool `json:"enabled"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ReadTimeout:     "10s",
			WriteTimeout:    "10s",
			MaxMessageBytes: DefaultMaxMessageBytes,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			TracerName: "keepfocus",
		},
	}
}

// Load reads keepfocus.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from path and validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run without --config to use the defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}
	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	def := New()

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}

	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if c.Server.MaxMessageBytes <= 0 {
		c.Server.MaxMessageBytes = def.Server.MaxMessageBytes
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = def.Metrics.Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = def.Tracing.TracerName
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E121").WithDetail("Unknown log level " + strconv.Quote(c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E120").
			WithDetail("Unknown log format " + strconv.Quote(c.Log.Format)).
			WithSuggestion(`Use "text" or "json"`)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").WithDetail("Port must be between 0 and 65535")
	}
	for _, d := range []string{c.Server.ReadTimeout, c.Server.WriteTimeout} {
		if d == "" {
			continue
		}
		if v, err := time.ParseDuration(d); err != nil || v < 0 {
			return errors.New("E123").WithDetail("Cannot use " + strconv.Quote(d) + " as a timeout")
		}
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E120").WithDetail("metrics.path must start with /")
	}
	return nil
}

// Address returns host:port for the playground server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ReadTimeout returns the parsed read timeout, or zero if unset.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout)
}

// WriteTimeout returns the parsed write timeout, or zero if unset.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout)
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
