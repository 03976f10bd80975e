package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/vango-dev/keepfocus/internal/config"
)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Address is the listen address. Default: "localhost:7070".
	Address string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration

	// MaxMessageBytes bounds POST bodies and websocket messages.
	MaxMessageBytes int64

	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates websocket origins. Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Journal includes the mutation list in every /v1/patch response.
	Journal bool

	// MetricsPath is where the metrics handler is mounted.
	MetricsPath string
}

// DefaultServerConfig returns a ServerConfig with defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           config.DefaultHost + ":7070",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		MaxMessageBytes:   config.DefaultMaxMessageBytes,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       SameOriginCheck,
		MetricsPath:       config.DefaultMetricsPath,
	}
}

// ConfigFrom maps keepfocus.json onto a ServerConfig.
func ConfigFrom(cfg *config.Config) *ServerConfig {
	sc := DefaultServerConfig()
	sc.Address = cfg.Address()
	if d := cfg.ReadTimeout(); d > 0 {
		sc.ReadTimeout = d
	}
	if d := cfg.WriteTimeout(); d > 0 {
		sc.WriteTimeout = d
	}
	if cfg.Server.MaxMessageBytes > 0 {
		sc.MaxMessageBytes = cfg.Server.MaxMessageBytes
	}
	sc.Journal = cfg.Journal.Enabled
	if cfg.Metrics.Path != "" {
		sc.MetricsPath = cfg.Metrics.Path
	}
	return sc
}

// fillDefaults sets every zero field to its default.
func (c *ServerConfig) fillDefaults() {
	def := DefaultServerConfig()
	if c.Address == "" {
		c.Address = def.Address
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = def.ReadHeaderTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = def.ShutdownTimeout
	}
	if c.MaxMessageBytes <= 0 {
		c.MaxMessageBytes = def.MaxMessageBytes
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = def.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = def.WriteBufferSize
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = def.CheckOrigin
	}
	if c.MetricsPath == "" {
		c.MetricsPath = def.MetricsPath
	}
}

// SameOriginCheck accepts requests without an Origin header and requests
// whose Origin host matches the Host header.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
