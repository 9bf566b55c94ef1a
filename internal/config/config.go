// Package config handles configuration for GPAVault: defaults, an optional
// JSON overlay, and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: filesystem path of the SQLite database.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Override the
//     development default in any real deployment.
//   - SessionTokenValidity: how long an issued session token verifies.
type Config struct {
	DatabasePath         string
	SecretKey            string
	SessionTokenValidity time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gpavault.db"
	c.SecretKey = "secretKey"
	c.SessionTokenValidity = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
