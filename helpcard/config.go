package helpcard

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alovak/helpcard/cardview"
)

// Config is a configuration for the helpcard application
type Config struct {
	HTTPAddr string `json:"http_addr"`
	LogLevel string `json:"log_level"`
	// ExpiryTZ is an IANA timezone name expiry instants are printed in (e.g., "Asia/Kolkata").
	// Calendar dates ("2025-03-07") print as given.
	ExpiryTZ string `json:"expiry_tz"`
	// AssetsDir, when set, is served under /assets/ (watermark and logo images).
	AssetsDir string            `json:"assets_dir"`
	Branding  cardview.Branding `json:"branding"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
		LogLevel: "info",
		Branding: cardview.DefaultBranding(),
	}
}

// LoadConfig reads a JSON config file over DefaultConfig and then applies
// HELPCARD_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := json.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("decoding config %s: %w", path, err)
		}
	}

	config.HTTPAddr = getenv("HELPCARD_HTTP_ADDR", config.HTTPAddr)
	config.LogLevel = getenv("HELPCARD_LOG_LEVEL", config.LogLevel)
	config.ExpiryTZ = getenv("HELPCARD_EXPIRY_TZ", config.ExpiryTZ)
	config.AssetsDir = getenv("HELPCARD_ASSETS_DIR", config.AssetsDir)

	return config, nil
}

// Location loads ExpiryTZ; an empty name is UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.ExpiryTZ == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.ExpiryTZ)
	if err != nil {
		return nil, fmt.Errorf("loading expiry timezone %q: %w", c.ExpiryTZ, err)
	}
	return loc, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
