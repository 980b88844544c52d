package config

import "time"

// Config holds runtime settings for the studygroups client.
//
// Units: RequestTimeout and Countdown are time.Duration; Countdown is
// rounded down to whole seconds for the resend window.
type Config struct {
	APIBaseURL        string
	DBPath            string
	RequestTimeout    time.Duration
	RequestsPerSecond float64

	// StorePassphrase seals the stored token when non-empty.
	StorePassphrase string

	LogBackend string
	LogLevel   string

	PageSize    int
	EmailDomain string
	CodeLength  int
	Countdown   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DBPath = "~/.studygroups/client.db"
	c.RequestTimeout = 30 * time.Second
	c.RequestsPerSecond = 5
	c.LogBackend = "slog"
	c.LogLevel = "warn"
	c.PageSize = 10
	c.EmailDomain = "inst.edu"
	c.CodeLength = 6
	c.Countdown = 180 * time.Second
}

// CountdownSeconds is the resend window in one-second ticks.
func (c *Config) CountdownSeconds() int {
	return int(c.Countdown / time.Second)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (.env included) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
