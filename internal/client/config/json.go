package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studygroups/internal/flagx"
	"github.com/dmitrijs2005/studygroups/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they can be written as "30s" or as integer
// nanoseconds. Absent fields leave the current value untouched.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	DBPath            string         `json:"db_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	RequestsPerSecond *float64       `json:"requests_per_second"`
	StorePassphrase   string         `json:"store_passphrase"`
	LogBackend        string         `json:"log_backend"`
	LogLevel          string         `json:"log_level"`
	PageSize          int            `json:"page_size"`
	EmailDomain       string         `json:"email_domain"`
	CodeLength        int            `json:"code_length"`
	Countdown         timex.Duration `json:"countdown"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag it does nothing. Read or unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.StorePassphrase, jc.StorePassphrase)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.EmailDomain, jc.EmailDomain)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Countdown.Duration > 0 {
		cfg.Countdown = jc.Countdown.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.CodeLength > 0 {
		cfg.CodeLength = jc.CodeLength
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
