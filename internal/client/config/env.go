package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the client reads.
const EnvPrefix = "STUDYGROUPS_"

// parseEnv loads a dotenv file into the process environment and overlays
// Config with STUDYGROUPS_* variables. The file is the one named by -e/-env,
// or ./.env when present. Variables already set win over the file.
// Malformed values panic.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup := func(name string) (string, bool) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		return v, ok && v != ""
	}

	if v, ok := lookup("API_URL"); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := lookup("STORE_PASSPHRASE"); ok {
		cfg.StorePassphrase = v
	}
	if v, ok := lookup("LOG_BACKEND"); ok {
		cfg.LogBackend = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("EMAIL_DOMAIN"); ok {
		cfg.EmailDomain = v
	}
	if v, ok := lookup("REQUEST_TIMEOUT"); ok {
		cfg.RequestTimeout = mustDuration(v)
	}
	if v, ok := lookup("COUNTDOWN"); ok {
		cfg.Countdown = mustDuration(v)
	}
	if v, ok := lookup("REQUESTS_PER_SECOND"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RequestsPerSecond = f
	}
	if v, ok := lookup("PAGE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.PageSize = n
	}
}

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
