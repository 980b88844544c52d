// Package config loads runtime configuration for the studygroups client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment: a dotenv file (-e/-env, or ./.env) loaded with godotenv,
//     then STUDYGROUPS_* variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-d string   local database path
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://groups.inst.edu",
//	  "db_path": "~/.studygroups/client.db",
//	  "request_timeout": "30s",
//	  "requests_per_second": 5,
//	  "log_backend": "zap",
//	  "log_level": "info",
//	  "page_size": 10,
//	  "email_domain": "inst.edu",
//	  "code_length": 6,
//	  "countdown": "3m"
//	}
//
// # Environment
//
//	STUDYGROUPS_API_URL, STUDYGROUPS_DB_PATH, STUDYGROUPS_REQUEST_TIMEOUT,
//	STUDYGROUPS_REQUESTS_PER_SECOND, STUDYGROUPS_STORE_PASSPHRASE,
//	STUDYGROUPS_LOG_BACKEND, STUDYGROUPS_LOG_LEVEL, STUDYGROUPS_EMAIL_DOMAIN,
//	STUDYGROUPS_PAGE_SIZE, STUDYGROUPS_COUNTDOWN
package config
