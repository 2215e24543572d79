// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before defaults are resolved.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote blocks API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local identity storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the client writes its JSON logs.
	// Defaults to <storage dir>/blockcal.log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the remote blocks API.
type Adapter struct {
	// HTTPAddress is the API base URL, e.g.
	// "https://example.execute-api.us-east-2.amazonaws.com/dev".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single API request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxParallel limits how many day requests a month refresh keeps in
	// flight at once.
	// Env: ADAPTER_MAX_PARALLEL
	MaxParallel int `env:"MAX_PARALLEL"`
}

// Storage holds the local identity storage settings.
type Storage struct {
	// Backend selects the key-value backend: "sqlite" or "diskv".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the client data directory. "~" is expanded.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// DB holds the sqlite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the sqlite backend settings.
type DB struct {
	// DSN is the sqlite database path. Defaults to <dir>/blockcal.db.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background refresh settings.
type Workers struct {
	// RefreshCron is the cron spec of the periodic month refresh
	// (e.g. "@every 5m", "*/10 * * * *"). "off" disables the refresh.
	// Env: WORKERS_REFRESH_CRON
	RefreshCron string `env:"REFRESH_CRON"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultMaxParallel    = 31
	DefaultBackend        = BackendSQLite
	DefaultDir            = "~/.blockcal"
	DefaultRefreshCron    = "@every 5m"

	// RefreshOff disables the periodic month refresh.
	RefreshOff = "off"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxParallel:    DefaultMaxParallel,
		},
		Storage: Storage{
			Backend: DefaultBackend,
			Dir:     DefaultDir,
		},
		Workers: Workers{
			RefreshCron: DefaultRefreshCron,
		},
	}
}
