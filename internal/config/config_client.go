package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
)

// ClientApp holds resolved process-level settings.
type ClientApp struct {
	// LogFile is the absolute log file path.
	LogFile string
}

// ClientAdapter holds the settings used by the API gateway client.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
	// MaxParallel limits concurrent day requests during a month refresh.
	MaxParallel int
}

// ClientDB contains the sqlite settings.
type ClientDB struct {
	// DSN is the sqlite database path.
	DSN string
}

// ClientStorage groups local identity storage settings.
type ClientStorage struct {
	// Backend is "sqlite" or "diskv".
	Backend string
	// Dir is the expanded client data directory.
	Dir string
	// DB holds sqlite settings.
	DB ClientDB
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RefreshCron is the month refresh schedule; "off" disables it.
	RefreshCron string
}

// ClientConfig is the fully resolved client configuration.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads and merges every configuration source, resolves
// derived paths and validates the result. flags may be nil when the caller
// has no command line.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg, err := newClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dir, err := homedir.Expand(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: expand data dir: %v", ErrInvalidStorageConfigs, err)
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" && dir != "" {
		dsn = filepath.Join(dir, "blockcal.db")
	}
	if dsn, err = homedir.Expand(dsn); err != nil {
		return nil, fmt.Errorf("%w: expand dsn: %v", ErrInvalidStorageConfigs, err)
	}

	logFile := cfg.App.LogFile
	if logFile == "" && dir != "" {
		logFile = filepath.Join(dir, "blockcal.log")
	}
	if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, fmt.Errorf("expand log file: %w", err)
	}

	return &ClientConfig{
		App: ClientApp{
			LogFile: logFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxParallel:    cfg.Adapter.MaxParallel,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			Dir:     dir,
			DB:      ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{
			RefreshCron: cfg.Workers.RefreshCron,
		},
	}, nil
}
