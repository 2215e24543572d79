// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// validate checks that the resolved [ClientConfig] can be used at startup.
func (cfg *ClientConfig) validate() error {
	if err := validateAddress(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.MaxParallel <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
			return ErrInvalidStorageConfigs
		}
	case BackendDiskv:
		if cfg.Storage.Dir == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if spec := cfg.Workers.RefreshCron; spec != RefreshOff {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWorkerConfigs, err)
		}
	}

	return nil
}

// RefreshEnabled reports whether the periodic month refresh should run.
func (cfg *ClientConfig) RefreshEnabled() bool {
	return cfg.Workers.RefreshEnabled()
}

// RefreshEnabled reports whether a refresh schedule is configured.
func (w ClientWorkers) RefreshEnabled() bool {
	return w.RefreshCron != "" && w.RefreshCron != RefreshOff
}

func validateAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http", "https", "file":
		return nil
	default:
		return fmt.Errorf("unsupported address scheme %q", u.Scheme)
	}
}
