package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
)

// NewClientStorage initialises the configured [LocalStorage] backend.
//
// For sqlite it opens the database file at cfg.DB.DSN, creating it if
// needed, and runs the pending migrations. For diskv it uses cfg.Dir.
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (LocalStorage, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating local storage...")

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSettingsRepository(db, logger), nil
	case config.BackendDiskv:
		return NewDiskvStorage(cfg.Dir, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
