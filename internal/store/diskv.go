package store

import (
	"context"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/MKhiriev/go-block-calendar/internal/logger"
)

type diskvStorage struct {
	d      *diskv.Diskv
	logger *logger.Logger
}

// NewDiskvStorage returns a [LocalStorage] keeping one file per key in dir.
func NewDiskvStorage(dir string, logger *logger.Logger) LocalStorage {
	return &diskvStorage{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 64 * 1024,
		}),
		logger: logger,
	}
}

func (s *diskvStorage) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if !s.d.Has(key) {
		return "", ErrKeyNotFound
	}

	val, err := s.d.Read(key)
	if err != nil {
		s.logger.Err(err).Str("func", "diskvStorage.Get").Str("key", key).Msg("failed to read key")
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), nil
}

func (s *diskvStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		s.logger.Err(err).Str("func", "diskvStorage.Set").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *diskvStorage) Close() error {
	return nil
}
