package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/internal/store"
)

// UserIDKey is the local storage key holding the profile identifier.
const UserIDKey = "calendarUserId"

type identityService struct {
	storage   store.LocalStorage
	generator IDGenerator

	mu     sync.Mutex
	userID string

	logger *logger.Logger
}

// NewIdentityService returns an [IdentityService] persisting into storage.
func NewIdentityService(storage store.LocalStorage, generator IDGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		storage:   storage,
		generator: generator,
		logger:    logger,
	}
}

func (s *identityService) GetOrCreateUserID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID != "" {
		return s.userID, nil
	}

	stored, err := s.storage.Get(ctx, UserIDKey)
	switch {
	case err == nil && stored != "":
		s.userID = stored
		return stored, nil
	case err != nil && !errors.Is(err, store.ErrKeyNotFound):
		return "", fmt.Errorf("%w: %w", ErrReadingUserID, err)
	}

	id := s.generator.Generate()
	if err = s.storage.Set(ctx, UserIDKey, id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistingUserID, err)
	}
	s.logger.Info().Str("user_id", id).Msg("created new local profile identifier")

	s.userID = id
	return id, nil
}
