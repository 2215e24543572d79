package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces random per-profile identifiers.
type UUIDGenerator struct {
	now Clock
}

// NewUUIDGenerator returns a generator using the wall clock for its
// fallback identifiers.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{now: time.Now}
}

// Generate returns a random v4 UUID. If the random source fails it falls back
// to a timestamp based identifier of the form user-<unix millis>.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return g.fallback()
	}
	return id.String()
}

func (g *UUIDGenerator) fallback() string {
	now := g.now
	if now == nil {
		now = time.Now
	}
	return fmt.Sprintf("user-%d", now().UnixMilli())
}
