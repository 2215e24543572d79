// Package service holds the client's business services that sit between the
// local store and the user-facing layers.
package service

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// IdentityService resolves the identifier that scopes every API call to the
// local profile.
type IdentityService interface {
	// GetOrCreateUserID returns the stored identifier, generating and
	// persisting a new one on first use. Every later call returns the same
	// value.
	GetOrCreateUserID(ctx context.Context) (string, error)
}

// IDGenerator produces new profile identifiers.
type IDGenerator interface {
	Generate() string
}
