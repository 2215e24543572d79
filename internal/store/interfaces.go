// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the client's local persistence: a tiny key-value
// store that keeps the per-profile user identifier between runs.
//
// Two backends are available: an SQLite database migrated with goose
// ([NewConnectSQLite]) and a diskv directory ([NewDiskvStorage]).
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is a persistent string key-value store.
type LocalStorage interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}
