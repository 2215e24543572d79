package store

import "errors"

// Sentinel errors returned by [LocalStorage] implementations.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under a key.
	ErrKeyNotFound = errors.New("key not found in local storage")

	// ErrEmptyKey is returned when an operation is given an empty key.
	ErrEmptyKey = errors.New("empty local storage key")

	// ErrUnknownBackend is returned when the configured backend is neither
	// sqlite nor diskv.
	ErrUnknownBackend = errors.New("unknown local storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
