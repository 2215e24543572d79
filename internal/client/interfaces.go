package client

import "context"

// Client defines the lifecycle contract of a runnable front end.
type Client interface {
	// Run starts the front end and blocks until it exits or ctx ends.
	Run(ctx context.Context) error
}
