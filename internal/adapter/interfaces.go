// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote time-blocks API.
//
// Every endpoint is a JSON POST. [BlocksAdapter.Send] is the single gateway
// used by all operations: it builds the absolute URL from the configured base
// address, reads the full body as text, parses it tolerantly and, when asked
// to, turns unsuccessful outcomes into the typed errors defined in errors.go
// ([TransportError], [HTTPError], [APIError]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-block-calendar/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blocks_adapter_mock.go -package=mock

// Operation is the path of a remote endpoint relative to the base URL.
type Operation string

const (
	OpList   Operation = "/blocks/list"
	OpCreate Operation = "/blocks"
	OpDelete Operation = "/blocks/delete"
)

// SendOptions controls how [BlocksAdapter.Send] reports unsuccessful
// responses.
type SendOptions struct {
	// ThrowOnHTTP turns a non-2xx status into an [HTTPError] and a body with
	// "ok": false into an [APIError]. When false both are returned as a
	// regular result for the caller to inspect.
	ThrowOnHTTP bool
}

// Throwing is the default option set used by mutating operations.
var Throwing = SendOptions{ThrowOnHTTP: true}

// BlocksAdapter talks to the remote time-blocks API.
type BlocksAdapter interface {
	// Send POSTs payload as JSON to op and returns the outcome.
	// A [TransportError] is returned when no response was received at all.
	Send(ctx context.Context, op Operation, payload any, opts SendOptions) (models.APIResult, error)

	// List fetches the blocks of one date.
	List(ctx context.Context, userID, date string, opts SendOptions) (models.APIResult, error)

	// Create submits a new block. The response carries the refreshed list of
	// the block's date.
	Create(ctx context.Context, req models.CreateRequest) (models.APIResult, error)

	// Delete removes a block. The response carries the refreshed list of the
	// block's date.
	Delete(ctx context.Context, req models.DeleteRequest) (models.APIResult, error)

	// BaseURL returns the normalised base address requests are sent to.
	BaseURL() string
}
