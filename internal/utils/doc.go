// Package utils provides small helpers shared across the client: date and
// clock-time formatting and validation, identifier generation and the HTTP
// client constructor.
package utils
