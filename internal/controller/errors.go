package controller

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrConnectionTestFailed = errors.New("connection test failed")
)

// User facing messages.
const (
	msgInvalidSelectedDate = "Selected date is invalid. Expected YYYY-MM-DD."
	msgSelectValidDate     = "Please select a valid date (YYYY-MM-DD)."
	msgFieldsRequired      = "Date, start, end, and label are required."
	msgEndAfterStart       = "End time must be after start time."
	msgClockTime           = "Start and end must be HH:MM."
	msgEnterDate           = "Enter date as YYYY-MM-DD."
	msgBlockSaved          = "Block saved."
	msgDeleted             = "Deleted."
	msgConnectionNoResp    = "Connection test failed before receiving HTTP response."
)

// ValidationError is returned when input is rejected before any request is
// made.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
