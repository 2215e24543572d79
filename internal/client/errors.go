package client

import "errors"

var ErrUnexpectedArgs = errors.New("unexpected arguments")

// reportedError marks a failure the controller already showed to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already printed by the command that
// produced it.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
