package adapter

import (
	"github.com/MKhiriev/go-block-calendar/models"
)

const unknownAPIError = "Unknown error"

// mapResultError classifies a received response. It returns nil unless the
// caller asked to throw and the status or the body reports a failure.
// The status check runs first, so a non-2xx body with "ok": false yields an
// [HTTPError].
func mapResultError(res models.APIResult, opts SendOptions) error {
	if !opts.ThrowOnHTTP {
		return nil
	}

	if !res.IsSuccess() {
		return &HTTPError{Status: res.Status, URL: res.URL, Body: res.RawBody}
	}

	if res.Parsed.Failed() {
		msg := res.Parsed.Error
		if msg == "" {
			msg = unknownAPIError
		}
		return &APIError{Status: res.Status, URL: res.URL, Message: msg}
	}

	return nil
}
