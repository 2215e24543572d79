package models

// BlocksResponse is the body returned by every blocks endpoint.
//
// OK is a pointer so a body that omits the flag can be told apart from one
// that explicitly reports failure.
type BlocksResponse struct {
	OK      *bool       `json:"ok,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Blocks  []TimeBlock `json:"blocks,omitempty"`
}

// Failed reports whether the server explicitly flagged the request as failed.
func (r *BlocksResponse) Failed() bool {
	return r != nil && r.OK != nil && !*r.OK
}

// BlockList returns the blocks of the response, never nil.
func (r *BlocksResponse) BlockList() []TimeBlock {
	if r == nil || r.Blocks == nil {
		return []TimeBlock{}
	}
	return r.Blocks
}

// APIResult is the outcome of a single call to the remote API.
type APIResult struct {
	// Status is the HTTP status code of the response.
	Status int
	// RawBody is the full response body as text.
	RawBody string
	// Parsed is the decoded body, or nil when the body was empty or not
	// valid JSON.
	Parsed *BlocksResponse
	// URL is the absolute URL the request was sent to.
	URL string
}

// IsSuccess reports whether the status is 2xx.
func (r APIResult) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}
