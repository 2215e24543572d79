package models

// TimeBlock is a labeled time interval on a single date as stored by the
// remote API.
type TimeBlock struct {
	// BlockID is assigned by the server when the block is created.
	BlockID string `json:"blockId"`

	// Date is the ISO calendar day (YYYY-MM-DD) the block belongs to.
	Date string `json:"date"`

	// Start and End are zero-padded 24-hour clock times (HH:MM).
	// A valid block always has End > Start.
	Start string `json:"start"`
	End   string `json:"end"`

	// Label is the user supplied description of the block.
	Label string `json:"label"`

	// CreatedAt is the server-side creation timestamp (RFC 3339, UTC).
	CreatedAt string `json:"createdAt"`
}

// FormValues are the raw values of the input fields the user edits before
// saving or loading a block.
type FormValues struct {
	Date  string
	Start string
	End   string
	Label string
}
