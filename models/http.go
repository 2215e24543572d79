package models

// ListRequest asks for every block of a user on one date.
type ListRequest struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
}

// CreateRequest carries a new block. The server assigns BlockID and
// CreatedAt and answers with the refreshed list of the date.
type CreateRequest struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Label  string `json:"label"`
}

// DeleteRequest removes a block of the given date.
type DeleteRequest struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	BlockID string `json:"blockId"`
}
