package adapter

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-block-calendar/models"
)

// parseBody decodes a response body field by field. It returns nil for an
// empty body or one that is not a JSON object. A field of an unexpected type
// never hides the others: a non-boolean "ok" is ignored, non-string "error"
// and "message" values keep their JSON text, and blocks that do not decode
// are skipped.
func parseBody(raw string) *models.BlocksResponse {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil || fields == nil {
		return nil
	}

	parsed := &models.BlocksResponse{
		Error:   textField(fields["error"]),
		Message: textField(fields["message"]),
		Blocks:  blocksField(fields["blocks"]),
	}

	var ok bool
	if err := json.Unmarshal(fields["ok"], &ok); err == nil && isBool(fields["ok"]) {
		parsed.OK = &ok
	}
	return parsed
}

func isBool(raw json.RawMessage) bool {
	v := string(bytes.TrimSpace(raw))
	return v == "true" || v == "false"
}

// textField returns a string value as is and any other non-null value as its
// compact JSON text.
func textField(raw json.RawMessage) string {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func blocksField(raw json.RawMessage) []models.TimeBlock {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	blocks := make([]models.TimeBlock, 0, len(items))
	for _, item := range items {
		var b models.TimeBlock
		if err := json.Unmarshal(item, &b); err != nil {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}
