package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeList decodes a list response. The backend is inconsistent: some
// endpoints wrap the list as {"data": [...]}, others return the bare list.
// Both are accepted; a missing or null list decodes to an empty slice.
func decodeList[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	items := []T{}
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return items, nil
	}

	if body[0] == '[' {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode envelope data: %w", err)
	}
	return items, nil
}

// errorBody is the shape of a backend error response
type errorBody struct {
	Message string `json:"message"`
}

// parseMessage extracts the "message" field from an error body.
// Unparseable bodies yield an empty message.
func parseMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Message
}
