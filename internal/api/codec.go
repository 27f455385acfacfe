package api

import (
	"encoding/json"
)

// Codec serializes the plain Go message types as JSON. It is registered
// under connect's "json" name, replacing the protobuf JSON mapping.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
