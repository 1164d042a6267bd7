package api

import (
	"encoding/json"
	"fmt"

	"github.com/quaverlabs/quaver/internal/shared"
)

// unwrap extracts the payload from one of the backend's response envelopes.
//
// At least two backend generations coexist behind the configured base URL, so
// the same logical response arrives as a raw value, {"data": ...},
// {"data": {"data": ...}}, or under a resource-specific key such as
// {"songs": [...]}. Envelope keys are tried in order; "data" envelopes are
// unwrapped recursively.
func unwrap(data []byte, keys ...string) (json.RawMessage, error) {
	trimmed := json.RawMessage(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", shared.ErrUnexpectedShape)
	}

	if trimmed[0] == '[' {
		return trimmed, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedShape, err)
	}

	if inner, ok := envelope["data"]; ok {
		return unwrap(inner, keys...)
	}

	for _, key := range keys {
		if inner, ok := envelope[key]; ok {
			return unwrap(inner, keys...)
		}
	}

	// No recognized envelope: the object itself is the payload.
	return trimmed, nil
}

// decodeList unwraps and decodes a list response.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	payload, err := unwrap(data, keys...)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedShape, err)
	}
	return items, nil
}

// decodeObject unwraps and decodes a single-record response.
func decodeObject[T any](data []byte, keys ...string) (*T, error) {
	payload, err := unwrap(data, keys...)
	if err != nil {
		return nil, err
	}

	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedShape, err)
	}
	return &item, nil
}
