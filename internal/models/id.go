package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is the normalized entity identifier used throughout the client.
//
// The backend is inconsistent about identity: some records carry "id", others
// "_id", and values arrive as strings or numbers depending on the code path
// that produced them. ID absorbs all of those shapes at the decode boundary so
// downstream comparisons are plain string equality.
type ID string

// UnmarshalJSON accepts a JSON string, integer, or float identifier. Numbers
// go through [ParseID] so 42 and 42.0 normalize to the same identifier.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ParseID(n)
		return nil
	}

	return fmt.Errorf("invalid id value: %s", string(data))
}

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool { return id == "" }

// ParseID normalizes an arbitrary identifier value (string, int, float) into an ID.
func ParseID(v any) ID {
	switch t := v.(type) {
	case string:
		return ID(t)
	case float64:
		return ID(strconv.FormatInt(int64(t), 10))
	case int:
		return ID(strconv.Itoa(t))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ID(strconv.FormatInt(i, 10))
		}
		if f, err := t.Float64(); err == nil {
			return ID(strconv.FormatInt(int64(f), 10))
		}
		return ID(t.String())
	default:
		return ""
	}
}

// ContainsID reports whether ids contains target.
func ContainsID(ids []ID, target ID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// ToggleID returns ids with target removed when present, appended otherwise.
//
// The input slice is never mutated; callers rely on the original for rollback.
func ToggleID(ids []ID, target ID) (result []ID, added bool) {
	result = make([]ID, 0, len(ids)+1)
	for _, id := range ids {
		if id != target {
			result = append(result, id)
		}
	}
	if len(result) == len(ids) {
		result = append(result, target)
		added = true
	}
	return result, added
}
