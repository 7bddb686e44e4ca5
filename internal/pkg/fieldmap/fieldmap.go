// Package fieldmap reads loosely shaped upstream JSON records whose keys may
// arrive in either their original or capitalized spelling.
package fieldmap

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type Record map[string]any

// Lookup returns the first value found for keys, trying an exact match before
// a case-insensitive one. Explicit nulls count as absent.
func (r Record) Lookup(keys ...string) (any, bool) {
	if r == nil {
		return nil, false
	}
	for _, key := range keys {
		if value, ok := r[key]; ok && value != nil {
			return value, true
		}
	}
	for _, key := range keys {
		for candidate, value := range r {
			if value != nil && strings.EqualFold(candidate, key) {
				return value, true
			}
		}
	}
	return nil, false
}

func (r Record) Has(keys ...string) bool {
	_, ok := r.Lookup(keys...)
	return ok
}

func (r Record) String(keys ...string) string {
	value, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

func (r Record) Int(keys ...string) (int, bool) {
	value, ok := r.Lookup(keys...)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func (r Record) Float(keys ...string) (float64, bool) {
	value, ok := r.Lookup(keys...)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func (r Record) Bool(keys ...string) (bool, bool) {
	value, ok := r.Lookup(keys...)
	if !ok {
		return false, false
	}
	switch v := value.(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "s", "sim", "1":
			return true, true
		case "false", "n", "nao", "não", "0":
			return false, true
		}
	}
	return false, false
}

// BoolOr returns the boolean under keys, or fallback when absent or unreadable.
func (r Record) BoolOr(fallback bool, keys ...string) bool {
	if v, ok := r.Bool(keys...); ok {
		return v
	}
	return fallback
}

func (r Record) Record(keys ...string) (Record, bool) {
	value, ok := r.Lookup(keys...)
	if !ok {
		return nil, false
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(nested), true
}

func (r Record) Records(keys ...string) []Record {
	value, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	return toRecords(value)
}

func toRecords(value any) []Record {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

// DecodeRecords turns an upstream payload into records. It accepts a JSON
// array, a single object, an object wrapping an array under "data", or null.
func DecodeRecords(raw []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Record{}, nil
	}

	var payload any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, err
	}

	switch v := payload.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		record := Record(v)
		if wrapped, ok := record.Lookup("data"); ok {
			if _, isArray := wrapped.([]any); isArray {
				return toRecords(wrapped), nil
			}
		}
		return []Record{record}, nil
	}
	return []Record{}, nil
}

// DecodeRecord decodes a payload expected to carry at most one record.
func DecodeRecord(raw []byte) (Record, error) {
	records, err := DecodeRecords(raw)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}
