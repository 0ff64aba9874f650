package raw

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is a decoded upstream JSON object. Upstream payloads use more than one
// key-naming convention, so fields are read through Extractors instead of struct tags.
type Record map[string]any

// Extractor reads one optional field from a Record.
type Extractor[T any] func(Record) (T, bool)

// FirstOf tries each extractor in order and returns the first hit.
func FirstOf[T any](extractors ...Extractor[T]) Extractor[T] {
	return func(r Record) (T, bool) {
		for _, extract := range extractors {
			if extract == nil {
				continue
			}
			if v, ok := extract(r); ok {
				return v, true
			}
		}
		var zero T
		return zero, false
	}
}

// Present reports whether key holds a non-null value.
func (r Record) Present(key string) bool {
	if r == nil {
		return false
	}
	v, ok := r[key]
	return ok && v != nil
}

// StringAt reads a string field. Missing, null and non-string values miss.
func StringAt(key string) Extractor[string] {
	return func(r Record) (string, bool) {
		if !r.Present(key) {
			return "", false
		}
		s, ok := r[key].(string)
		return s, ok
	}
}

// NumberAt reads a numeric field. A key that is present claims the field even
// when its value is not numeric, so a later convention is never consulted for it.
func NumberAt(key string) Extractor[*float64] {
	return func(r Record) (*float64, bool) {
		if !r.Present(key) {
			return nil, false
		}
		f, ok := ToFloat(r[key])
		if !ok {
			return nil, true
		}
		return &f, true
	}
}

// ListAt reads an array field.
func ListAt(key string) Extractor[[]any] {
	return func(r Record) ([]any, bool) {
		if !r.Present(key) {
			return nil, false
		}
		list, ok := r[key].([]any)
		return list, ok
	}
}

// String returns the first hit of the extractor chain, or "".
func String(r Record, extract Extractor[string]) string {
	s, _ := extract(r)
	return s
}

// Int returns the first numeric hit truncated to an int, or 0.
func Int(r Record, extract Extractor[*float64]) int {
	f, ok := extract(r)
	if !ok || f == nil {
		return 0
	}
	return int(*f)
}

// ToFloat converts a decoded JSON scalar into a finite float64.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Records converts a decoded JSON array into Records, skipping non-object items.
func Records(items []any) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		switch obj := item.(type) {
		case map[string]any:
			out = append(out, Record(obj))
		case Record:
			out = append(out, obj)
		}
	}
	return out
}
