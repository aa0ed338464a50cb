// internal/models/payload.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Payload is the accumulated set of user-supplied answers for one
// conversation, keyed by field name. Values arrive JSON-decoded, so numbers
// are float64, booleans bool and enums string. A key that is absent or nil is
// "not yet known"; a concrete value (including 0 and false) is known.
type Payload map[string]interface{}

// Clone returns an independent copy. Engine code never mutates the payload a
// caller handed in; each turn works on its own value.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Known reports whether the field carries a concrete value.
func (p Payload) Known(field string) bool {
	v, ok := p[field]
	return ok && v != nil
}

// Number returns the field as a float64. Numeric strings with thousands
// separators are accepted, matching what conversational frontends send.
func (p Payload) Number(field string) (float64, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return 0, fmt.Errorf("field %s is not set", field)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("field %s: not a number: %q", field, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %s: not a number: %T", field, v)
	}
}

// Bool returns the field as a bool.
func (p Payload) Bool(field string) (bool, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return false, fmt.Errorf("field %s is not set", field)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %s: not a boolean: %T", field, v)
	}
	return b, nil
}

// Enum returns the field as a string.
func (p Payload) Enum(field string) (string, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return "", fmt.Errorf("field %s is not set", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: not a string: %T", field, v)
	}
	return s, nil
}
