package dataflows

import "strconv"

// FieldMap reads loosely typed provider payloads. Every accessor substitutes
// the type-correct zero value when the field is absent or of the wrong type,
// so reshaping code never has to guard individual lookups.
type FieldMap map[string]any

// String returns the field as a string, or "" when absent or mistyped.
func (m FieldMap) String(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the field as a float64, or 0 when absent or mistyped.
// Numeric strings are accepted since some upstreams quote their numbers.
func (m FieldMap) Float(key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// Int returns the field as an int64, truncating fractional values, or 0 when
// absent or mistyped.
func (m FieldMap) Int(key string) int64 {
	return int64(m.Float(key))
}
