package models

import (
	"encoding/json"
	"strings"
)

// InfoRecord is the provider's raw quote/company record, keyed with the
// yfinance vocabulary (currentPrice, regularMarketPrice, longName, ...).
type InfoRecord map[string]any

// Has reports whether key is present with a non-nil value.
func (r InfoRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Float returns the numeric value at key.
func (r InfoRecord) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// String returns the trimmed string value at key, or "".
func (r InfoRecord) String(key string) string {
	if s, ok := r[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// FirstNonZero walks keys in order and returns the first numeric, non-zero value.
// Zero counts as missing.
func (r InfoRecord) FirstNonZero(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := r.Float(k); ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}
