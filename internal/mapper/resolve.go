package mapper

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// valueAt walks a dot-separated path ("customer.name") through nested
// objects. Missing segments and explicit nulls both count as absent.
func valueAt(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, seg := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := node[seg]
		if !ok || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// firstString resolves an ordered chain of candidate paths; the first
// non-empty string wins.
func firstString(m map[string]any, paths ...string) *string {
	for _, path := range paths {
		if v, ok := valueAt(m, path); ok {
			if s, ok := v.(string); ok && s != "" {
				return &s
			}
		}
	}
	return nil
}

func firstStringOr(m map[string]any, fallback string, paths ...string) string {
	if s := firstString(m, paths...); s != nil {
		return *s
	}
	return fallback
}

func firstNumber(m map[string]any, paths ...string) (float64, bool) {
	for _, path := range paths {
		v, ok := valueAt(m, path)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		case int:
			return float64(n), true
		}
	}
	return 0, false
}

func firstNumberOr(m map[string]any, fallback float64, paths ...string) float64 {
	if n, ok := firstNumber(m, paths...); ok {
		return n
	}
	return fallback
}

// firstTime parses the first candidate that holds an RFC3339 string (or an
// already-parsed time value).
func firstTime(m map[string]any, paths ...string) *time.Time {
	for _, path := range paths {
		v, ok := valueAt(m, path)
		if !ok {
			continue
		}
		switch ts := v.(type) {
		case string:
			if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
				return &parsed
			}
		case time.Time:
			return &ts
		}
	}
	return nil
}

func firstTimeOr(m map[string]any, fallback time.Time, paths ...string) time.Time {
	if t := firstTime(m, paths...); t != nil {
		return *t
	}
	return fallback
}

// priceString renders a numeric price as text, preserving the decimal form.
func priceString(v any) string {
	switch p := v.(type) {
	case string:
		if p != "" {
			return p
		}
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case json.Number:
		return p.String()
	}
	return "0"
}

func parseTimestamp(ts string) *time.Time {
	if ts == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil
	}
	return &parsed
}
