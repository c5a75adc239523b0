package keywords

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxKeywords caps a single request to keep pressure on the suggestion
	// endpoint bounded.
	MaxKeywords = 20

	// MaxKeywordLength is the longest keyword accepted after trimming.
	MaxKeywordLength = 50
)

// ParseKeywords flattens a heterogeneous keyword list into a canonical set.
//
// Each element may be a plain string, a JSON-encoded array serialized as a
// string, a comma-separated string, or a nested array. Malformed elements are
// never an error: a string that fails JSON parsing is comma-split or kept as a
// literal keyword. The result is lowercased, trimmed, deduplicated in
// first-appearance order, stripped of empty and over-length entries, and
// truncated to MaxKeywords.
func ParseKeywords(items []interface{}) []string {
	var raw []string

	for _, item := range items {
		switch v := item.(type) {
		case string:
			raw = append(raw, expandString(v)...)
		case []interface{}:
			for _, member := range v {
				if s, ok := coerce(member); ok {
					raw = append(raw, s)
				}
			}
		case []string:
			raw = append(raw, v...)
		default:
			if s, ok := coerce(item); ok {
				raw = append(raw, s)
			}
		}
	}

	return clean(raw)
}

// expandString applies the ordered parse chain for string elements:
// try JSON array, then comma split, then literal.
func expandString(s string) []string {
	if parsed, ok := tryParseJSONArray(s); ok {
		return parsed
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{s}
}

func tryParseJSONArray(s string) ([]string, bool) {
	if !strings.HasPrefix(strings.TrimSpace(s), "[") {
		return nil, false
	}
	var members []interface{}
	if err := json.Unmarshal([]byte(s), &members); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(members))
	for _, member := range members {
		if str, ok := coerce(member); ok {
			out = append(out, str)
		}
	}
	return out, true
}

// coerce converts a non-string value to its string form, skipping values
// that carry no keyword content (nil, false, zero numbers, empty strings).
func coerce(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	case float64:
		if t == 0 {
			return "", false
		}
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), true
		}
		return fmt.Sprintf("%v", t), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

// clean lowercases, trims, filters and deduplicates the flattened list.
func clean(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	result := make([]string, 0, len(raw))

	for _, keyword := range raw {
		k := Canonical(keyword)
		if k == "" || utf8.RuneCountInString(k) > MaxKeywordLength {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
		if len(result) >= MaxKeywords {
			break
		}
	}

	return result
}

// Canonical returns the canonical cache/pending-map form of a keyword:
// NFC-normalized, trimmed and lowercased.
func Canonical(keyword string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(keyword)))
}
