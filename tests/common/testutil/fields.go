//go:build unit || e2e

package testutil

import "strings"

// Field sets key in a decoded JSON object, or deletes it when value is nil.
// Dotted keys ("formData.contactInfo.email") walk into nested objects.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		for _, p := range parts[:len(parts)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				if value == nil {
					return
				}
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}

		last := parts[len(parts)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
