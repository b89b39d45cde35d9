package validation

import (
	"sort"
	"strings"
)

// Missing returns the names of fields whose values are empty after trimming,
// sorted for stable diagnostics. For upload endpoints the stored file name
// participates as an ordinary field.
func Missing(fields map[string]string) []string {
	var out []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Flags maps every field name to whether it is missing, for endpoints that
// must report a per-field diagnostic on 400.
func Flags(fields map[string]string) map[string]bool {
	out := make(map[string]bool, len(fields))
	for name, v := range fields {
		out[name] = strings.TrimSpace(v) == ""
	}
	return out
}
