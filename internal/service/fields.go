package service

import (
	"slices"
	"strings"
)

// sanitizeFields copies client-supplied document fields, dropping reserved
// keys and anything the document store would read as an operator or a
// nested path. Nil is returned when nothing is left.
func sanitizeFields(fields map[string]interface{}, reserved ...string) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == "" || k == "_id" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		if slices.Contains(reserved, k) {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
