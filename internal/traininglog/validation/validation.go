// Package validation collects field level input errors.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field path (e.g. "sessions[0].sets[1].rpe") to what is wrong with it.
type Errors map[string]string

func (e Errors) Add(field, format string, args ...any) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = fmt.Sprintf(format, args...)
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil when nothing was added, so callers can return it directly.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
