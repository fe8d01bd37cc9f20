package main

import (
	"fmt"
	"strings"
)

type assignment struct {
	key   string
	value string
}

// parseAssignments splits repeated key=value flag values. Keys are
// trimmed; values are kept verbatim so they may contain '='.
func parseAssignments(raw []string, flag string) ([]assignment, error) {
	out := make([]assignment, 0, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%s %q: want key=value", flag, item)
		}
		out = append(out, assignment{key: key, value: value})
	}
	return out, nil
}

// parsePrefixes turns --prefix values into a prefix map. The empty prefix
// is allowed ("=http://example.org/").
func parsePrefixes(raw []string) (map[string]string, error) {
	prefixes := make(map[string]string, len(raw))
	for _, item := range raw {
		label, ns, ok := strings.Cut(item, "=")
		if !ok || ns == "" {
			return nil, fmt.Errorf("--prefix %q: want label=namespace", item)
		}
		prefixes[strings.TrimSpace(label)] = ns
	}
	return prefixes, nil
}
