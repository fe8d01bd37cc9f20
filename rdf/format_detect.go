package rdf

import (
	"bufio"
	"io"
	"strings"
)

// DetectFormat peeks at the start of r and guesses its syntax without
// consuming input. Line-based input is checked with the N-Quads grammar:
// it is N-Quads when a statement in the sample names a graph, and
// N-Triples otherwise. Input that opens with a Turtle directive or a JSON
// value is reported as Turtle, TriG or JSON-LD so callers can reject it.
func DetectFormat(r *bufio.Reader) (Format, bool) {
	sample, err := r.Peek(r.Size())
	truncated := err == nil
	if err != nil && err != io.EOF {
		return "", false
	}

	text := strings.TrimSpace(string(sample))
	if text == "" {
		return "", false
	}
	if text[0] == '{' || text[0] == '[' {
		return FormatJSONLD, true
	}
	if hasDirective(text) {
		if strings.Contains(text, "{") {
			return FormatTriG, true
		}
		return FormatTurtle, true
	}

	lines := strings.Split(text, "\n")
	if truncated && len(lines) > 1 {
		// The last line may be cut off by the peek window.
		lines = lines[:len(lines)-1]
	}
	statements := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		q, err := parseNTLine(line, FormatNQuads)
		if err != nil {
			return "", false
		}
		if q.G != nil {
			return FormatNQuads, true
		}
		statements++
	}
	if statements == 0 {
		return "", false
	}
	return FormatNTriples, true
}

// hasDirective reports whether the first statement of text, after blank and
// comment lines, is a Turtle directive.
func hasDirective(text string) bool {
	for text != "" {
		line, rest, _ := strings.Cut(text, "\n")
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			text = rest
			continue
		}
		upper := strings.ToUpper(line)
		for _, directive := range []string{"@PREFIX", "@BASE", "PREFIX ", "BASE "} {
			if strings.HasPrefix(upper, directive) {
				return true
			}
		}
		return false
	}
	return false
}
