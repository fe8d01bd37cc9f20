package rdf

import "strings"

// Format identifies RDF serialization formats.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatTriG     Format = "trig"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
	FormatJSONLD   Format = "jsonld"
)

// ParseFormat normalizes a format string.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "trig":
		return FormatTriG, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "nquads", "nq":
		return FormatNQuads, true
	case "jsonld", "json-ld", "json":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// IsQuadFormat reports whether the format can carry named graphs.
func (f Format) IsQuadFormat() bool {
	return f == FormatTriG || f == FormatNQuads
}
