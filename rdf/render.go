package rdf

import (
	"fmt"
	"strings"
)

// termRenderer renders terms in N-Triples/Turtle syntax according to the
// writer settings in effect for one write operation.
type termRenderer struct {
	prefixes      map[string]string
	base          string // set only when the output declares it
	plainLiterals bool
	turtle        bool // allows prefixed names and the "a" keyword
}

func newLineRenderer(cfg *Config) termRenderer {
	return termRenderer{plainLiterals: Get(cfg, WriterSettings.XSDStringToPlainLiteral)}
}

func newTurtleRenderer(cfg *Config, opts Options) termRenderer {
	r := termRenderer{
		prefixes:      opts.Prefixes,
		plainLiterals: Get(cfg, WriterSettings.XSDStringToPlainLiteral),
		turtle:        true,
	}
	if opts.BaseIRI != "" && Get(cfg, WriterSettings.BaseDirective) {
		r.base = opts.BaseIRI
	}
	return r
}

func (r termRenderer) term(term Term) string {
	switch value := term.(type) {
	case IRI:
		return r.iri(value)
	case BlankNode:
		return value.String()
	case Literal:
		return r.literal(value)
	case TripleTerm:
		return "<< " + r.term(value.S) + " " + r.iri(value.P) + " " + r.term(value.O) + " >>"
	default:
		return ""
	}
}

func (r termRenderer) predicate(p IRI) string {
	if r.turtle && p.Value == RDFType {
		return "a"
	}
	return r.iri(p)
}

func (r termRenderer) iri(iri IRI) string {
	if r.turtle {
		if qname, ok := abbreviateQName(iri.Value, r.prefixes, true); ok {
			return qname
		}
		if rel, ok := relativeIRI(iri.Value, r.base); ok {
			return "<" + escapeIRI(rel) + ">"
		}
	}
	return "<" + escapeIRI(iri.Value) + ">"
}

func (r termRenderer) literal(l Literal) string {
	quoted := `"` + escapeString(l.Lexical) + `"`
	switch {
	case l.Lang != "":
		// The rdf:langString datatype cannot follow a language tag in these
		// syntaxes, whatever the settings say.
		return quoted + "@" + l.Lang
	case l.IsString():
		if r.plainLiterals {
			return quoted
		}
		return quoted + "^^" + r.iri(IRI{Value: XSDString})
	default:
		return quoted + "^^" + r.iri(l.Datatype)
	}
}

// relativeIRI returns a reference that resolves against base back to iri.
// Only same-document references and plain path suffixes of a base ending in
// '/' are produced; anything else stays absolute.
func relativeIRI(iri, base string) (string, bool) {
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	if base == "" || !strings.HasPrefix(iri, base) {
		return "", false
	}
	rest := iri[len(base):]
	hasQuery := strings.Contains(base, "?")
	switch {
	case rest == "" || rest[0] == '#':
		return rest, true
	case rest[0] == '?':
		return rest, !hasQuery
	case hasQuery || !strings.HasSuffix(base, "/") || rest[0] == '/':
		return "", false
	}

	path := rest
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for i, segment := range strings.Split(path, "/") {
		if segment == "." || segment == ".." || (i == 0 && strings.Contains(segment, ":")) {
			return "", false
		}
	}
	return rest, true
}

func escapeString(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func escapeIRI(value string) string {
	if !strings.ContainsFunc(value, iriNeedsEscape) {
		return value
	}
	var b strings.Builder
	for _, r := range value {
		if iriNeedsEscape(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func iriNeedsEscape(r rune) bool {
	if r <= 0x20 {
		return true
	}
	switch r {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return false
}
