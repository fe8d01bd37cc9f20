package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// jsonldWriter buffers statements as N-Quads and converts them to expanded
// JSON-LD with json-gold on Close. The N-Quads pass applies the same literal
// settings as the other writers.
type jsonldWriter struct {
	w      io.Writer
	buf    bytes.Buffer
	nquads *ntWriter
	opts   Options
	pretty bool
	base   string
	err    error
}

func newJSONLDWriter(w io.Writer, opts Options) *jsonldWriter {
	e := &jsonldWriter{
		w:      w,
		opts:   opts,
		pretty: Get(opts.Config, WriterSettings.PrettyPrint),
	}
	if opts.BaseIRI != "" && Get(opts.Config, WriterSettings.BaseDirective) {
		e.base = opts.BaseIRI
	}
	e.nquads = newNTWriter(&e.buf, FormatNQuads, opts.Config)
	return e
}

func (e *jsonldWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !q.complete() {
		return fmt.Errorf("jsonld: %w", ErrIncompleteStatement)
	}
	if _, ok := q.S.(TripleTerm); ok {
		return fmt.Errorf("jsonld: quoted triples are not supported")
	}
	if _, ok := q.O.(TripleTerm); ok {
		return fmt.Errorf("jsonld: quoted triples are not supported")
	}
	if err := e.nquads.Write(q); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Flush is a no-op until Close; JSON-LD output is produced in one piece.
func (e *jsonldWriter) Flush() error {
	return e.err
}

func (e *jsonldWriter) Close() error {
	if e.err != nil {
		return e.err
	}
	e.err = ErrWriterClosed
	if err := e.nquads.Flush(); err != nil {
		return err
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions(e.opts.BaseIRI)
	goldOpts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(e.buf.String(), goldOpts)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}

	var doc interface{} = expanded
	if e.base != "" {
		doc = map[string]interface{}{
			"@context": map[string]interface{}{"@base": e.base},
			"@graph":   expanded,
		}
	}

	var out []byte
	if e.pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}
	out = append(out, '\n')
	_, err = e.w.Write(out)
	return err
}
