package rdf

import (
	"bufio"
	"fmt"
	"io"
)

const turtleIndent = "    "

// turtleWriter streams Turtle.
//
// With pretty printing, consecutive statements that share a subject are
// grouped with ';' and those that also share a predicate with ','. Without
// it, every statement is written on its own line.
type turtleWriter struct {
	out     *bufio.Writer
	render  termRenderer
	opts    Options
	pretty  bool
	started bool
	group   subjectGroup
	err     error
}

func newTurtleWriter(w io.Writer, opts Options) *turtleWriter {
	return &turtleWriter{
		out:    bufio.NewWriter(w),
		render: newTurtleRenderer(opts.Config, opts),
		opts:   opts,
		pretty: Get(opts.Config, WriterSettings.PrettyPrint),
	}
}

func (e *turtleWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !q.complete() {
		return fmt.Errorf("turtle: %w", ErrIncompleteStatement)
	}
	if !e.started {
		e.writeHeader()
	}
	s, p, o := e.render.term(q.S), e.render.predicate(q.P), e.render.term(q.O)
	if e.pretty {
		e.group.write(e, s, p, o)
	} else {
		e.writeString(s + " " + p + " " + o + " .\n")
	}
	return e.err
}

func (e *turtleWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.out.Flush(); err != nil {
		e.err = err
	}
	return e.err
}

func (e *turtleWriter) Close() error {
	if e.err != nil {
		return e.err
	}
	if !e.started {
		e.writeHeader()
	}
	e.group.end(e)
	if err := e.Flush(); err != nil {
		return err
	}
	e.err = ErrWriterClosed
	return nil
}

func (e *turtleWriter) writeHeader() {
	e.started = true
	e.err = writeTurtleHeader(e.out, e.render.base, e.opts.Prefixes, e.pretty)
}

func (e *turtleWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.out.WriteString(s); err != nil {
		e.err = err
	}
}

// writeTurtleHeader writes the base and prefix directives shared by Turtle and TriG.
func writeTurtleHeader(w *bufio.Writer, base string, prefixes map[string]string, pretty bool) error {
	wrote := false
	if base != "" {
		if _, err := w.WriteString("@base <" + escapeIRI(base) + "> .\n"); err != nil {
			return err
		}
		wrote = true
	}
	for _, prefix := range sortedPrefixKeys(prefixes) {
		line := "@prefix " + prefix + ": <" + escapeIRI(prefixes[prefix]) + "> .\n"
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		wrote = true
	}
	if wrote && pretty {
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

// stringWriter is the sticky-error sink a subjectGroup writes through.
type stringWriter interface {
	writeString(string)
}

// subjectGroup tracks the open subject/predicate of pretty-printed output.
type subjectGroup struct {
	indent    string
	subject   string
	predicate string
	open      bool
}

func (g *subjectGroup) write(w stringWriter, s, p, o string) {
	switch {
	case g.open && s == g.subject && p == g.predicate:
		w.writeString(", " + o)
	case g.open && s == g.subject:
		w.writeString(" ;\n" + g.indent + turtleIndent + p + " " + o)
	default:
		if g.open {
			w.writeString(" .\n\n")
		}
		w.writeString(g.indent + s + " " + p + " " + o)
	}
	g.subject, g.predicate, g.open = s, p, true
}

// end terminates the open statement, if any.
func (g *subjectGroup) end(w stringWriter) {
	if g.open {
		w.writeString(" .\n")
	}
	g.open = false
	g.subject, g.predicate = "", ""
}

// trigWriter streams TriG.
//
// With pretty printing, consecutive statements in the same named graph share
// one indented graph block. Without it, each statement in a named graph is
// written as a one-line block.
type trigWriter struct {
	turtleWriter
	graph   string
	inGraph bool
}

func newTriGWriter(w io.Writer, opts Options) *trigWriter {
	return &trigWriter{turtleWriter: *newTurtleWriter(w, opts)}
}

func (e *trigWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !q.complete() {
		return fmt.Errorf("trig: %w", ErrIncompleteStatement)
	}
	if !e.started {
		e.writeHeader()
	}
	s, p, o := e.render.term(q.S), e.render.predicate(q.P), e.render.term(q.O)
	graph := ""
	if q.G != nil {
		graph = e.render.term(q.G)
	}

	if !e.pretty {
		line := s + " " + p + " " + o + " ."
		if graph != "" {
			line = graph + " { " + line + " }"
		}
		e.writeString(line + "\n")
		return e.err
	}

	if graph != e.graph || (graph != "") != e.inGraph {
		e.switchGraph(graph)
	}
	e.group.write(e, s, p, o)
	return e.err
}

func (e *trigWriter) switchGraph(graph string) {
	wasOpen := e.group.open
	e.group.end(e)
	if e.inGraph {
		e.writeString("}\n")
	}
	if wasOpen || e.inGraph {
		e.writeString("\n")
	}
	e.graph = graph
	e.inGraph = graph != ""
	e.group.indent = ""
	if e.inGraph {
		e.writeString(graph + " {\n")
		e.group.indent = turtleIndent
	}
}

func (e *trigWriter) Close() error {
	if e.err != nil {
		return e.err
	}
	if !e.started {
		e.writeHeader()
	}
	e.group.end(e)
	if e.inGraph {
		e.writeString("}\n")
		e.inGraph = false
	}
	if err := e.Flush(); err != nil {
		return err
	}
	e.err = ErrWriterClosed
	return nil
}
