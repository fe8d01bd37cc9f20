package rdf

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// inlineTurtleWriter buffers the whole graph and writes it on Close, inlining
// blank nodes that are referenced exactly once as property lists ("[ ... ]")
// or collections ("( ... )"). Blank nodes on a reference cycle, inside quoted
// triples, or referenced more than once keep their labels.
type inlineTurtleWriter struct {
	out     *bufio.Writer
	render  termRenderer
	opts    Options
	pretty  bool
	logger  zerolog.Logger
	triples []Triple
	err     error
}

func newInlineTurtleWriter(w io.Writer, opts Options, logger zerolog.Logger) *inlineTurtleWriter {
	return &inlineTurtleWriter{
		out:    bufio.NewWriter(w),
		render: newTurtleRenderer(opts.Config, opts),
		opts:   opts,
		pretty: Get(opts.Config, WriterSettings.PrettyPrint),
		logger: logger,
	}
}

func (e *inlineTurtleWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !q.complete() {
		return fmt.Errorf("turtle: %w", ErrIncompleteStatement)
	}
	e.triples = append(e.triples, q.ToTriple())
	return nil
}

// Flush flushes bytes already written; buffered statements are only written by Close.
func (e *inlineTurtleWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.out.Flush(); err != nil {
		e.err = err
	}
	return e.err
}

func (e *inlineTurtleWriter) Close() error {
	if e.err != nil {
		return e.err
	}
	e.logger.Debug().Int("triples", len(e.triples)).Msg("writing buffered turtle graph")
	if err := writeTurtleHeader(e.out, e.render.base, e.opts.Prefixes, e.pretty); err != nil {
		e.err = err
		return err
	}
	g := newInlineGraph(e.triples)
	if cycle := g.breakCycles(); len(cycle) > 0 {
		e.logger.Warn().Strs("blank_nodes", cycle).Msg("blank node cycle; writing labels")
	}
	for i, subj := range g.topLevel() {
		if i > 0 && e.pretty {
			e.writeString("\n")
		}
		if b, ok := subj.term.(BlankNode); ok && g.refs[b.ID] == 0 {
			e.writeString(e.anonymous(g, b.ID, -1) + " .\n")
			continue
		}
		e.writeString(e.render.term(subj.term) + " " + e.properties(g, subj, 0) + " .\n")
	}
	e.triples = nil
	if err := e.Flush(); err != nil {
		return err
	}
	e.err = ErrWriterClosed
	return nil
}

func (e *inlineTurtleWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.out.WriteString(s); err != nil {
		e.err = err
	}
}

// properties renders the predicate-object list of subj at nesting depth.
func (e *inlineTurtleWriter) properties(g *inlineGraph, subj *subjectEntry, depth int) string {
	sep := " ; "
	if e.pretty {
		sep = " ;\n" + strings.Repeat(turtleIndent, depth+1)
	}
	parts := make([]string, 0, len(subj.preds))
	for _, po := range subj.preds {
		objects := make([]string, len(po.objects))
		for i, o := range po.objects {
			objects[i] = e.object(g, o, depth)
		}
		parts = append(parts, e.render.predicate(po.predicate)+" "+strings.Join(objects, ", "))
	}
	return strings.Join(parts, sep)
}

func (e *inlineTurtleWriter) object(g *inlineGraph, o Term, depth int) string {
	b, ok := o.(BlankNode)
	if !ok || !g.inline[b.ID] {
		return e.render.term(o)
	}
	if items, ok := g.listItems(b.ID); ok {
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = e.object(g, item, depth)
		}
		return "( " + strings.Join(rendered, " ") + " )"
	}
	return e.anonymous(g, b.ID, depth)
}

// anonymous renders a blank node as a "[ ... ]" property list.
func (e *inlineTurtleWriter) anonymous(g *inlineGraph, id string, depth int) string {
	subj := g.subjects[blankKey(id)]
	if subj == nil || len(subj.preds) == 0 {
		return "[]"
	}
	body := e.properties(g, subj, depth+1)
	if !e.pretty {
		return "[ " + body + " ]"
	}
	return "[\n" + strings.Repeat(turtleIndent, depth+2) + body + "\n" + strings.Repeat(turtleIndent, depth+1) + "]"
}

type predicateObjects struct {
	predicate IRI
	objects   []Term
}

type subjectEntry struct {
	term  Term
	preds []*predicateObjects
	index map[string]*predicateObjects
}

// inlineGraph indexes buffered triples by subject and tracks, for every
// blank node, how often it is referenced and by which subject.
type inlineGraph struct {
	order    []*subjectEntry
	subjects map[string]*subjectEntry
	refs     map[string]int
	parent   map[string]string // blank node ID -> referencing blank node ID ("" for other subjects)
	inline   map[string]bool
	lists    map[string][]Term
}

func newInlineGraph(triples []Triple) *inlineGraph {
	g := &inlineGraph{
		subjects: make(map[string]*subjectEntry),
		refs:     make(map[string]int),
		parent:   make(map[string]string),
		inline:   make(map[string]bool),
		lists:    make(map[string][]Term),
	}
	for _, t := range triples {
		g.add(t)
	}
	for id, n := range g.refs {
		if n == 1 {
			g.inline[id] = true
		}
	}
	return g
}

func (g *inlineGraph) add(t Triple) {
	key := subjectKey(t.S)
	subj, ok := g.subjects[key]
	if !ok {
		subj = &subjectEntry{term: t.S, index: make(map[string]*predicateObjects)}
		g.subjects[key] = subj
		g.order = append(g.order, subj)
	}
	po, ok := subj.index[t.P.Value]
	if !ok {
		po = &predicateObjects{predicate: t.P}
		subj.index[t.P.Value] = po
		subj.preds = append(subj.preds, po)
	}
	po.objects = append(po.objects, t.O)

	switch o := t.O.(type) {
	case BlankNode:
		g.refs[o.ID]++
		if s, ok := t.S.(BlankNode); ok {
			g.parent[o.ID] = s.ID
		} else {
			g.parent[o.ID] = ""
		}
	case TripleTerm:
		g.pinQuoted(o)
	}
	if s, ok := t.S.(TripleTerm); ok {
		g.pinQuoted(s)
	}
}

// pinQuoted keeps labels for blank nodes inside quoted triples, which
// cannot be written as property lists.
func (g *inlineGraph) pinQuoted(t TripleTerm) {
	for _, term := range []Term{t.S, t.O} {
		switch v := term.(type) {
		case BlankNode:
			g.refs[v.ID] += 2
		case TripleTerm:
			g.pinQuoted(v)
		}
	}
}

// breakCycles withdraws inlining from blank nodes whose chain of referencing
// subjects leads back to themselves, and returns their IDs sorted.
func (g *inlineGraph) breakCycles() []string {
	var cycle []string
	ids := make([]string, 0, len(g.inline))
	for id := range g.inline {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !g.inline[id] {
			continue
		}
		seen := map[string]bool{id: true}
		members := []string{id}
		for next := g.parent[id]; next != "" && g.inline[next]; next = g.parent[next] {
			if next == id {
				for _, m := range members {
					g.inline[m] = false
				}
				cycle = append(cycle, members...)
				break
			}
			if seen[next] {
				break
			}
			seen[next] = true
			members = append(members, next)
		}
	}
	sort.Strings(cycle)
	return cycle
}

// topLevel returns the subjects that are not written inline, in first-use order.
func (g *inlineGraph) topLevel() []*subjectEntry {
	out := make([]*subjectEntry, 0, len(g.order))
	for _, subj := range g.order {
		if b, ok := subj.term.(BlankNode); ok && g.inline[b.ID] {
			continue
		}
		out = append(out, subj)
	}
	return out
}

// listItems returns the members of the RDF collection headed by id. A node
// belongs to a collection when its only properties are one rdf:first and one
// rdf:rest, and its rest is rdf:nil or another such node.
func (g *inlineGraph) listItems(id string) ([]Term, bool) {
	if items, ok := g.lists[id]; ok {
		return items, items != nil
	}
	g.lists[id] = nil
	subj := g.subjects[blankKey(id)]
	if subj == nil || len(subj.preds) != 2 {
		return nil, false
	}
	first, rest := subj.index[RDFFirst], subj.index[RDFRest]
	if first == nil || rest == nil || len(first.objects) != 1 || len(rest.objects) != 1 {
		return nil, false
	}
	items := []Term{first.objects[0]}
	switch next := rest.objects[0].(type) {
	case IRI:
		if next.Value != RDFNil {
			return nil, false
		}
	case BlankNode:
		if !g.inline[next.ID] {
			return nil, false
		}
		tail, ok := g.listItems(next.ID)
		if !ok {
			return nil, false
		}
		items = append(items, tail...)
	default:
		return nil, false
	}
	g.lists[id] = items
	return items, true
}

func subjectKey(t Term) string {
	if b, ok := t.(BlankNode); ok {
		return blankKey(b.ID)
	}
	return fmt.Sprintf("%d|%s", t.Kind(), t.String())
}

func blankKey(id string) string {
	return fmt.Sprintf("%d|%s", TermBlankNode, id)
}
