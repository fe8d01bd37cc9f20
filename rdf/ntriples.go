package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type ntReader struct {
	reader  *bufio.Reader
	format  Format
	maxLine int
	line    int
	err     error
}

func newNTReader(r io.Reader, format Format, opts Options) *ntReader {
	return &ntReader{reader: bufio.NewReader(r), format: format, maxLine: opts.MaxLineBytes}
}

func (d *ntReader) Next() (Quad, error) {
	if d.err != nil {
		return Quad{}, d.err
	}
	for {
		line, err := d.readLine()
		if err != nil {
			d.err = err
			return Quad{}, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		quad, err := parseNTLine(trimmed, d.format)
		if err != nil {
			err = d.wrap(trimmed, err)
			d.err = err
			return Quad{}, err
		}
		return quad, nil
	}
}

func (d *ntReader) Close() error {
	return nil
}

// readLine stops reading as soon as the line outgrows maxLine, so an
// oversized line costs at most maxLine plus one buffer of memory. The rest
// of that line is left unread; the reader error is sticky.
func (d *ntReader) readLine() (string, error) {
	if d.maxLine <= 0 {
		line, err := d.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		d.line++
		return line, nil
	}

	var buf []byte
	for {
		part, err := d.reader.ReadSlice('\n')
		buf = append(buf, part...)
		if len(buf) > d.maxLine {
			d.line++
			return "", &ParseError{Format: string(d.format), Line: d.line, Err: ErrLineTooLong}
		}
		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF && len(buf) > 0:
		default:
			return "", err
		}
		d.line++
		return string(buf), nil
	}
}

func (d *ntReader) wrap(statement string, err error) error {
	column := 0
	var cerr *cursorError
	if errors.As(err, &cerr) {
		column = cerr.pos + 1
	}
	return &ParseError{Format: string(d.format), Statement: statement, Line: d.line, Column: column, Err: err}
}

func parseNTLine(line string, format Format) (Quad, error) {
	cursor := &ntCursor{input: line}
	subject, err := cursor.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := cursor.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}

	var graph Term
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '.' {
		if format != FormatNQuads {
			return Quad{}, cursor.errorf("graph term not allowed in N-Triples")
		}
		graph, err = cursor.parseTerm(false)
		if err != nil {
			return Quad{}, err
		}
	}
	if !cursor.consume('.') {
		return Quad{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '#' {
		return Quad{}, cursor.errorf("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

type ntCursor struct {
	input string
	pos   int
}

type cursorError struct {
	pos int
	msg string
}

func (e *cursorError) Error() string { return e.msg }

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return &cursorError{pos: c.pos, msg: fmt.Sprintf(format, args...)}
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	var b strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		switch ch {
		case '>':
			c.pos++
			return IRI{Value: b.String()}, nil
		case '\\':
			r, err := c.parseUnicodeEscape()
			if err != nil {
				return IRI{}, err
			}
			b.WriteRune(r)
		case ' ', '<', '"':
			return IRI{}, c.errorf("invalid character %q in IRI", ch)
		default:
			b.WriteByte(ch)
			c.pos++
		}
	}
	return IRI{}, c.errorf("unterminated IRI")
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A trailing '.' belongs to the statement, not the label.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++ // opening quote
	var b strings.Builder
	closed := false
	for c.pos < len(c.input) && !closed {
		ch := c.input[c.pos]
		switch ch {
		case '"':
			c.pos++
			closed = true
		case '\\':
			if err := c.parseStringEscape(&b); err != nil {
				return Literal{}, err
			}
		default:
			b.WriteByte(ch)
			c.pos++
		}
	}
	if !closed {
		return Literal{}, c.errorf("unterminated literal")
	}
	lit := Literal{Lexical: b.String()}
	if c.pos < len(c.input) && c.input[c.pos] == '@' {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && isLangChar(c.input[c.pos]) {
			c.pos++
		}
		if start == c.pos {
			return Literal{}, c.errorf("language tag missing")
		}
		lit.Lang = c.input[start:c.pos]
		return lit, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		lit.Datatype = dt
	}
	return lit, nil
}

func (c *ntCursor) parseStringEscape(b *strings.Builder) error {
	if c.pos+1 >= len(c.input) {
		return c.errorf("unterminated escape")
	}
	switch next := c.input[c.pos+1]; next {
	case 'u', 'U':
		r, err := c.parseUnicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
		return nil
	case 't':
		b.WriteByte('\t')
	case 'b':
		b.WriteByte('\b')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 'f':
		b.WriteByte('\f')
	case '"', '\'', '\\':
		b.WriteByte(next)
	default:
		return c.errorf("invalid escape \\%c", next)
	}
	c.pos += 2
	return nil
}

// parseUnicodeEscape decodes \uXXXX or \UXXXXXXXX at the cursor.
func (c *ntCursor) parseUnicodeEscape() (rune, error) {
	if c.pos+1 >= len(c.input) {
		return 0, c.errorf("unterminated escape")
	}
	width := 0
	switch c.input[c.pos+1] {
	case 'u':
		width = 4
	case 'U':
		width = 8
	default:
		return 0, c.errorf("invalid escape \\%c", c.input[c.pos+1])
	}
	start := c.pos + 2
	if start+width > len(c.input) {
		return 0, c.errorf("truncated unicode escape")
	}
	code, err := strconv.ParseUint(c.input[start:start+width], 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return 0, c.errorf("invalid unicode escape %q", c.input[c.pos:start+width])
	}
	c.pos = start + width
	return rune(code), nil
}

func (c *ntCursor) parseTripleTerm() (Term, error) {
	c.pos += 2
	subject, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return nil, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, c.errorf("expected '>>'")
	}
	c.pos += 2
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '<', '"', '>':
		return true
	default:
		return false
	}
}

func isLangChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-'
}

// ntWriter writes N-Triples or N-Quads, one statement per line.
// Pretty printing does not apply to line-based syntaxes.
type ntWriter struct {
	writer *bufio.Writer
	format Format
	render termRenderer
	err    error
}

func newNTWriter(w io.Writer, format Format, cfg *Config) *ntWriter {
	return &ntWriter{writer: bufio.NewWriter(w), format: format, render: newLineRenderer(cfg)}
}

func (e *ntWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if !q.complete() {
		return fmt.Errorf("%s: %w", e.format, ErrIncompleteStatement)
	}
	line := e.render.term(q.S) + " " + e.render.iri(q.P) + " " + e.render.term(q.O)
	if e.format == FormatNQuads && q.G != nil {
		line += " " + e.render.term(q.G)
	}
	line += " .\n"
	if _, err := e.writer.WriteString(line); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *ntWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = err
		return err
	}
	return nil
}

func (e *ntWriter) Close() error {
	if err := e.Flush(); err != nil {
		return err
	}
	e.err = ErrWriterClosed
	return nil
}
