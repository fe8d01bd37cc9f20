package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeLineTooLong indicates a line exceeded the configured limit.
	ErrCodeLineTooLong ErrorCode = "LINE_TOO_LONG"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeWriteError indicates a writer rejected a statement or failed to write it.
	ErrCodeWriteError ErrorCode = "WRITE_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeDuplicateSettingKey indicates two settings in one catalog share a key.
	ErrCodeDuplicateSettingKey ErrorCode = "DUPLICATE_SETTING_KEY"
	// ErrCodeSettingTypeMismatch indicates a value does not match a setting's type.
	ErrCodeSettingTypeMismatch ErrorCode = "SETTING_TYPE_MISMATCH"
	// ErrCodeUnknownSetting indicates a key that no catalog declares.
	ErrCodeUnknownSetting ErrorCode = "UNKNOWN_SETTING"
	// ErrCodeInvalidSetting indicates a malformed setting declaration.
	ErrCodeInvalidSetting ErrorCode = "INVALID_SETTING"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("rdf: line exceeds configured limit")
	// ErrWriterClosed is returned by writes after Close.
	ErrWriterClosed = errors.New("rdf: writer closed")
	// ErrIncompleteStatement indicates a statement without subject, predicate or object.
	ErrIncompleteStatement = errors.New("rdf: missing statement fields")
	// ErrDuplicateSettingKey matches every *DuplicateKeyError.
	ErrDuplicateSettingKey = errors.New("rdf: duplicate setting key")
	// ErrTypeMismatch matches every *TypeMismatchError.
	ErrTypeMismatch = errors.New("rdf: setting value type mismatch")
	// ErrUnknownSetting indicates a key that the catalog does not declare.
	ErrUnknownSetting = errors.New("rdf: unknown setting")
	// ErrEmptySettingKey indicates a setting declared without a key.
	ErrEmptySettingKey = errors.New("rdf: empty setting key")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	// EOF is not an error condition
	if err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrLineTooLong):
		return ErrCodeLineTooLong
	case errors.Is(err, ErrDuplicateSettingKey):
		return ErrCodeDuplicateSettingKey
	case errors.Is(err, ErrTypeMismatch):
		return ErrCodeSettingTypeMismatch
	case errors.Is(err, ErrUnknownSetting):
		return ErrCodeUnknownSetting
	case errors.Is(err, ErrEmptySettingKey):
		return ErrCodeInvalidSetting
	case errors.Is(err, ErrWriterClosed), errors.Is(err, ErrIncompleteStatement):
		return ErrCodeWriteError
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	if errors.Is(err, context.Canceled) {
		return ErrCodeContextCanceled
	}

	return ErrCodeParseError
}

// DuplicateKeyError reports two settings sharing a key in one catalog.
type DuplicateKeyError struct {
	Catalog string
	Key     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("catalog %s: duplicate setting key %q", e.Catalog, e.Key)
}

// Is reports whether target is ErrDuplicateSettingKey.
func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateSettingKey }

// TypeMismatchError reports a value whose type is not the setting's value type.
type TypeMismatchError struct {
	Key  string
	Want reflect.Type
	Got  reflect.Type // nil for an untyped nil value
	Err  error        // parse failure, when the value came from a string
}

func (e *TypeMismatchError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	msg := fmt.Sprintf("setting %s: want %s, got %s", e.Key, e.Want, got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "ntriples")
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)

	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}

	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}

	return msg.String()
}

// formatExcerpt shows the statement around the error column with a caret.
func (e *ParseError) formatExcerpt() string {
	if e.Statement == "" {
		return ""
	}

	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column > 0 {
		start := e.Column - 1
		excerptStart := max(start-contextLen, 0)
		excerptEnd := min(start+contextLen, len(e.Statement))
		if excerptStart > excerptEnd {
			excerptStart = excerptEnd
		}

		excerpt := e.Statement[excerptStart:excerptEnd]
		caretPos := start - excerptStart
		if excerptStart > 0 {
			excerpt = "..." + excerpt
			caretPos += 3
		}
		if excerptEnd < len(e.Statement) {
			excerpt += "..."
		}
		caretPos = max(min(caretPos, len(excerpt)), 0)

		return excerpt + "\n  " + strings.Repeat(" ", caretPos) + "^"
	}

	if len(e.Statement) > maxExcerptLen {
		return e.Statement[:maxExcerptLen] + "..."
	}
	return e.Statement
}

func (e *ParseError) Unwrap() error { return e.Err }
