package rdf

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Reader streams RDF statements from an input.
// For triple formats every quad is in the default graph.
type Reader interface {
	Next() (Quad, error)
	Close() error
}

// Writer streams RDF statements to an output.
// For triple-only formats, the graph (G) field is ignored.
type Writer interface {
	Write(Quad) error
	Flush() error
	Close() error
}

// Handler processes statements in push mode.
type Handler func(Quad) error

// Option configures reader/writer behavior.
type Option func(*Options)

// Options configures parser/encoder behavior.
type Options struct {
	// Config carries the writer settings; nil means all defaults.
	Config *Config

	// BaseIRI is the document base. Writers declare it (and write IRIs
	// relative to it) only when the base directive setting is on.
	BaseIRI string

	// Prefixes maps prefix labels to namespaces for Turtle and TriG.
	Prefixes map[string]string

	// Logger receives writer diagnostics.
	Logger zerolog.Logger

	// MaxLineBytes limits reader line length; negative disables the limit.
	MaxLineBytes int
}

// DefaultMaxLineBytes is the reader line limit when none is configured.
const DefaultMaxLineBytes = 1 << 20

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...Option) (Writer, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newEncoder(w, format, options)
}

// NewReader creates a reader for N-Triples or N-Quads input.
func NewReader(r io.Reader, format Format, opts ...Option) (Reader, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTReader(r, format, options), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Parse parses RDF from the reader and streams statements to the handler.
// If ctx is nil, context.Background() is used as the default.
func Parse(ctx context.Context, r io.Reader, format Format, handler Handler, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reader, err := NewReader(r, format, opts...)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler(q); err != nil {
			return err
		}
	}
}

// OptConfig sets the writer settings store.
func OptConfig(cfg *Config) Option {
	return func(opts *Options) {
		opts.Config = cfg
	}
}

// OptBaseIRI sets the document base IRI.
func OptBaseIRI(base string) Option {
	return func(opts *Options) {
		opts.BaseIRI = base
	}
}

// OptPrefixes sets the namespace prefixes used by Turtle and TriG.
func OptPrefixes(prefixes map[string]string) Option {
	return func(opts *Options) {
		opts.Prefixes = prefixes
	}
}

// OptLogger sets the logger for writer diagnostics.
func OptLogger(logger zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OptMaxLineBytes sets the maximum line size limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

func defaultOptions() Options {
	return Options{
		Logger:       zerolog.Nop(),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// newEncoder creates a writer for the specified format.
func newEncoder(w io.Writer, format Format, opts Options) (Writer, error) {
	logger := opts.Logger.With().Str("format", string(format)).Logger()
	logIgnoredSettings(logger, format, opts.Config)

	switch format {
	case FormatNTriples, FormatNQuads:
		return newNTWriter(w, format, opts.Config), nil
	case FormatTurtle:
		if Get(opts.Config, WriterSettings.InlineBlankNodes) {
			return newInlineTurtleWriter(w, opts, logger), nil
		}
		return newTurtleWriter(w, opts), nil
	case FormatTriG:
		return newTriGWriter(w, opts), nil
	case FormatJSONLD:
		return newJSONLDWriter(w, opts), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// logIgnoredSettings reports overrides the chosen syntax cannot honor.
func logIgnoredSettings(logger zerolog.Logger, format Format, cfg *Config) {
	if !Get(cfg, WriterSettings.RDFLangStringToLangLiteral) {
		logger.Debug().
			Str("setting", WriterSettings.RDFLangStringToLangLiteral.Key()).
			Msg("language-tagged literals are written without rdf:langString in this syntax")
	}
	if !Get(cfg, WriterSettings.XSDStringToPlainLiteral) && format == FormatJSONLD {
		logger.Debug().
			Str("setting", WriterSettings.XSDStringToPlainLiteral.Key()).
			Msg("xsd:string literals are always written as plain JSON-LD values")
	}
	if Get(cfg, WriterSettings.InlineBlankNodes) && format != FormatTurtle {
		logger.Debug().
			Str("setting", WriterSettings.InlineBlankNodes.Key()).
			Msg("blank node inlining is only supported by the Turtle writer")
	}
}
