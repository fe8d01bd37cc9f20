package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdf-rio/rdf"
)

type convertOptions struct {
	from     string
	to       string
	base     string
	prefixes []string
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions
	cmd := &cobra.Command{
		Use:   "convert [input [output]]",
		Short: "Re-serialize an N-Triples or N-Quads document",
		Long: `Read N-Triples or N-Quads and write it in another syntax using the
effective writer settings. Input and output default to stdin and stdout;
"-" selects them explicitly.

Examples:
  rdfwrite convert data.nq --to trig --prefix ex=http://example.org/
  rdfwrite convert --from nt --to turtle --set org.eclipse.rdf4j.rio.inlineblanknodes=true < in.nt`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.from, "from", "", "input syntax: nt or nq (default: from the file extension or content)")
	flags.StringVar(&opts.to, "to", "turtle", "output syntax: turtle, trig, nt, nq or jsonld")
	flags.StringVar(&opts.base, "base", "", "base IRI to declare in the output")
	flags.StringArrayVar(&opts.prefixes, "prefix", nil, "namespace prefix (label=namespace, repeatable)")
	return cmd
}

func (a *app) convert(cmd *cobra.Command, opts convertOptions, args []string) error {
	inPath, outPath := "-", "-"
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	from, err := inputFormat(opts.from, inPath)
	if err != nil {
		return err
	}
	to, ok := rdf.ParseFormat(opts.to)
	if !ok {
		return fmt.Errorf("--to %q: %w", opts.to, rdf.ErrUnsupportedFormat)
	}
	prefixes, err := parsePrefixes(opts.prefixes)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	buffered := bufio.NewReader(in)
	if from == "" {
		from, err = detectInputFormat(buffered)
		if err != nil {
			return err
		}
		a.logger.Debug().Str("format", string(from)).Msg("detected input syntax")
	}

	out := cmd.OutOrStdout()
	var file *os.File
	if outPath != "-" {
		file, err = os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	n, err := convertStream(cmd, buffered, out, from, to,
		rdf.OptConfig(a.config),
		rdf.OptBaseIRI(opts.base),
		rdf.OptPrefixes(prefixes),
		rdf.OptLogger(a.logger),
	)
	if err != nil {
		return err
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return err
		}
	}
	a.logger.Info().Int("statements", n).Str("from", string(from)).Str("to", string(to)).Msg("converted")
	return nil
}

func convertStream(cmd *cobra.Command, in io.Reader, out io.Writer, from, to rdf.Format, opts ...rdf.Option) (int, error) {
	w, err := rdf.NewWriter(out, to, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	err = rdf.Parse(cmd.Context(), in, from, func(q rdf.Quad) error {
		n++
		return w.Write(q)
	}, opts...)
	if err != nil {
		return n, err
	}
	return n, w.Close()
}

// inputFormat resolves --from, falling back to the input file extension.
// It returns "" when neither names a readable syntax.
func inputFormat(flag, path string) (rdf.Format, error) {
	if flag != "" {
		format, ok := rdf.ParseFormat(flag)
		if !ok || !readable(format) {
			return "", fmt.Errorf("--from %q: %w", flag, rdf.ErrUnsupportedFormat)
		}
		return format, nil
	}
	format, ok := rdf.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if !ok || !readable(format) {
		return "", nil
	}
	return format, nil
}

// detectInputFormat sniffs the input. Undecidable input is read as N-Quads,
// which also accepts N-Triples.
func detectInputFormat(r *bufio.Reader) (rdf.Format, error) {
	format, ok := rdf.DetectFormat(r)
	switch {
	case !ok:
		return rdf.FormatNQuads, nil
	case !readable(format):
		return "", fmt.Errorf("input looks like %s: %w", format, rdf.ErrUnsupportedFormat)
	default:
		return format, nil
	}
}

func readable(format rdf.Format) bool {
	return format == rdf.FormatNTriples || format == rdf.FormatNQuads
}
