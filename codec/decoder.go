package codec

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/arloliu/ved/compress"
	"github.com/arloliu/ved/document"
	"github.com/arloliu/ved/grid"
	"github.com/arloliu/ved/internal/hexcolor"
	"github.com/arloliu/ved/internal/options"
	"github.com/arloliu/ved/internal/worker"
)

// Decoder decodes ved document text into a pixel grid.
//
// NewDecoder performs the fatal structural checks (container sniffing,
// dimensions and dictionary lines); Decode then resolves rows in parallel.
// Everything past the structural checks degrades locally: damaged tokens
// become substituted pixels, short rows keep the opaque-black default, and
// surplus tokens or rows are dropped.
//
// Note: The Decoder is NOT reusable. Create a new decoder for each document.
type Decoder struct {
	*DecoderConfig

	doc *document.Document
}

// NewDecoder creates a Decoder for the given encoded data.
//
// Data wrapped in the compressed container is decompressed first; anything
// else is treated as plain document text.
//
// Parameters:
//   - data: Encoded document bytes (plain text or compressed container)
//   - opts: Optional configuration (worker count, diagnostic handler)
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: Configuration error, container/decompression error, or a
//     structural error (errs.ErrMissingDimensions, errs.ErrInvalidDimensions,
//     errs.ErrMissingDictionary)
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	config := NewDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	text, err := compress.DecodeContainer(data)
	if err != nil {
		return nil, err
	}

	doc, err := document.Parse(text)
	if err != nil {
		return nil, err
	}

	return &Decoder{DecoderConfig: config, doc: doc}, nil
}

// Decode decodes the document into a grid of opaque pixels.
//
// Rows decode on a bounded worker pool and are gathered by row index, so
// the output is identical regardless of completion order. Row lines beyond
// the declared height are dropped; missing row lines leave their rows at
// the opaque-black default.
func (d *Decoder) Decode() (*grid.Grid, error) {
	g := grid.New(d.doc.Width, d.doc.Height)

	rows := len(d.doc.Rows)
	if rows > d.doc.Height {
		rows = d.doc.Height
	}

	worker.Rows(rows, d.workers, func(y int) {
		d.decodeRow(y, g.Row(y))
	})

	return g, nil
}

// decodeRow resolves the tokens of row y into its disjoint output slice.
func (d *Decoder) decodeRow(y int, out []color.RGBA) {
	lastToken := ""
	for x, token := range strings.Split(d.doc.Rows[y], ",") {
		if x >= len(out) {
			// Tokens beyond the declared width are dropped.
			break
		}

		leadingEmpty := false
		if token == "" {
			// Repeat the row's previous token. At x==0 there is nothing to
			// repeat; the empty text fails the color check below and the
			// pixel stays substituted rather than crashing the decode.
			leadingEmpty = lastToken == ""
			token = lastToken
		} else {
			lastToken = token
		}

		resolved := token
		if index, err := strconv.Atoi(token); err == nil && index >= 0 {
			if hex, ok := d.doc.Dict.Color(index); ok {
				resolved = hex
			}
		}

		c, ok := hexcolor.Resolve(resolved)
		if !ok {
			reason := ReasonInvalidColor
			if leadingEmpty {
				reason = ReasonLeadingEmptyToken
			}
			d.report(Diagnostic{Row: y, Col: x, Token: token, Reason: reason})
		}
		out[x] = c
	}
}

func (d *Decoder) report(diag Diagnostic) {
	if d.onDiagnostic != nil {
		d.onDiagnostic(diag)
	}
}
