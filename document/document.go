package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ved/errs"
	"github.com/arloliu/ved/internal/pool"
)

// Document is the parsed or assembled form of a ved document: the
// dimensions line, the dictionary line, and one raw token line per row in
// top-to-bottom order.
type Document struct {
	Width  int
	Height int
	Dict   *Dictionary
	Rows   []string
}

// Parse splits marshaled document text into a Document.
//
// It fails with errs.ErrMissingDimensions or errs.ErrMissingDictionary when
// the corresponding line is absent, and errs.ErrInvalidDimensions when
// line 0 does not parse as two non-negative integers. Row lines are kept
// verbatim; token resolution belongs to the codec.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errs.ErrMissingDimensions
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")

	width, height, err := parseDimensions(lines[0])
	if err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, errs.ErrMissingDictionary
	}

	return &Document{
		Width:  width,
		Height: height,
		Dict:   ParseDictionaryLine(lines[1]),
		Rows:   lines[2:],
	}, nil
}

// parseDimensions parses line 0 as "<width>,<height>".
func parseDimensions(line string) (width, height int, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidDimensions, line)
	}

	width, err = strconv.Atoi(parts[0])
	if err != nil || width < 0 {
		return 0, 0, fmt.Errorf("%w: bad width %q", errs.ErrInvalidDimensions, parts[0])
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil || height < 0 {
		return 0, 0, fmt.Errorf("%w: bad height %q", errs.ErrInvalidDimensions, parts[1])
	}

	return width, height, nil
}

// AppendTo appends the marshaled document text to bb. Every line,
// including the last row, is newline-terminated.
func (d *Document) AppendTo(bb *pool.ByteBuffer) {
	bb.B = strconv.AppendInt(bb.B, int64(d.Width), 10)
	bb.B = append(bb.B, ',')
	bb.B = strconv.AppendInt(bb.B, int64(d.Height), 10)
	bb.B = append(bb.B, '\n')

	if d.Dict != nil {
		bb.B = d.Dict.AppendLine(bb.B)
	}
	bb.B = append(bb.B, '\n')

	for _, row := range d.Rows {
		bb.B = append(bb.B, row...)
		bb.B = append(bb.B, '\n')
	}
}

// Marshal returns the document as newline-joined text.
func (d *Document) Marshal() []byte {
	bb := pool.GetDocBuffer()
	defer pool.PutDocBuffer(bb)

	d.AppendTo(bb)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}
