// Package ved implements the ved format, a lossy text-based image
// compression scheme built on per-row run-length encoding and a global
// dictionary of frequent colors.
//
// A ved document is line-oriented text: a dimensions line, a dictionary
// line mapping small integer indices to the colors that occur at least
// twice, and one token line per image row. Within a row, a repeated color
// collapses to an empty token, a frequent color to its dictionary index,
// and anything else to a literal hex string. The format drops the alpha
// channel; decoded images are always fully opaque.
//
// # Basic Usage
//
// Encoding an image:
//
//	data, err := ved.Encode(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding it back:
//
//	img, err := ved.Decode(data)
//
// Both directions process rows on a bounded worker pool. Use the codec
// package options for fine-grained control:
//
//	data, err := ved.Encode(img,
//	    codec.WithWorkers(4),
//	    codec.WithCompression(format.CompressionZstd),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. For the structured document form, diagnostics, or direct grid
// access, use the codec, document and grid packages directly.
package ved

import (
	"fmt"
	"image"
	"io"

	"github.com/arloliu/ved/codec"
	"github.com/arloliu/ved/grid"
	"github.com/arloliu/ved/internal/hash"
)

// Encode encodes an image into ved document bytes.
//
// The source alpha channel is ignored; only the RGB channels are encoded.
//
// Parameters:
//   - img: Source image (any image.Image)
//   - opts: Optional encoder configuration (see codec.EncoderOption)
//
// Returns:
//   - []byte: Marshaled document, wrapped in the compressed container when
//     codec.WithCompression is used
//   - error: Configuration error if invalid options provided
func Encode(img image.Image, opts ...codec.EncoderOption) ([]byte, error) {
	encoder, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(grid.FromImage(img))
}

// Decode decodes ved document bytes into an opaque RGBA image.
//
// Parameters:
//   - data: Encoded document (plain text or compressed container)
//   - opts: Optional decoder configuration (see codec.DecoderOption)
//
// Returns:
//   - image.Image: Decoded image with every pixel fully opaque
//   - error: Structural or decompression error; per-pixel anomalies are
//     substituted locally and never fail the decode
func Decode(data []byte, opts ...codec.DecoderOption) (image.Image, error) {
	decoder, err := codec.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	g, err := decoder.Decode()
	if err != nil {
		return nil, err
	}

	return g.Image(), nil
}

// EncodeTo encodes an image and writes the document to w.
// Write errors propagate unchanged.
func EncodeTo(w io.Writer, img image.Image, opts ...codec.EncoderOption) error {
	data, err := Encode(img, opts...)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// DecodeFrom reads an entire document from r and decodes it.
// Read errors propagate unchanged.
func DecodeFrom(r io.Reader, opts ...codec.DecoderOption) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Decode(data, opts...)
}

// DocumentID computes the xxHash64 fingerprint of an encoded document.
//
// Encoding is deterministic for a given image and configuration, so the
// fingerprint is a stable cache or dedup key for encoded documents.
func DocumentID(data []byte) uint64 {
	return hash.Sum(data)
}
