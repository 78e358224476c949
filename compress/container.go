package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/ved/errs"
	"github.com/arloliu/ved/format"
)

// containerMagic marks a ved document wrapped in a compressed container.
// A plain document always starts with an ASCII digit, so the magic cannot
// collide with uncompressed text.
var containerMagic = []byte("VED1")

const containerHeaderSize = 5 // magic(4) + compression type(1)

// EncodeContainer wraps marshaled document text for the given compression
// type. CompressionNone returns the text unchanged with no header.
func EncodeContainer(text []byte, compressionType format.CompressionType) ([]byte, error) {
	if compressionType == format.CompressionNone {
		return text, nil
	}

	codec, err := CreateCodec(compressionType)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(text)
	if err != nil {
		return nil, fmt.Errorf("failed to compress document: %w", err)
	}

	out := make([]byte, 0, containerHeaderSize+len(compressed))
	out = append(out, containerMagic...)
	out = append(out, byte(compressionType))
	out = append(out, compressed...)

	return out, nil
}

// DecodeContainer returns the marshaled document text held in data.
//
// Data starting with the container magic is decompressed according to the
// header's compression byte; anything else is treated as plain document
// text and returned as-is.
func DecodeContainer(data []byte) ([]byte, error) {
	if len(data) < containerHeaderSize || !bytes.HasPrefix(data, containerMagic) {
		return data, nil
	}

	compressionType := format.CompressionType(data[containerHeaderSize-1])
	codec, err := CreateCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownContainer, data[containerHeaderSize-1])
	}

	text, err := codec.Decompress(data[containerHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress document: %w", err)
	}

	return text, nil
}
