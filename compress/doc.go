// Package compress provides the compression codecs used by the optional
// ved container.
//
// The ved document itself is plain line-oriented text; compression is a
// container-level concern applied to the whole marshaled document. The
// package supports:
//   - None: plain text passthrough (the default)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Hex color text is extremely repetitive, so even the fast codecs reach
// high ratios on typical documents.
//
// A compressed document is wrapped in a small container:
//
//	┌──────────────────────────────────────────────┐
//	│ Magic "VED1" (4 bytes)                       │
//	│ Compression type (1 byte, format constants)  │
//	├──────────────────────────────────────────────┤
//	│ Compressed document text                     │
//	└──────────────────────────────────────────────┘
//
// Plain documents carry no container at all. Their first byte is always an
// ASCII digit (the width), so the magic sniff in DecodeContainer is
// unambiguous.
//
// All codec implementations are safe for concurrent use.
package compress
