// Package codec implements the two transforms of the ved format: encoding
// a pixel grid into document text and decoding document text back into a
// pixel grid.
//
// # Encoding
//
// Encoding runs in two row-parallel phases separated by a sequential
// barrier:
//
//  1. Scan: each row independently produces its ordered per-pixel hex
//     colors and a local color frequency table.
//  2. Barrier: the local tables are merged in row order into one global
//     table, and colors occurring at least twice become the dictionary,
//     ranked by count descending with ties broken by first-encounter
//     order. The merge consumes indexed per-row slots, so the result is
//     identical regardless of which rows finished first.
//  3. Emit: each row independently run-length collapses its colors.
//     A repeat of the row's previous color becomes an empty token, any
//     other color becomes its dictionary index or the literal hex text.
//
// # Decoding
//
// Decoding is a single row-parallel map. Each row walks its tokens with a
// per-row "last token" state, resolves dictionary indices, and writes
// pixels into its own disjoint row slice of the output grid. Structural
// problems (missing dimensions or dictionary line) abort the decode;
// per-pixel anomalies are substituted with opaque black or zeroed channels
// and optionally reported through a diagnostic handler, never aborting the
// image.
package codec
