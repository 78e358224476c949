// Package document defines the line-oriented text grammar of the ved format.
//
// A ved document is a sequence of newline-terminated lines, with commas as
// the field separator within a line and '=' as the key/value separator in
// the dictionary line only:
//
//	Line 0:        "<width>,<height>"
//	Line 1:        "<idx0>=<hex0>,<idx1>=<hex1>,..." (may be empty)
//	Lines 2..2+H:  "<token_0>,<token_1>,...,<token_{W-1}>" one per row
//
//	token := "" | <nonneg-integer> | <hex6-or-more, optionally "#"-prefixed>
//
// An empty token repeats the previous resolved color of the row. An
// integer token is a dictionary index; any other token is a literal hex
// color. The two are distinguished by content only: a token that parses as
// a non-negative integer and exists in the dictionary resolves through the
// dictionary, everything else is literal. This content sniffing is a
// weakness of the format (an all-digit hex color such as "123456" would
// resolve through the dictionary if an entry with that index existed), but
// it is kept for compatibility with existing documents. Dictionary indices
// are a dense 0-based sequence in practice, so the collision cannot occur
// in encoder-produced documents.
//
// Parsing is strict about structure (dimensions and dictionary lines must
// exist) and deliberately lenient about content: malformed dictionary
// entries are skipped, not rejected.
package document
