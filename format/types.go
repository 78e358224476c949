package format

type (
	TokenKind       uint8
	CompressionType uint8
)

const (
	TokenEmpty   TokenKind = 0x1 // TokenEmpty repeats the previous resolved color in the row.
	TokenIndex   TokenKind = 0x2 // TokenIndex references a dictionary entry by its integer index.
	TokenLiteral TokenKind = 0x3 // TokenLiteral carries the hex color text itself.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k TokenKind) String() string {
	switch k {
	case TokenEmpty:
		return "Empty"
	case TokenIndex:
		return "Index"
	case TokenLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
