package codec

// DiagnosticReason classifies a non-fatal decode anomaly.
type DiagnosticReason uint8

const (
	// ReasonInvalidColor marks a token whose resolved color text is shorter
	// than "#RRGGBB". The pixel is substituted with opaque black.
	ReasonInvalidColor DiagnosticReason = 0x1

	// ReasonLeadingEmptyToken marks an empty token at the start of a row,
	// which has no previous color to repeat. The pixel is substituted with
	// opaque black.
	ReasonLeadingEmptyToken DiagnosticReason = 0x2
)

func (r DiagnosticReason) String() string {
	switch r {
	case ReasonInvalidColor:
		return "InvalidColor"
	case ReasonLeadingEmptyToken:
		return "LeadingEmptyToken"
	default:
		return "Unknown"
	}
}

// Diagnostic describes one substituted pixel during decoding.
//
// Diagnostics are reported through the handler installed with
// WithDiagnosticHandler; without a handler they are dropped.
type Diagnostic struct {
	// Row and Col locate the pixel (y, x) in the output grid.
	Row int
	Col int

	// Token is the raw token text after empty-token substitution.
	Token string

	Reason DiagnosticReason
}
