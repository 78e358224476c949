package codec

import (
	"fmt"

	"github.com/arloliu/ved/errs"
	"github.com/arloliu/ved/internal/options"
	"github.com/arloliu/ved/internal/worker"
)

// DecoderConfig holds the decoder configuration.
type DecoderConfig struct {
	workers      int
	onDiagnostic func(Diagnostic)
}

// NewDecoderConfig creates a DecoderConfig with default settings:
// one worker per CPU and no diagnostic handler.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		workers: worker.DefaultCount(),
	}
}

func (c *DecoderConfig) setWorkers(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, n)
	}
	c.workers = n

	return nil
}

// DecoderOption is a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecodeWorkers configures how many rows are decoded concurrently.
// Must be at least 1. Default is the number of CPUs.
func WithDecodeWorkers(n int) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		return cfg.setWorkers(n)
	})
}

// WithDiagnosticHandler installs a handler for non-fatal per-pixel decode
// anomalies. Rows decode concurrently, so the handler must be safe for
// concurrent use. Without a handler, diagnostics are dropped.
func WithDiagnosticHandler(fn func(Diagnostic)) DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.onDiagnostic = fn
	})
}
