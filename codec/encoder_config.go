package codec

import (
	"fmt"

	"github.com/arloliu/ved/errs"
	"github.com/arloliu/ved/format"
	"github.com/arloliu/ved/internal/options"
	"github.com/arloliu/ved/internal/worker"
)

// EncoderConfig holds the encoder configuration shared by all encode calls
// on one Encoder.
type EncoderConfig struct {
	workers     int
	compression format.CompressionType
}

// NewEncoderConfig creates an EncoderConfig with default settings:
// one worker per CPU and no compression.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		workers:     worker.DefaultCount(),
		compression: format.CompressionNone,
	}
}

// Workers returns the configured worker count.
func (c *EncoderConfig) Workers() int {
	return c.workers
}

// Compression returns the configured container compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.compression
}

func (c *EncoderConfig) setWorkers(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, n)
	}
	c.workers = n

	return nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.compression = comp
		return nil
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, comp)
	}
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithWorkers configures how many rows are processed concurrently in each
// encoding phase. Must be at least 1. Default is the number of CPUs.
func WithWorkers(n int) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		return cfg.setWorkers(n)
	})
}

// WithCompression wraps the emitted document in the compressed container.
// Available types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionNone, which emits plain document text.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		return cfg.setCompression(comp)
	})
}
