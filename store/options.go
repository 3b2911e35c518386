package store

import (
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/options"
)

type writeConfig struct {
	rowGroupSize int
	codecID      format.CodecID
}

// WriteOption configures a Write call beyond the mandatory compression
// level, following the same functional-options shape as the teacher's
// internal/options package.
type WriteOption = options.Option[*writeConfig]

// WithRowGroupSize overrides DefaultRowGroupSize for a single Write call
// (spec.md doesn't fix a group size; SPEC_FULL.md §5.2 picks 1024 as the
// default and this as the override hook).
func WithRowGroupSize(n int) WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.rowGroupSize = n
	})
}

// WithS2Compression selects CodecS2 instead of the compressionLevel-based
// LZ4/Zstd choice. S2 is an extension beyond spec.md's required codec
// pair (SPEC_FULL.md §5.1): opt-in only, never chosen by compressionLevel
// alone.
func WithS2Compression() WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.codecID = format.CodecS2
	})
}

func newWriteConfig(compressionLevel int, opts []WriteOption) (*writeConfig, error) {
	cfg := &writeConfig{
		rowGroupSize: DefaultRowGroupSize,
		codecID:      compressionLevelToCodec(compressionLevel),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
