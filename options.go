package go_bgzf

import (
	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/compression"
	"go.uber.org/zap"
)

type OptionFn func(*Codec)

type options struct {
	// level is the DEFLATE compression level, from compression.HuffmanOnly to
	// compression.BestCompression. An out of range level is reported by the
	// first Compress call as an InitializationError.
	//
	// The default value is 5.
	level int

	// engine is the DEFLATE implementation used for both directions.
	//
	// The default engine is backed by github.com/klauspost/compress/flate.
	engine compression.IEngine

	// logger receives debug traces of shrink retries and engine failures.
	// If nil, the global zap logger is resolved on every call.
	logger *zap.Logger
}

var defaultOptions = options{
	level:  DefaultLevel,
	engine: compression.NewEngine(compression.KlauspostEngine),
}

func WithLevel(level int) OptionFn {
	return func(c *Codec) {
		c.opts.level = level
	}
}

func WithEngine(engine compression.IEngine) OptionFn {
	return func(c *Codec) {
		if engine != nil {
			c.opts.engine = engine
		}
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(c *Codec) {
		c.opts.logger = logger
	}
}
