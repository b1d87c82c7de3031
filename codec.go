package go_bgzf

import (
	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/compression"
	"go.uber.org/zap"
)

// Codec is the BGZF block codec.
type Codec struct {
	opts options
}

func NewCodec(opts ...OptionFn) *Codec {
	c := &Codec{
		opts: defaultOptions,
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

func (c *Codec) logger() *zap.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return zap.L()
}

// levelCodecs holds one shared codec per valid level. It is never written after
// init, so concurrent lookups are safe.
var levelCodecs = func() map[int]*Codec {
	codecs := make(map[int]*Codec, compression.BestCompression-compression.HuffmanOnly+1)
	for level := compression.HuffmanOnly; level <= compression.BestCompression; level++ {
		codecs[level] = NewCodec(WithLevel(level))
	}
	return codecs
}()

var defaultCodec = levelCodecs[DefaultLevel]

func codecFor(level int) *Codec {
	if c, ok := levelCodecs[level]; ok {
		return c
	}
	// invalid levels are reported by the engine on first use
	return NewCodec(WithLevel(level))
}

// Compress packs src into one block at the given level using the default engine.
// See Codec.Compress.
func Compress(dst, src []byte, level int) (Result, error) {
	return codecFor(level).Compress(dst, src)
}

// Decompress inflates one block using the default engine. See Codec.Decompress.
func Decompress(dst, blk []byte) (int, error) {
	return defaultCodec.Decompress(dst, blk)
}

var _ ICodec = (*Codec)(nil)
