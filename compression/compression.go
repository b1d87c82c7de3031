package compression

import "errors"

// EngineType is the DEFLATE implementation backing an IEngine.
type EngineType int

// The available engines.
const (
	KlauspostEngine EngineType = iota
	StdlibEngine
)

// Status reports how a stream call ended.
type Status byte

const (
	// StatusDone means the stream was terminated by its end-of-stream marker.
	StatusDone Status = iota
	// StatusNeedOutput means dst was exhausted before the stream could be terminated.
	StatusNeedOutput
	// StatusFailed accompanies a non-nil error.
	StatusFailed
)

// Compression levels accepted by NewDeflater.
const (
	HuffmanOnly        = -2
	DefaultCompression = -1
	NoCompression      = 0
	BestSpeed          = 1
	BestCompression    = 9
)

var ErrInvalidLevel = errors.New("invalid compression level")

// IDeflateStream compresses one input at a time into a raw (header-less) DEFLATE stream.
type IDeflateStream interface {
	// Finish pushes the whole of src through the compressor and terminates the stream,
	// writing at most len(dst) bytes into dst. It returns the number of bytes written.
	// StatusNeedOutput is not an error: the stream simply does not fit in dst.
	Finish(dst, src []byte) (int, Status, error)
	// Close tears the stream down. No further calls are allowed after calling Close.
	Close() error
}

// IInflateStream decompresses one raw DEFLATE stream at a time.
type IInflateStream interface {
	// Finish inflates src into dst until the end-of-stream marker is reached. Bytes of
	// src after the marker are ignored. StatusNeedOutput is returned if dst fills up first.
	Finish(dst, src []byte) (int, Status, error)
	// Close tears the stream down. No further calls are allowed after calling Close.
	Close() error
}

type IEngine interface {
	GetType() EngineType
	// NewDeflater initialises a compression stream at the given level.
	NewDeflater(level int) (IDeflateStream, error)
	// NewInflater initialises a decompression stream.
	NewInflater() (IInflateStream, error)
}

var (
	klauspost = newKlauspostEngine()
	stdlib    = newStdlibEngine()
)

// NewEngine returns the engine of the given type. Engines keep pools of their
// stream state, so the same instance is shared by every caller.
func NewEngine(et EngineType) IEngine {
	switch et {
	case KlauspostEngine:
		return klauspost
	case StdlibEngine:
		return stdlib
	default:
		panic("unknown engine type")
	}
}
