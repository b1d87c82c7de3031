package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

const levelCount = BestCompression - HuffmanOnly + 1

// errOutputFull is returned by boundedSink once dst can't take any more bytes.
// The flate writers keep it as their sticky error, which is how a full output
// surfaces from Write or Close.
var errOutputFull = errors.New("deflate: output space exhausted")

// flateWriter is satisfied by both *flate.Writer implementations.
type flateWriter interface {
	io.WriteCloser
	Reset(dst io.Writer)
}

// flateResetter is satisfied by the readers of both flate implementations.
type flateResetter interface {
	Reset(r io.Reader, dict []byte) error
}

// flateEngine drives any flate implementation through the streaming contract.
// Writers are pooled per level, readers in a single pool.
type flateEngine struct {
	et        EngineType
	newWriter func(w io.Writer, level int) (flateWriter, error)
	newReader func(r io.Reader) io.ReadCloser

	writers [levelCount]sync.Pool
	readers sync.Pool
}

func (e *flateEngine) GetType() EngineType {
	return e.et
}

func (e *flateEngine) NewDeflater(level int) (IDeflateStream, error) {
	if level < HuffmanOnly || level > BestCompression {
		return nil, fmt.Errorf("%w: %d, want value in range [%d, %d]", ErrInvalidLevel, level, HuffmanOnly, BestCompression)
	}

	pool := &e.writers[level-HuffmanOnly]
	if s, ok := pool.Get().(*deflateStream); ok {
		return s, nil
	}

	s := &deflateStream{pool: pool}
	fw, err := e.newWriter(&s.sink, level)
	if err != nil {
		return nil, err
	}
	s.fw = fw

	return s, nil
}

func (e *flateEngine) NewInflater() (IInflateStream, error) {
	if s, ok := e.readers.Get().(*inflateStream); ok {
		return s, nil
	}

	s := &inflateStream{pool: &e.readers}
	s.fr = e.newReader(&s.src)
	if _, ok := s.fr.(flateResetter); !ok {
		return nil, fmt.Errorf("inflate: reader %T can not be reset", s.fr)
	}

	return s, nil
}

// boundedSink is an io.Writer over a fixed slice that refuses to grow.
type boundedSink struct {
	buf []byte
	n   int
}

func (b *boundedSink) reset(buf []byte) {
	b.buf = buf
	b.n = 0
}

func (b *boundedSink) Write(p []byte) (int, error) {
	free := len(b.buf) - b.n
	if len(p) > free {
		b.n += copy(b.buf[b.n:], p[:free])
		return free, errOutputFull
	}

	b.n += copy(b.buf[b.n:], p)
	return len(p), nil
}

type deflateStream struct {
	fw   flateWriter
	sink boundedSink
	pool *sync.Pool
}

func (s *deflateStream) Finish(dst, src []byte) (int, Status, error) {
	s.sink.reset(dst)
	s.fw.Reset(&s.sink)

	if _, err := s.fw.Write(src); err != nil {
		return s.settle(err)
	}
	if err := s.fw.Close(); err != nil {
		return s.settle(err)
	}

	return s.sink.n, StatusDone, nil
}

func (s *deflateStream) settle(err error) (int, Status, error) {
	if errors.Is(err, errOutputFull) {
		return s.sink.n, StatusNeedOutput, nil
	}
	return s.sink.n, StatusFailed, err
}

func (s *deflateStream) Close() error {
	// drop the reference to the caller's buffer before pooling
	s.sink.reset(nil)
	s.pool.Put(s)
	return nil
}

type inflateStream struct {
	fr   io.ReadCloser
	src  bytes.Reader
	pool *sync.Pool
}

func (s *inflateStream) Finish(dst, src []byte) (int, Status, error) {
	s.src.Reset(src)
	if err := s.fr.(flateResetter).Reset(&s.src, nil); err != nil {
		return 0, StatusFailed, err
	}

	n := 0
	for n < len(dst) {
		m, err := s.fr.Read(dst[n:])
		n += m
		if err == io.EOF {
			return n, StatusDone, nil
		}
		if err != nil {
			return n, StatusFailed, err
		}
	}

	// dst is full, the stream is only complete if nothing is left to inflate
	var probe [1]byte
	m, err := s.fr.Read(probe[:])
	switch {
	case m > 0:
		return n, StatusNeedOutput, nil
	case err == io.EOF:
		return n, StatusDone, nil
	case err != nil:
		return n, StatusFailed, err
	default:
		return n, StatusNeedOutput, nil
	}
}

func (s *inflateStream) Close() error {
	err := s.fr.Close()
	s.src.Reset(nil)
	s.pool.Put(s)
	return err
}

var (
	_ IEngine        = (*flateEngine)(nil)
	_ IDeflateStream = (*deflateStream)(nil)
	_ IInflateStream = (*inflateStream)(nil)
)
