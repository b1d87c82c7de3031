package go_bgzf

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/compression"
	"github.com/go-faker/faker/v4"
)

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("Error generating random bytes: %v", err))
	}
	return b
}

func randomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	if err := faker.FakeData(&quote); err != nil {
		return "the quick brown fox jumps over the lazy dog."
	}

	return quote.Sentence
}

// randomText returns n bytes of newline separated sentences.
func randomText(n int) []byte {
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteString(randomQuote())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()[:n])
}

// fakeEngine lets tests script every step of the streaming contract.
type fakeEngine struct {
	deflaterErr error
	inflaterErr error
	closeErr    error
	finish      func(dst, src []byte) (int, compression.Status, error)

	attempts []int // len(src) of every Finish call
	closed   int
}

func (f *fakeEngine) GetType() compression.EngineType {
	return compression.EngineType(-1)
}

func (f *fakeEngine) NewDeflater(level int) (compression.IDeflateStream, error) {
	if f.deflaterErr != nil {
		return nil, f.deflaterErr
	}
	return &fakeStream{e: f}, nil
}

func (f *fakeEngine) NewInflater() (compression.IInflateStream, error) {
	if f.inflaterErr != nil {
		return nil, f.inflaterErr
	}
	return &fakeStream{e: f}, nil
}

type fakeStream struct {
	e *fakeEngine
}

func (s *fakeStream) Finish(dst, src []byte) (int, compression.Status, error) {
	s.e.attempts = append(s.e.attempts, len(src))
	return s.e.finish(dst, src)
}

func (s *fakeStream) Close() error {
	s.e.closed++
	return s.e.closeErr
}

// fitsUpTo pretends that any input up to limit bytes deflates into a 2 byte stream.
func fitsUpTo(limit int) func(dst, src []byte) (int, compression.Status, error) {
	return func(dst, src []byte) (int, compression.Status, error) {
		if len(src) > limit {
			return len(dst), compression.StatusNeedOutput, nil
		}
		return copy(dst, []byte{0x03, 0x00}), compression.StatusDone, nil
	}
}

var (
	_ compression.IEngine        = (*fakeEngine)(nil)
	_ compression.IDeflateStream = (*fakeStream)(nil)
	_ compression.IInflateStream = (*fakeStream)(nil)
)
