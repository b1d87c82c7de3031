package go_bgzf

import (
	"testing"

	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Verify(t *testing.T) {
	data := randomText(16 * 1024)
	codec := NewCodec()
	blk := compressBlock(t, codec, data)

	require.NoError(t, codec.Verify(blk))

	t.Run("corrupted crc still decompresses", func(t *testing.T) {
		b := append([]byte(nil), blk...)
		b[len(b)-8] ^= 0xff

		out := make([]byte, len(data))
		n, err := codec.Decompress(out, b)
		require.NoError(t, err, "the footer is not checked while inflating")
		assert.Equal(t, data, out[:n])

		footer, err := block.ReadFooter(b)
		require.NoError(t, err)
		assert.NotEqual(t, footer.CRC32, block.Checksum(out[:n]))

		assert.ErrorIs(t, codec.Verify(b), ErrChecksumMismatch)
	})

	t.Run("corrupted isize", func(t *testing.T) {
		b := append([]byte(nil), blk...)
		block.PutUint32(b[len(b)-4:], uint32(len(data)+1))
		assert.ErrorIs(t, codec.Verify(b), ErrSizeMismatch)
	})

	t.Run("understated isize", func(t *testing.T) {
		b := append([]byte(nil), blk...)
		block.PutUint32(b[len(b)-4:], uint32(len(data)-1))
		assert.ErrorIs(t, codec.Verify(b), ErrSizeMismatch)
	})

	t.Run("isize beyond what deflate can expand to", func(t *testing.T) {
		b := append([]byte(nil), blk...)
		block.PutUint32(b[len(b)-4:], uint32(len(b)*MaxInflateRatio+1))
		assert.ErrorIs(t, codec.Verify(b), OverflowError)
	})

	t.Run("truncated block", func(t *testing.T) {
		assert.ErrorIs(t, codec.Verify(blk[:len(blk)/2]), CodecError)
	})

	t.Run("too short for a footer", func(t *testing.T) {
		assert.ErrorIs(t, codec.Verify(blk[:10]), InitializationError)
	})

	t.Run("eof marker", func(t *testing.T) {
		assert.NoError(t, codec.Verify(block.AppendEOF(nil)))
	})
}
