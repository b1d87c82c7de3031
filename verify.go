package go_bgzf

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/block"
	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/internal/bufferpool"
)

// Verify inflates blk and checks the result against the CRC-32 and ISIZE
// recorded in its footer.
func (c *Codec) Verify(blk []byte) error {
	footer, err := readFooter(blk)
	if err != nil {
		return err
	}

	// at least a whole block of room, so an understated ISIZE shows up as a mismatch
	size := max(int(footer.ISize), block.MaxBlockSize)
	scratch := bufferpool.Get(size)
	defer bufferpool.Put(scratch)

	scratch = scratch[:size]
	n, err := c.Decompress(scratch, blk)
	if err != nil {
		return err
	}

	if uint32(n) != footer.ISize {
		return fmt.Errorf("%w: inflated %d bytes, footer says %d", ErrSizeMismatch, n, footer.ISize)
	}
	if crc := block.Checksum(scratch[:n]); crc != footer.CRC32 {
		return fmt.Errorf("%w: computed %#08x, footer says %#08x", ErrChecksumMismatch, crc, footer.CRC32)
	}

	return nil
}
