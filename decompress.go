package go_bgzf

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/block"
	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/compression"
	"go.uber.org/zap"
)

// Decompress inflates the block blk into dst and returns the number of bytes
// produced. len(dst) must be able to hold the whole uncompressed payload.
//
// Everything after the header is handed to the inflater, footer included: a raw
// DEFLATE stream terminates itself, so the exact payload length is not needed.
// The header is skipped without being validated, callers holding untrusted
// bytes should run block.ParseHeader first. The footer is not checked either,
// see Verify.
func (c *Codec) Decompress(dst, blk []byte) (int, error) {
	if len(blk) < block.HeaderLen {
		return 0, fmt.Errorf("%w: compressed length %d is shorter than a block header",
			InitializationError, len(blk))
	}

	stream, err := c.opts.engine.NewInflater()
	if err != nil {
		c.logger().Error("Failed to initialise inflate stream", zap.Error(err))
		return 0, fmt.Errorf("%w: %w", InitializationError, err)
	}

	n, status, err := stream.Finish(dst, blk[block.HeaderLen:])
	if err != nil {
		_ = stream.Close()
		c.logger().Error("Failed to inflate block", zap.Int("blockLen", len(blk)), zap.Error(err))
		return 0, fmt.Errorf("%w: inflate failed: %w", CodecError, err)
	}
	if status != compression.StatusDone {
		_ = stream.Close()
		return 0, fmt.Errorf("%w: inflate did not reach end of stream, output capacity %d is too small",
			CodecError, len(dst))
	}
	if err := stream.Close(); err != nil {
		c.logger().Error("Failed to finalise inflate stream", zap.Error(err))
		return 0, fmt.Errorf("%w: inflate end failed: %w", CodecError, err)
	}

	return n, nil
}

// DecompressBlock inflates blk into a new buffer of exactly ISIZE bytes, as
// announced by the footer.
func (c *Codec) DecompressBlock(blk []byte) ([]byte, error) {
	footer, err := readFooter(blk)
	if err != nil {
		return nil, err
	}

	out := make([]byte, footer.ISize)
	n, err := c.Decompress(out, blk)
	if err != nil {
		return nil, err
	}
	if n != len(out) {
		return nil, fmt.Errorf("%w: got %d bytes, footer announces %d", ErrSizeMismatch, n, len(out))
	}

	return out, nil
}

// readFooter reads the footer of blk and rejects an ISIZE that no DEFLATE
// payload of this length can produce.
func readFooter(blk []byte) (block.Footer, error) {
	footer, err := block.ReadFooter(blk)
	if err != nil {
		return block.Footer{}, fmt.Errorf("%w: %w", InitializationError, err)
	}
	if uint64(footer.ISize) > uint64(len(blk))*MaxInflateRatio {
		return block.Footer{}, fmt.Errorf("%w: footer announces %d uncompressed bytes for a %d byte block",
			OverflowError, footer.ISize, len(blk))
	}

	return footer, nil
}
