package go_bgzf

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/block"
	"github.com/datnguyenzzz/nogodb/lib/go-bgzf/compression"
	"go.uber.org/zap"
)

// Compress writes one complete block (header, raw DEFLATE payload, footer) at the
// front of dst, using len(dst) as the output capacity.
//
// The whole of src is attempted first. When it can't be squeezed into the space
// left between header and footer, the attempt is repeated with ShrinkStep fewer
// bytes until it fits. The bytes that were not consumed are moved to the front
// of src so the caller can append more input and call Compress again.
//
// The remainder must never outgrow what a single block consumed, so src should
// hold at most a couple of blocks worth of input.
func (c *Codec) Compress(dst, src []byte) (Result, error) {
	if len(dst) < block.HeaderLen+block.FooterLen {
		return Result{}, fmt.Errorf("%w: output capacity %d can not hold a block header and footer",
			InitializationError, len(dst))
	}

	block.PutHeader(dst)

	stream, err := c.opts.engine.NewDeflater(c.opts.level)
	if err != nil {
		c.logger().Error("Failed to initialise deflate stream", zap.Int("level", c.opts.level), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %w", InitializationError, err)
	}

	payload := dst[block.HeaderLen : len(dst)-block.FooterLen]
	inputLen, written, err := c.deflate(stream, payload, src)
	if err != nil {
		_ = stream.Close()
		return Result{}, err
	}
	if err := stream.Close(); err != nil {
		c.logger().Error("Failed to finalise deflate stream", zap.Error(err))
		return Result{}, fmt.Errorf("%w: deflate end failed: %w", CodecError, err)
	}

	blockLen := block.HeaderLen + written + block.FooterLen
	if blockLen > block.MaxBlockSize {
		return Result{}, fmt.Errorf("%w: deflate overflow, block length %d exceeds %d",
			OverflowError, blockLen, block.MaxBlockSize)
	}

	blk := dst[:blockLen]
	block.PutBlockLen(blk, blockLen)
	block.PutFooter(blk, block.Footer{
		CRC32: block.Checksum(src[:inputLen]),
		ISize: uint32(inputLen),
	})

	remaining := len(src) - inputLen
	if remaining > 0 {
		if remaining > inputLen {
			return Result{}, fmt.Errorf("%w: remainder too large, %d bytes left after consuming %d",
				InvariantViolation, remaining, inputLen)
		}
		copy(src, src[inputLen:])
	}

	return Result{
		BlockLen:  blockLen,
		Consumed:  inputLen,
		Remaining: remaining,
	}, nil
}

// deflate runs the shrink-and-retry loop and returns how much of src was
// compressed and how many payload bytes that took. Every attempt gives back
// ShrinkStep bytes, so len(src)/ShrinkStep+1 attempts reach a negative length.
func (c *Codec) deflate(stream compression.IDeflateStream, payload, src []byte) (int, int, error) {
	inputLen := len(src)
	maxAttempts := len(src)/ShrinkStep + 1

	for attempt := 0; attempt < maxAttempts; attempt++ {
		written, status, err := stream.Finish(payload, src[:inputLen])
		if err != nil {
			c.logger().Error("Failed to deflate block", zap.Int("inputLen", inputLen), zap.Error(err))
			return 0, 0, fmt.Errorf("%w: deflate failed: %w", CodecError, err)
		}

		switch status {
		case compression.StatusDone:
			return inputLen, written, nil
		case compression.StatusNeedOutput:
			inputLen -= ShrinkStep
			if inputLen < 0 {
				return 0, 0, fmt.Errorf("%w: input reduction failed", OverflowError)
			}
			c.logger().Debug("Block does not fit, shrinking input",
				zap.Int("attempt", attempt+1), zap.Int("inputLen", inputLen))
		default:
			return 0, 0, fmt.Errorf("%w: deflate returned unexpected status %d", CodecError, status)
		}
	}

	return 0, 0, fmt.Errorf("%w: input reduction failed after %d attempts", OverflowError, maxAttempts)
}
