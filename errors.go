package go_bgzf

import "errors"

type CustomError struct {
	error
	code int
}

// Code identifies the error kind for callers that present errors.
func (e CustomError) Code() int {
	return e.code
}

// InitializationError is returned when the codec can't be set up for the call:
// the DEFLATE engine refused to start, or the buffers can't hold a block at all.
var InitializationError = CustomError{
	error: errors.New("initialization error"),
	code:  1,
}

// CodecError is returned when the DEFLATE engine fails mid-stream or at finalize.
var CodecError = CustomError{
	error: errors.New("codec error"),
	code:  2,
}

// OverflowError is returned when the compressed block can't fit in MaxBlockSize, or
// when a footer announces more bytes than its block can inflate to.
var OverflowError = CustomError{
	error: errors.New("overflow error"),
	code:  3,
}

// InvariantViolation is returned when the unconsumed remainder is larger than
// the input that was just compressed.
var InvariantViolation = CustomError{
	error: errors.New("invariant violation"),
	code:  4,
}

var (
	ErrChecksumMismatch = errors.New("block checksum mismatch")
	ErrSizeMismatch     = errors.New("block uncompressed size mismatch")
)
