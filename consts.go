package go_bgzf

const (
	// DefaultLevel is the DEFLATE level used when no level is configured.
	DefaultLevel = 5

	// ShrinkStep is how many input bytes are given back on every attempt that
	// does not fit in a single block.
	ShrinkStep = 1024

	// MaxInflateRatio is the largest expansion a DEFLATE stream can encode, so a
	// block of n bytes never inflates to more than n*MaxInflateRatio bytes.
	MaxInflateRatio = 1032
)
