package go_bgzf

// ICodec compresses and decompresses single BGZF blocks. Implementations hold no
// state between calls, so one instance can be shared by many goroutines as long
// as each of them passes its own buffers.
type ICodec interface {
	// Compress packs as much of src as fits into one block written to dst, and
	// moves whatever was not consumed to the front of src.
	Compress(dst, src []byte) (Result, error)
	// Decompress inflates one block into dst and returns the number of bytes produced.
	Decompress(dst, blk []byte) (int, error)
	// DecompressBlock inflates one block into a buffer sized from its footer.
	DecompressBlock(blk []byte) ([]byte, error)
	// Verify inflates one block and checks it against its footer.
	Verify(blk []byte) error
}

// Result describes one Compress call.
type Result struct {
	// BlockLen is the length of the block written at the front of dst.
	BlockLen int
	// Consumed is the number of input bytes represented by the block.
	Consumed int
	// Remaining is the number of input bytes not consumed, now at src[:Remaining].
	Remaining int
}
