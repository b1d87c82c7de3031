package block

import "bytes"

// eofMarker is the empty block terminating a BGZF file.
var eofMarker = [...]byte{
	0x1f, 0x8b, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00,
	0x00, 0xff, 0x06, 0x00, 0x42, 0x43, 0x02, 0x00,
	0x1b, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

const EOFMarkerLen = len(eofMarker)

// AppendEOF appends the end-of-file marker block to dst.
func AppendEOF(dst []byte) []byte {
	return append(dst, eofMarker[:]...)
}

// IsEOF reports whether blk is exactly the end-of-file marker block.
func IsEOF(blk []byte) bool {
	return bytes.Equal(blk, eofMarker[:])
}
