package block

import (
	"errors"
	"fmt"
)

var (
	ErrShortBuffer   = errors.New("buffer is too short to hold a block header")
	ErrInvalidHeader = errors.New("invalid bgzf block header")
)

// Header is the decoded, size-dependent part of a block header. Every other
// field of the header is fixed by the format.
type Header struct {
	// BlockLen is the total length of the block, header and footer included.
	BlockLen int
}

// PutHeader zero-fills buf[:HeaderLen] and stamps the fixed header fields.
// BSIZE is left as zero, it is only known once the payload has been compressed.
func PutHeader(buf []byte) {
	clear(buf[:HeaderLen])
	buf[offsetID1] = gzipID1
	buf[offsetID2] = gzipID2
	buf[offsetCM] = cmDeflate
	buf[offsetFLG] = flgExtra
	buf[offsetOS] = osUnknown
	PutUint16(buf[offsetXLen:], bgzfXLen)
	buf[offsetSI1] = bgzfSI1
	buf[offsetSI2] = bgzfSI2
	PutUint16(buf[offsetSLen:], bgzfSLen)
}

// PutBlockLen records the final block length into BSIZE.
func PutBlockLen(buf []byte, blockLen int) {
	PutUint16(buf[offsetBSize:], uint16(blockLen-1))
}

// ParseHeader validates the fixed fields of buf[:HeaderLen] and decodes BSIZE.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderLen {
		return Header{}, fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(buf))
	}

	switch {
	case buf[offsetID1] != gzipID1 || buf[offsetID2] != gzipID2:
		return Header{}, fmt.Errorf("%w: bad magic %#x %#x", ErrInvalidHeader, buf[offsetID1], buf[offsetID2])
	case buf[offsetCM] != cmDeflate:
		return Header{}, fmt.Errorf("%w: compression method %d", ErrInvalidHeader, buf[offsetCM])
	case buf[offsetFLG]&flgExtra == 0:
		return Header{}, fmt.Errorf("%w: extra field is missing", ErrInvalidHeader)
	case Uint16(buf[offsetXLen:]) != bgzfXLen:
		return Header{}, fmt.Errorf("%w: extra length %d", ErrInvalidHeader, Uint16(buf[offsetXLen:]))
	case buf[offsetSI1] != bgzfSI1 || buf[offsetSI2] != bgzfSI2 || Uint16(buf[offsetSLen:]) != bgzfSLen:
		return Header{}, fmt.Errorf("%w: missing BC subfield", ErrInvalidHeader)
	}

	h := Header{BlockLen: int(Uint16(buf[offsetBSize:])) + 1}
	if h.BlockLen < HeaderLen+FooterLen {
		return Header{}, fmt.Errorf("%w: block length %d", ErrInvalidHeader, h.BlockLen)
	}

	return h, nil
}
