package block

import "fmt"

// Footer is the trailer at the end of a block.
type Footer struct {
	// CRC32 is the checksum of the uncompressed bytes.
	CRC32 uint32
	// ISize is the number of uncompressed bytes.
	ISize uint32
}

// PutFooter writes f into the last FooterLen bytes of blk.
func PutFooter(blk []byte, f Footer) {
	n := len(blk)
	PutUint32(blk[n-FooterLen:], f.CRC32)
	PutUint32(blk[n-FooterLen/2:], f.ISize)
}

// ReadFooter decodes the footer from the last FooterLen bytes of blk.
func ReadFooter(blk []byte) (Footer, error) {
	if len(blk) < HeaderLen+FooterLen {
		return Footer{}, fmt.Errorf("%w: got %d bytes", ErrShortBuffer, len(blk))
	}

	n := len(blk)
	return Footer{
		CRC32: Uint32(blk[n-FooterLen:]),
		ISize: Uint32(blk[n-FooterLen/2:]),
	}, nil
}
