/*
Package block describes the physical layout of a single BGZF block.

A BGZF block is a complete gzip member carrying a "BC" extra subfield that records
the size of the whole block, so a reader can jump from one block to the next without
inflating anything:

	+------------------+---------------------------+------------------+
	| Header (18)      | CDATA (raw DEFLATE, var)  | Footer (8)       |
	+------------------+---------------------------+------------------+
	| ID1 ID2 CM FLG   |                           | CRC32 (LE32)     |
	| MTIME XFL OS     |                           | ISIZE (LE32)     |
	| XLEN SI1 SI2     |                           |                  |
	| SLEN BSIZE       |                           |                  |
	+------------------+---------------------------+------------------+

BSIZE is the total block length minus one, so a block is never larger than MaxBlockSize.
*/
package block

const (
	HeaderLen = 18
	FooterLen = 8

	// MaxBlockSize bounds the total length (header + payload + footer) of a block.
	MaxBlockSize = 64 * 1024
)

// gzip member fields
const (
	gzipID1   byte = 31
	gzipID2   byte = 139
	cmDeflate byte = 8
	flgExtra  byte = 4
	osUnknown byte = 255
)

// BGZF extra subfield
const (
	bgzfXLen uint16 = 6
	bgzfSI1  byte   = 'B' // 66
	bgzfSI2  byte   = 'C' // 67
	bgzfSLen uint16 = 2
)

// Offsets within the header.
const (
	offsetID1   = 0
	offsetID2   = 1
	offsetCM    = 2
	offsetFLG   = 3
	offsetOS    = 9
	offsetXLen  = 10
	offsetSI1   = 12
	offsetSI2   = 13
	offsetSLen  = 14
	offsetBSize = 16
)
