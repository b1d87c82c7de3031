package block

import "hash/crc32"

// Checksum returns the CRC-32 (IEEE) of the uncompressed bytes p, as stored in the footer.
func Checksum(p []byte) uint32 {
	return crc32.ChecksumIEEE(p)
}
